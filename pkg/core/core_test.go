package core

import (
	"errors"
	"testing"
)

func TestRoundTrip_Smoke(t *testing.T) {
	ct, err := Encrypt("HELLOWORLD", 3)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	pt, err := Decrypt(ct, 3)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if pt != "HELLOWORLD  " {
		t.Fatalf("expected padded plaintext back, got %q", pt)
	}
}

func TestSentinel_CrossesBoundary(t *testing.T) {
	if _, err := Encrypt("HELLO", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
