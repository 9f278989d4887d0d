// Package files holds the flat-file collaborators of the cipher: reading a
// message from disk and persisting a result. These are the only artifacts the
// tool touches.
package files

import (
	"fmt"
	"os"
)

// Conventional artifact names. Encrypt writes EncryptedFile; decrypt reads it
// back and writes DecryptedFile.
const (
	EncryptedFile = "encrypted.txt"
	DecryptedFile = "decrypted.txt"
)

// ReadMessage returns the exact content of the file at path. Nothing is
// trimmed: a stray trailing newline is part of the message and would change
// its length, which the decoder checks against the rod.
func ReadMessage(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// WriteMessage persists msg to path byte for byte, with no added newline.
// Padding spaces at the end of a decrypted message are content, not noise.
func WriteMessage(path, msg string) error {
	if err := os.WriteFile(path, []byte(msg), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
