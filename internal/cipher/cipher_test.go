package cipher

import (
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// padded is the reference padding policy: trailing spaces to the next
// multiple of rod.
func padded(msg string, rod int) string {
	rs := []rune(msg)
	for len(rs)%rod != 0 {
		rs = append(rs, ' ')
	}
	return string(rs)
}

func randMessage(n int) string {
	b := &strings.Builder{}
	b.Grow(n)
	for range n {
		b.WriteRune('A' + rand.Int32N(26))
	}
	return b.String()
}

func TestEncrypt_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		rod  int
		want string
	}{
		{"historic", "IAMHURTVERYBADLYHELP", 5, "IRYYATBHMVAEHEDLURLP"},
		{"historic padded", "IAMHURTVERYBADLYHELPME   ", 5, "IRYYMATBHEMVAE HEDL URLP "},
		{"pads to next multiple", "HELLOWORLD", 3, "HLODEOR LWL "},
		{"rod equals length", "HELLO", 5, "HELLO"},
		{"rod one", "HELLO", 1, "HELLO"},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encrypt(tt.msg, tt.rod)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecrypt_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		rod  int
		want string
	}{
		{"historic", "IRYYATBHMVAEHEDLURLP", 5, "IAMHURTVERYBADLYHELP"},
		{"historic padded", "IRYYMATBHEMVAE HEDL URLP ", 5, "IAMHURTVERYBADLYHELPME   "},
		{"keeps padding spaces", "HLODEOR LWL ", 3, "HELLOWORLD  "},
		{"rod equals length", "HELLO", 5, "HELLO"},
		{"empty", "", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decrypt(tt.msg, tt.rod)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip_Random(t *testing.T) {
	for range 200 {
		msg := randMessage(int(rand.Int32N(64)))
		rod := int(rand.Int32N(12)) + 1

		ct, err := Encrypt(msg, rod)
		require.NoError(t, err)
		pt, err := Decrypt(ct, rod)
		require.NoError(t, err)

		assert.Equal(t, padded(msg, rod), pt, "msg=%q rod=%d", msg, rod)
	}
}

func TestRoundTrip_Unicode(t *testing.T) {
	// Positions move per code point, not per byte.
	msg := "the bánh mì at 東京タワー, says ねこ"
	for rod := 1; rod <= 9; rod++ {
		ct, err := Encrypt(msg, rod)
		require.NoError(t, err)
		assert.Len(t, []rune(ct), len([]rune(padded(msg, rod))))

		pt, err := Decrypt(ct, rod)
		require.NoError(t, err)
		assert.Equal(t, padded(msg, rod), pt, "rod=%d", rod)
	}
}

func TestEncrypt_LengthIsSmallestMultiple(t *testing.T) {
	for length := 0; length <= 30; length++ {
		msg := randMessage(length)
		for rod := 1; rod <= 8; rod++ {
			ct, err := Encrypt(msg, rod)
			require.NoError(t, err)

			want := length
			if length%rod != 0 {
				want = length + rod - length%rod
			}
			assert.Len(t, []rune(ct), want, "len=%d rod=%d", length, rod)
		}
	}
}

func TestDecrypt_LengthPreserved(t *testing.T) {
	ct, err := Encrypt("IAMHURTVERYBADLYHELPME", 4)
	require.NoError(t, err)
	pt, err := Decrypt(ct, 4)
	require.NoError(t, err)
	assert.Len(t, pt, len(ct))
}

func TestEncrypt_IsPermutation(t *testing.T) {
	msg := "ATTACK AT DAWN, BRING ROPE"
	ct, err := Encrypt(msg, 7)
	require.NoError(t, err)

	sorted := func(s string) []rune {
		rs := []rune(s)
		sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
		return rs
	}
	assert.Equal(t, sorted(padded(msg, 7)), sorted(ct))
}

func TestDegenerateRods(t *testing.T) {
	msg := "NOOBFUSCATION"

	ct, err := Encrypt(msg, 1)
	require.NoError(t, err)
	assert.Equal(t, msg, ct, "rod 1 is the identity")

	ct, err = Encrypt(msg, len(msg))
	require.NoError(t, err)
	assert.Equal(t, msg, ct, "rod equal to length is the identity")

	// A rod longer than the message degenerates to a single padded row.
	ct, err = Encrypt("HELLO", 10)
	require.NoError(t, err)
	assert.Equal(t, "HELLO     ", ct)
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (string, error)
	}{
		{"encrypt rod zero", func() (string, error) { return Encrypt("HELLO", 0) }},
		{"encrypt rod negative", func() (string, error) { return Encrypt("HELLO", -3) }},
		{"decrypt rod zero", func() (string, error) { return Decrypt("HELLO", 0) }},
		{"decrypt rod negative", func() (string, error) { return Decrypt("HELLO", -3) }},
		{"decrypt length not multiple", func() (string, error) { return Decrypt("ABCDEFG", 3) }},
		{"decrypt unicode length not multiple", func() (string, error) { return Decrypt("ねこねこね", 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.fn()
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, out, "no partial output on invalid input")
		})
	}
}

func TestRows(t *testing.T) {
	rows, err := Rows("IAMHURTVERYBADLYHELP", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"IAMHU", "RTVER", "YBADL", "YHELP"}, rows)

	rows, err = Rows("HELLOWORLD", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"HEL", "LOW", "ORL", "D  "}, rows)

	rows, err = Rows("", 4)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = Rows("HELLO", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// The cipher holds no shared state, so independent callers may run
// concurrently without coordination.
func TestConcurrentCallers(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		rod := i%7 + 1
		g.Go(func() error {
			for range 100 {
				msg := randMessage(int(rand.Int32N(40)))
				ct, err := Encrypt(msg, rod)
				if err != nil {
					return err
				}
				pt, err := Decrypt(ct, rod)
				if err != nil {
					return err
				}
				if pt != padded(msg, rod) {
					t.Errorf("round trip mismatch: msg=%q rod=%d got=%q", msg, rod, pt)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
