package cipher

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single failure kind this package reports: a
// non-positive rod length, or a ciphertext whose length is not a multiple of
// the rod. Every returned error wraps it, so callers can test with errors.Is.
var ErrInvalidInput = errors.New("cipher: invalid input")

// direction selects which traversal of the grid the transposer reads.
type direction int

const (
	encode direction = iota // write row-major, read column-major
	decode                  // the inverse traversal
)

// Encrypt wraps msg around a rod of the given length and returns the
// unwound ciphertext. The message is padded with trailing spaces to the next
// multiple of rod, so the result length is the smallest multiple of rod that
// fits the message. An empty message encrypts to an empty string. Characters
// are Unicode code points; only their positions change.
func Encrypt(msg string, rod int) (string, error) {
	if rod < 1 {
		return "", fmt.Errorf("%w: rod length must be a positive integer, got %d", ErrInvalidInput, rod)
	}
	return string(transpose(pad([]rune(msg), rod), rod, encode)), nil
}

// Decrypt inverts Encrypt for the same rod length. The ciphertext length
// must be an exact multiple of rod; anything else means the ciphertext is
// malformed or was produced with a different rod, which this cipher cannot
// tell apart. Padding spaces added at encryption time are preserved in the
// output, not trimmed.
func Decrypt(msg string, rod int) (string, error) {
	if rod < 1 {
		return "", fmt.Errorf("%w: rod length must be a positive integer, got %d", ErrInvalidInput, rod)
	}
	rs := []rune(msg)
	if len(rs)%rod != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of rod length %d", ErrInvalidInput, len(rs), rod)
	}
	return string(transpose(rs, rod, decode)), nil
}

// Rows returns the padded message wrapped onto the rod, one string per turn
// of the strip, each exactly rod characters wide. Reading the rows top to
// bottom, column by column, reproduces Encrypt. An empty message yields no
// rows.
func Rows(msg string, rod int) ([]string, error) {
	if rod < 1 {
		return nil, fmt.Errorf("%w: rod length must be a positive integer, got %d", ErrInvalidInput, rod)
	}
	rs := pad([]rune(msg), rod)
	rows := make([]string, 0, len(rs)/rod)
	for i := 0; i < len(rs); i += rod {
		rows = append(rows, string(rs[i:i+rod]))
	}
	return rows, nil
}

// pad appends trailing spaces until len(rs) divides evenly by rod.
func pad(rs []rune, rod int) []rune {
	for len(rs)%rod != 0 {
		rs = append(rs, ' ')
	}
	return rs
}

// transpose reindexes src between the two traversal orders of the grid. Both
// directions are the same permutation with the grid dimensions swapped, so a
// single loop guarantees that decode inverts encode. Callers must ensure
// len(src) divides evenly by rod.
func transpose(src []rune, rod int, dir direction) []rune {
	rows := len(src) / rod
	maj, min := rows, rod
	if dir == decode {
		maj, min = rod, rows
	}
	dst := make([]rune, len(src))
	for i := range dst {
		dst[i] = src[(i%maj)*min+i/maj]
	}
	return dst
}
