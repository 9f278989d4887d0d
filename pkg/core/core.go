package core

import "github.com/scytale/scytale/internal/cipher"

// ErrInvalidInput is the same sentinel the internal cipher wraps into every
// failure, re-exported so external callers can use errors.Is without
// importing internals.
var ErrInvalidInput = cipher.ErrInvalidInput

// Encrypt is the stable encode entrypoint for other programs. The message is
// padded with trailing spaces to the next multiple of rod before wrapping.
func Encrypt(msg string, rod int) (string, error) {
	return cipher.Encrypt(msg, rod)
}

// Decrypt inverts Encrypt for the same rod. The ciphertext length must be a
// multiple of rod; padding spaces come back untrimmed.
func Decrypt(msg string, rod int) (string, error) {
	return cipher.Decrypt(msg, rod)
}
