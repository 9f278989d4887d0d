// Package cipher implements the scytale transposition cipher: characters are
// written row by row onto a grid as wide as the rod and read back column by
// column. Wrapping "IAMHURTVERYBADLYHELP" around a rod of length 5 gives
//
//	I A M H U
//	R T V E R
//	Y B A D L
//	Y H E L P
//
// and unwinding the strip yields "IRYYATBHMVAEHEDLURLP". Messages whose
// length does not divide evenly by the rod are padded with trailing spaces
// before wrapping; decryption returns those spaces untouched, since the rod
// length alone cannot tell padding apart from message content.
//
// This is a toy cipher with no cryptographic strength. The package is
// internal; external consumers should use the stable facade in pkg/core.
package cipher
