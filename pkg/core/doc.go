// Package core provides a small, stable facade over the scytale cipher for
// external integrations. It deliberately re-exports a narrow API surface —
// the two operations and their error sentinel — so third-party tools can
// depend on a stable import path without exposing internal packages.
//
// Example:
//
//	out, err := core.Encrypt("IAMHURTVERYBADLYHELP", 5)
//	if err != nil { /* handle */ }
//	fmt.Println(out) // IRYYATBHMVAEHEDLURLP
package core
