// Package scytale provides the command-line interface for the scytale tool.
// It configures subcommands (encrypt, decrypt, grid, tui, config), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/scytale/scytale/cmd/scytale"
//	func main() { scytale.Execute() }
package scytale
