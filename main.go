package main

import "github.com/scytale/scytale/cmd/scytale"

func main() { scytale.Execute() }
