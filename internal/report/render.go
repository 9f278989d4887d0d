package report

import (
	"fmt"
	"io"

	"github.com/scytale/scytale/internal/types"
)

type PrintOptions struct {
	NoColor bool
}

// PrintResult writes a one-line summary of the run followed by the produced
// text. The output text is always the last line so shell pipelines can grab
// it with tail -1.
func PrintResult(w io.Writer, res types.Result, opts PrintOptions) {
	label := string(res.Operation)
	if !opts.NoColor {
		label = colorOperation(res.Operation)
	}
	fmt.Fprintf(w, "%s rod=%d length=%d", label, res.Rod, res.Length)
	if res.Padded > 0 {
		fmt.Fprintf(w, " padded=%d", res.Padded)
	}
	if res.Artifact != "" {
		fmt.Fprintf(w, " -> %s", res.Artifact)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, res.Output)
}

func colorOperation(op types.Operation) string {
	switch op {
	case types.OpEncrypt:
		return "\x1b[32mencrypt\x1b[0m" // green
	case types.OpDecrypt:
		return "\x1b[36mdecrypt\x1b[0m" // cyan
	default:
		return string(op)
	}
}
