package report

import (
	"encoding/json"
	"io"

	"github.com/scytale/scytale/internal/types"
)

// WriteJSON pretty-prints the result as JSON for pipelines.
func WriteJSON(w io.Writer, res types.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
