package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/scytale/scytale/internal/cipher"
)

// PrintGrid renders the message wrapped around the rod: one table row per
// turn of the strip, one column per character slot, with column indices in
// the header and row indices down the left edge. Padding spaces show up as
// blank cells. This is the teaching view of the cipher, not a data format.
func PrintGrid(w io.Writer, msg string, rod int) error {
	rows, err := cipher.Rows(msg, rod)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	tbl := tablewriter.NewTable(w)
	hdr := make([]string, 0, rod+1)
	hdr = append(hdr, "")
	for c := 0; c < rod; c++ {
		hdr = append(hdr, strconv.Itoa(c))
	}
	tbl.Header(hdr)
	for i, row := range rows {
		cells := make([]string, 0, rod+1)
		cells = append(cells, strconv.Itoa(i))
		for _, r := range row {
			cells = append(cells, string(r))
		}
		if err := tbl.Append(cells); err != nil {
			return err
		}
	}
	return tbl.Render()
}
