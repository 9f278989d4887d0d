package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintGrid_WrapsRowMajor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintGrid(&buf, "IAMHURTVERYBADLYHELP", 5))
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + borders + 4 wraps
	assert.GreaterOrEqual(t, len(lines), 5)
	// first wrap of the strip reads I A M H U left to right
	var first string
	for _, ln := range lines {
		if strings.Contains(ln, "I") && strings.Contains(ln, "U") {
			first = ln
			break
		}
	}
	require.NotEmpty(t, first, "expected a row containing the first wrap; got:\n%s", out)
	for _, c := range []string{"I", "A", "M", "H", "U"} {
		assert.Contains(t, first, c)
	}
}

func TestPrintGrid_InvalidRod(t *testing.T) {
	var buf bytes.Buffer
	err := PrintGrid(&buf, "HELLO", 0)
	require.Error(t, err)
}

func TestPrintGrid_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintGrid(&buf, "", 4))
}
