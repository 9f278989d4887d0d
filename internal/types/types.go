package types

// Operation names the cipher direction a command ran.
type Operation string

const (
	OpEncrypt Operation = "encrypt"
	OpDecrypt Operation = "decrypt"
)

// Result describes one completed cipher invocation: which direction ran, the
// rod length used, the produced text, and where it was persisted. Length and
// Padded count characters (code points), not bytes.
type Result struct {
	Operation Operation `json:"operation"`
	Rod       int       `json:"rod"`
	Length    int       `json:"length"`
	Padded    int       `json:"padded,omitempty"` // trailing spaces added at encrypt time
	Output    string    `json:"output"`
	Artifact  string    `json:"artifact,omitempty"` // path the output was written to
}
