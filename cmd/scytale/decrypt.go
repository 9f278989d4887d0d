package scytale

import (
	"github.com/spf13/cobra"

	"github.com/scytale/scytale/internal/files"
)

var (
	flagDecIn   string
	flagDecOut  string
	flagDecCopy bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a ciphertext",
		Long: "Decrypt unwinds the ciphertext from the rod and writes the plaintext artifact.\n" +
			"The ciphertext is taken from the argument, or read from the input file when\n" +
			"no argument is given. Padding spaces added at encryption time stay in the\n" +
			"output; the rod length alone cannot tell them apart from message content.",
		Args: cobra.MaximumNArgs(1),
		RunE: runDecrypt,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagDecIn, "in", "", "ciphertext file to read (default encrypted.txt)")
	cmd.Flags().StringVar(&flagDecOut, "out", "", "output file (default decrypted.txt)")
	cmd.Flags().BoolVar(&flagDecCopy, "copy", false, "copy the plaintext to the clipboard")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	s := resolveSettings()
	var ct string
	if len(args) == 1 {
		ct = args[0]
	} else {
		in := s.input
		if flagDecIn != "" {
			in = flagDecIn
		}
		var err error
		if ct, err = files.ReadMessage(in); err != nil {
			return err
		}
	}
	out := s.decryptedOut
	if flagDecOut != "" {
		out = flagDecOut
	}
	return decryptTo(cmd, ct, s.rod, out, s, flagDecCopy)
}
