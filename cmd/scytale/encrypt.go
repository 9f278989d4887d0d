package scytale

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagEncOut  string
	flagEncCopy bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "encrypt [message]",
		Short: "Encrypt a message",
		Long:  "Encrypt wraps the message around the rod and writes the ciphertext artifact.\nThe message is read from the argument, or from stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEncrypt,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagEncOut, "out", "", "output file (default encrypted.txt)")
	cmd.Flags().BoolVar(&flagEncCopy, "copy", false, "copy the ciphertext to the clipboard")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	s := resolveSettings()
	msg, err := messageFromArgsOrStdin(args)
	if err != nil {
		return err
	}
	out := s.encryptedOut
	if flagEncOut != "" {
		out = flagEncOut
	}
	return encryptTo(cmd, msg, s.rod, out, s, flagEncCopy)
}

// messageFromArgsOrStdin prefers the positional argument; otherwise it reads
// stdin to EOF, dropping one trailing newline so `echo MSG | scytale encrypt`
// does not smuggle a '\n' into the grid.
func messageFromArgsOrStdin(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}
