package scytale

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scytale/scytale/internal/cipher"
	"github.com/scytale/scytale/internal/files"
	"github.com/scytale/scytale/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "grid [message]",
		Short: "Show the message wrapped around the rod",
		Long: "Grid renders the wrap-around table the cipher reads from: one row per turn\n" +
			"of the strip, one column per character slot. With a message it shows the\n" +
			"encode grid and the resulting ciphertext; without one it decrypts the\n" +
			"ciphertext artifact and shows the grid the sender used.",
		Args: cobra.MaximumNArgs(1),
		RunE: runGrid,
	}
	rootCmd.AddCommand(cmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	s := resolveSettings()
	if len(args) == 1 {
		msg := args[0]
		if err := report.PrintGrid(os.Stdout, msg, s.rod); err != nil {
			return err
		}
		ct, err := cipher.Encrypt(msg, s.rod)
		if err != nil {
			return err
		}
		fmt.Println(ct)
		return nil
	}

	ct, err := files.ReadMessage(s.input)
	if err != nil {
		return err
	}
	pt, err := cipher.Decrypt(ct, s.rod)
	if err != nil {
		return err
	}
	if err := report.PrintGrid(os.Stdout, pt, s.rod); err != nil {
		return err
	}
	fmt.Println(pt)
	return nil
}
