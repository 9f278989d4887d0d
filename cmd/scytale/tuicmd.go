package scytale

import (
	"github.com/spf13/cobra"

	"github.com/scytale/scytale/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive cipher session",
		Long:  "Tui opens an interactive session: type a message, adjust the rod, and watch\nthe ciphertext and wrap grid update live.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s := resolveSettings()
			return tui.Run(s.rod)
		},
	}
	rootCmd.AddCommand(cmd)
}
