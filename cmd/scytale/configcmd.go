package scytale

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scytale/scytale/internal/config"
)

var (
	cfgRod          int
	cfgOutput       string
	cfgInput        string
	cfgEncryptedOut string
	cfgDecryptedOut string
	cfgNoColor      bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .scytale.yml with selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().IntVar(&cfgRod, "rod", defaultRod, "default rod length")
	initCmd.Flags().StringVar(&cfgOutput, "output", ".scytale.yml", "output file path")
	initCmd.Flags().StringVar(&cfgInput, "input", "", "ciphertext source file")
	initCmd.Flags().StringVar(&cfgEncryptedOut, "encrypted-out", "", "encrypt artifact path")
	initCmd.Flags().StringVar(&cfgDecryptedOut, "decrypted-out", "", "decrypt artifact path")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	fc := config.FileConfig{
		Rod:          intPtr(cfgRod),
		Input:        optStrPtr(cfgInput),
		EncryptedOut: optStrPtr(cfgEncryptedOut),
		DecryptedOut: optStrPtr(cfgDecryptedOut),
		NoColor:      boolPtr(cfgNoColor),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Println("Wrote", cfgOutput)
	return nil
}

func optStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
