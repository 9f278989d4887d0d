package scytale

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/scytale/scytale/internal/cipher"
	"github.com/scytale/scytale/internal/files"
	"github.com/scytale/scytale/internal/report"
	"github.com/scytale/scytale/internal/types"
)

var (
	flagRod     int
	flagJSON    bool
	flagNoColor bool
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the scytale CLI. Run with a message
// it encrypts; run bare it decrypts the conventional ciphertext artifact.
var rootCmd = &cobra.Command{
	Use:   "scytale [message]",
	Short: "Encrypt and decrypt messages with the scytale cipher",
	Long: "Scytale wraps a message around a rod of a chosen length and reads it off\n" +
		"column by column, the way the Spartans did with a leather strip.\n\n" +
		"Given a message argument it encrypts and writes " + files.EncryptedFile + ";\n" +
		"given none it reads " + files.EncryptedFile + ", decrypts, and writes " + files.DecryptedFile + ".",
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := charmlog.InfoLevel
		if flagVerbose {
			level = charmlog.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
	RunE: runRoot,
}

// Execute runs the scytale CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagRod, "rod", "r", 0, "rod length in characters (0 = config value or 5)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func runRoot(cmd *cobra.Command, args []string) error {
	s := resolveSettings()
	if len(args) == 1 {
		return encryptTo(cmd, args[0], s.rod, s.encryptedOut, s, false)
	}

	// No message: decrypt the conventional artifact.
	ct, err := files.ReadMessage(s.input)
	if err != nil {
		return err
	}
	return decryptTo(cmd, ct, s.rod, s.decryptedOut, s, false)
}

// encryptTo runs the encode path shared by the root and encrypt commands:
// cipher, persist, log, render.
func encryptTo(cmd *cobra.Command, msg string, rod int, out string, s settings, copyResult bool) error {
	ct, err := cipher.Encrypt(msg, rod)
	if err != nil {
		return err
	}
	if err := files.WriteMessage(out, ct); err != nil {
		return err
	}
	res := types.Result{
		Operation: types.OpEncrypt,
		Rod:       rod,
		Length:    len([]rune(ct)),
		Padded:    len([]rune(ct)) - len([]rune(msg)),
		Output:    ct,
		Artifact:  out,
	}
	logResult(cmd.Context(), res)
	if copyResult {
		copyToClipboard(cmd.Context(), ct)
	}
	return render(res, s)
}

// decryptTo is the decode counterpart of encryptTo.
func decryptTo(cmd *cobra.Command, ct string, rod int, out string, s settings, copyResult bool) error {
	pt, err := cipher.Decrypt(ct, rod)
	if err != nil {
		return err
	}
	if err := files.WriteMessage(out, pt); err != nil {
		return err
	}
	res := types.Result{
		Operation: types.OpDecrypt,
		Rod:       rod,
		Length:    len([]rune(pt)),
		Output:    pt,
		Artifact:  out,
	}
	logResult(cmd.Context(), res)
	if copyResult {
		copyToClipboard(cmd.Context(), pt)
	}
	return render(res, s)
}

func render(res types.Result, s settings) error {
	if flagJSON {
		return report.WriteJSON(os.Stdout, res)
	}
	report.PrintResult(os.Stdout, res, report.PrintOptions{NoColor: s.noColor})
	return nil
}
