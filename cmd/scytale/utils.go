package scytale

import (
	"context"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/scytale/scytale/internal/config"
	"github.com/scytale/scytale/internal/files"
)

// defaultRod is used when neither the flag nor any config file names one.
const defaultRod = 5

// settings are the effective tool options after merging CLI flags with the
// local and global config files (CLI > local > global).
type settings struct {
	rod          int
	input        string
	encryptedOut string
	decryptedOut string
	noColor      bool
}

func resolveSettings() settings {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			lcfg = c
		}
	}
	s := settings{
		rod:          pickInt(flagRod, lcfg.Rod, gcfg.Rod),
		input:        pickString("", lcfg.Input, gcfg.Input),
		encryptedOut: pickString("", lcfg.EncryptedOut, gcfg.EncryptedOut),
		decryptedOut: pickString("", lcfg.DecryptedOut, gcfg.DecryptedOut),
		noColor:      pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
	}
	if s.rod == 0 {
		s.rod = defaultRod
	}
	if s.input == "" {
		s.input = files.EncryptedFile
	}
	if s.encryptedOut == "" {
		s.encryptedOut = files.EncryptedFile
	}
	if s.decryptedOut == "" {
		s.decryptedOut = files.DecryptedFile
	}
	// piped output gets no escape codes regardless of flags
	if !s.noColor && !term.IsTerminal(int(os.Stdout.Fd())) {
		s.noColor = true
	}
	return s
}

// copyToClipboard is best-effort: headless environments have no clipboard
// and that should not fail the command.
func copyToClipboard(ctx context.Context, s string) {
	if err := clipboard.WriteAll(s); err != nil {
		loggerFromContext(ctx).Debug("clipboard unavailable", "err", err)
	}
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
