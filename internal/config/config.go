package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for scytale. Fields are
// pointers so an absent key can be told apart from a zero value when merging
// with CLI flags.
type FileConfig struct {
	// Rod is the default rod length when --rod is not given.
	Rod *int `yaml:"rod"`

	// Input is the conventional ciphertext source read when decrypting
	// without an explicit message.
	Input *string `yaml:"input"`

	// EncryptedOut and DecryptedOut override the conventional artifact
	// paths the results are written to.
	EncryptedOut *string `yaml:"encrypted_out"`
	DecryptedOut *string `yaml:"decrypted_out"`

	NoColor *bool `yaml:"no_color"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a working-directory config file in the given root.
// It supports .scytale.yml/.yaml and scytale.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".scytale.yml", ".scytale.yaml", "scytale.yml", "scytale.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "scytale", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
