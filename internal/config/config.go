// Package config holds the CLI configuration shared by all subcommands.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Cipher engine names accepted by the --cipher flag.
const (
	CipherGronsfeld = "gronsfeld"
	CipherRoute     = "route"
)

// Config is populated from flags and environment variables via viper.
type Config struct {
	// Common flags
	Cipher   string `mapstructure:"cipher"   validate:"oneof=gronsfeld route"`
	Key      string `mapstructure:"key"`
	Cols     int    `mapstructure:"cols"     validate:"min=0,max=100"`
	Parallel int    `mapstructure:"parallel" validate:"min=1"`
	Quiet    bool   `mapstructure:"quiet"`
	Stats    bool   `mapstructure:"stats"`

	// Command-specific flags
	Corrupt bool `mapstructure:"corrupt"`
	Decrypt bool

	// Positional arguments
	Texts []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags and checks
// that the selected engine has its key material. The cipher constructors
// remain the authority on key validity; this only front-loads friendlier
// CLI errors.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	switch c.Cipher {
	case CipherGronsfeld:
		if c.Key == "" {
			return errors.New("gronsfeld cipher requires --key")
		}
	case CipherRoute:
		if c.Cols == 0 {
			return errors.New("route cipher requires --cols")
		}
	}

	return nil
}
