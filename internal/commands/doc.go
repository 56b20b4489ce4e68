// Package commands provides the command-line interface for cipherctl.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - round-trip checking
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avesov/cipherctl/internal/config"
)

// bindFlags wires the command's flag set (including inherited persistent
// flags) into viper so CIPHERCTL_* environment variables apply.
func bindFlags(cmd *cobra.Command, _ []string) error {
	viper.SetEnvPrefix("cipherctl")
	viper.AutomaticEnv()

	return viper.BindPFlags(cmd.Flags())
}

// parse unmarshals the bound flags into a Config, attaches the positional
// texts and validates the result.
func parse(args []string, decrypt bool) (*config.Config, error) {
	var cfg config.Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Texts = args
	cfg.Decrypt = decrypt

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
