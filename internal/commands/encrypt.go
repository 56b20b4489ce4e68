package commands

import (
	"github.com/spf13/cobra"

	"github.com/avesov/cipherctl/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] texts...",
		Aliases: []string{"enc"},
		Short:   "Encrypt texts",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := parse(args, false)
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}
}
