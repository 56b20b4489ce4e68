package commands

import (
	"github.com/spf13/cobra"

	"github.com/avesov/cipherctl/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
// Decrypt input must already be clean uppercase alphabet text.
func NewDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] texts...",
		Aliases: []string{"dec"},
		Short:   "Decrypt texts",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := parse(args, true)
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}
}
