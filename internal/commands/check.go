package commands

import (
	"github.com/spf13/cobra"

	"github.com/avesov/cipherctl/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand,
// which runs a full encrypt/decrypt round trip per text and reports Ok/Err.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] texts...",
		Short: "Round-trip texts through the cipher and verify recovery",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := parse(args, false)
			if err != nil {
				return err
			}

			return logic.RunCheck(cfg)
		},
	}

	cmd.Flags().Bool("corrupt", false, "Lower-case the first cipher letter before decrypting")

	return cmd
}
