package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command with the flags shared by all
// subcommands.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "cipherctl [flags] command [flags] texts...",
		Short: "Classical Cyrillic text cipher utility",
		Long: `A classical cipher utility for the 33-letter Russian alphabet.
Provides a Gronsfeld-style additive cipher keyed by a word and a columnar
route transposition keyed by a column count. Pedagogical only: neither
scheme is cryptographically secure.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("cipher", "c", "gronsfeld", "Cipher engine: gronsfeld or route")
	root.PersistentFlags().StringP("key", "k", "", "Key word for the gronsfeld cipher")
	root.PersistentFlags().IntP("cols", "n", 0, "Column count for the route cipher (1-100)")
	root.PersistentFlags().
		IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics")

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand(), NewCheckCommand())

	return root
}
