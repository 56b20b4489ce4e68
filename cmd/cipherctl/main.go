package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avesov/cipherctl/internal/commands"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := commands.NewRootCommand(version).Execute(); err != nil {
		log.Error().Err(err).Msg("cipherctl failed")
		os.Exit(1)
	}
}
