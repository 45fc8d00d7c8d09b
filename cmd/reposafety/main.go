package main

import (
	"errors"
	"os"

	"github.com/reposafety/reposafety/internal/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	err := cmd.Execute()
	if errors.Is(err, cmd.ErrIssuesFound) {
		os.Exit(1)
	}
	if err != nil {
		// Environment failure, distinct from "issues found".
		log.Error().Err(err).Msg("Repo safety check failed")
		os.Exit(2)
	}
}
