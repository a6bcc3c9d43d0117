// Package main is the entry point for the profextract CLI.
package main

import (
	"os"

	"github.com/jmylchreest/profextract/cmd/profextract/commands"
	"github.com/jmylchreest/profextract/internal/logger"
	"github.com/jmylchreest/profextract/pkg/profile"
)

func main() {
	err := commands.Execute()
	if err != nil {
		logger.Error("profextract failed", "error", err)
	}
	os.Exit(profile.ExitCode(err))
}
