package main

import (
	"fmt"
	"os"

	"github.com/folio-sh/folio/internal/config"
	"github.com/folio-sh/folio/internal/logger"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{Level: settings.LogLevel, Path: settings.LogPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := newRootCmd(settings, log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
