package main

import (
	"os"

	"github.com/aditya/universe/internal/pkg/logger"
	"github.com/aditya/universe/internal/server"
)

func main() {
	// NewServer orchestrates config, logging, database and route setup. A
	// failed initial store connection is fatal; there is no retry.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
