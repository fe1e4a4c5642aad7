package main

import (
	"os"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/logger"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/server"
)

func main() {
	// NewServer loads config, connects and migrates the database, then builds the router
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

	logger.Info().Msg("Application finished gracefully.")
}
