package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/bullet-arbiter/internal/logger"
	"github.com/jonathan/bullet-arbiter/internal/server"
)

const defaultPort = 8080

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bullet arbiter HTTP API",
	Long:  "Starts an HTTP server exposing the arbitration and analysis endpoints. The server is stateless: every request is scored and answered without touching storage.",
	RunE:  runServe,
}

var (
	servePort  int
	serveDebug bool
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", defaultPort, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug-level logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := logger.New(true, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv := server.New(server.Config{Port: servePort, Logger: log})
	return srv.Start()
}
