package main

import (
	"fmt"
	"log"

	"github.com/jonathan/corporate-translator/internal/config"
	"github.com/jonathan/corporate-translator/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the translation, history, feedback, and team endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	// Without a server key the API still runs: callers can bring their
	// own via the x-gemini-api-key header, and everything else falls
	// back to mock output.
	if cfg.APIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, translations without a caller key will use mock output")
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
