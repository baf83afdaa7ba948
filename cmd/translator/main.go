// Package main provides the entry point for the Corporate Translator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "translator",
	Short: "Corporate Translator HTTP API Server",
	Long:  "Corporate Translator rewrites blunt workplace text into polished corporate language (and back) via REST API, with history and team style rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
