// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lead-engine/internal/leads"
	"github.com/pdiddy/lead-engine/internal/pubmed"
	"github.com/pdiddy/lead-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lead dashboard and JSON API",
	Long: `Serve starts the HTTP server: the browser dashboard at /, the search API
at /api/search, and the CSV export at /api/export.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Server.Port = port
		}

		client := pubmed.NewClient(cfg.PubMed)
		svc := leads.NewService(client, cfg.Scoring, cfg.PubMed.RequestDelay)
		router := server.NewRouter(svc)

		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "Serving dashboard on http://localhost%s\n", addr)
		return router.Run(addr)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "TCP port to listen on (default from config, 8080)")

	rootCmd.AddCommand(serveCmd)
}
