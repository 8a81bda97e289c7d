// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lead-engine/internal/leads"
	"github.com/pdiddy/lead-engine/internal/pubmed"
	"github.com/pdiddy/lead-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search PubMed and rank the resulting leads",
	Long: `Search queries PubMed for recent publications matching the given keywords,
enriches each record with a representative author, and prints the leads
ranked by contact propensity.

Scores run 0-100 and reward recent publication, keyword hits in the
title, and a recoverable contact email.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, _ := cmd.Flags().GetStringSlice("keywords")
		yearsBack, _ := cmd.Flags().GetInt("years-back")
		maxResults, _ := cmd.Flags().GetInt("max-results")
		asJSON, _ := cmd.Flags().GetBool("json")
		savePath, _ := cmd.Flags().GetString("save")

		if len(keywords) == 0 {
			return fmt.Errorf("at least one --keywords value is required")
		}

		cfg := loadConfig()
		client := pubmed.NewClient(cfg.PubMed)
		svc := leads.NewService(client, cfg.Scoring, cfg.PubMed.RequestDelay)

		req := types.SearchRequest{
			Keywords:   keywords,
			YearsBack:  yearsBack,
			MaxResults: maxResults,
		}

		fmt.Fprintf(os.Stderr, "Searching PubMed for %v (last %d years)...\n", keywords, yearsBack)
		result, err := svc.Search(cmd.Context(), req)
		if err != nil {
			return err
		}

		if asJSON {
			if err := leads.FormatJSON(result, os.Stdout); err != nil {
				return fmt.Errorf("encoding results: %w", err)
			}
		} else {
			leads.FormatTable(result, os.Stdout)
		}

		if savePath != "" {
			if err := leads.WriteLeadFile(savePath, req, result); err != nil {
				return fmt.Errorf("saving leads: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Saved %d leads to %s\n", result.Total, savePath)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSlice("keywords", nil, "search keywords (comma-separated or repeated)")
	searchCmd.Flags().Int("years-back", 2, "publication lookback window in years")
	searchCmd.Flags().Int("max-results", 50, "maximum number of records to fetch")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "write the leads to a YAML file at this path")

	rootCmd.AddCommand(searchCmd)
}
