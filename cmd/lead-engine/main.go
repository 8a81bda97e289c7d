// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lead-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lead-engine/internal/secrets"
	"github.com/pdiddy/lead-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value
// for key, otherwise "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the lead-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "lead-engine",
	Short: "Generate sales leads from recent PubMed publications",
	Long: `lead-engine searches PubMed for recent publications matching a set of
keywords, enriches each hit with a representative author and contact
details, and ranks the results by contact propensity.

Run a one-off search from the terminal with the search subcommand, or
start the dashboard and JSON API with serve.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lead-engine.yaml or ~/.config/lead-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lead-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lead-engine"))
		}
	}

	viper.SetEnvPrefix("LEAD_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the pipeline configuration: stock defaults, then
// config-file overrides, then secrets for the NCBI identity fields.
func loadConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if viper.IsSet("pubmed.timeout") {
		cfg.PubMed.Timeout = viper.GetDuration("pubmed.timeout")
	}
	if viper.IsSet("pubmed.max_results") {
		cfg.PubMed.MaxResults = viper.GetInt("pubmed.max_results")
	}
	if viper.IsSet("pubmed.sort") {
		cfg.PubMed.Sort = viper.GetString("pubmed.sort")
	}
	if viper.IsSet("pubmed.request_delay") {
		cfg.PubMed.RequestDelay = viper.GetDuration("pubmed.request_delay")
	}
	if viper.IsSet("server.port") {
		cfg.Server.Port = viper.GetInt("server.port")
	}

	cfg.PubMed.APIKey = secretDefault("ncbi-api-key", viper.GetString("pubmed.api_key"))
	cfg.PubMed.Email = secretDefault("ncbi-email", viper.GetString("pubmed.email"))

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
