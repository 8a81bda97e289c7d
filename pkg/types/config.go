// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound API calls.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "lead-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the NCBI E-utilities client.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the hard ceiling on records fetched per search
	// (default 200). Request caps above it are clamped down.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Sort is the esearch sort order (default "pub_date", most recent first).
	Sort string `json:"sort" yaml:"sort"`

	// RequestDelay is the pause between the search call and the detail
	// fetch (default 350ms). NCBI throttles clients above roughly three
	// requests per second.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email is an optional contact address passed to NCBI, per their
	// usage guidelines.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// ScoringConfig holds the propensity score weights. The scorer treats a
// config as immutable; inject a modified copy to change weights in tests.
type ScoringConfig struct {
	// Base is awarded to every successfully enriched article.
	Base int `json:"base" yaml:"base"`

	// RecencyCurrentYear, RecencyLastYear, and RecencyTwoYears are the
	// points for articles aged 0, 1, and 2 years. Older articles, and
	// articles with no publication year, get no recency points.
	RecencyCurrentYear int `json:"recency_current_year" yaml:"recency_current_year"`
	RecencyLastYear    int `json:"recency_last_year" yaml:"recency_last_year"`
	RecencyTwoYears    int `json:"recency_two_years" yaml:"recency_two_years"`

	// KeywordPoints is awarded per distinct keyword found in the title,
	// up to KeywordCap in total.
	KeywordPoints int `json:"keyword_points" yaml:"keyword_points"`
	KeywordCap    int `json:"keyword_cap" yaml:"keyword_cap"`

	// EmailBonus is awarded when the representative author has an email.
	EmailBonus int `json:"email_bonus" yaml:"email_bonus"`
}

// ServerConfig holds settings for the HTTP dashboard server.
type ServerConfig struct {
	// Port is the TCP port the server listens on (default 8080).
	Port int `json:"port" yaml:"port"`
}

// PipelineConfig groups all configuration for the lead pipeline.
type PipelineConfig struct {
	PubMed  PubMedConfig  `json:"pubmed" yaml:"pubmed"`
	Scoring ScoringConfig `json:"scoring" yaml:"scoring"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

// DefaultPipelineConfig returns the stock configuration: E-utilities
// defaults and the production scoring weights.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		PubMed: PubMedConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "lead-engine/0.1",
			},
			MaxResults:   200,
			Sort:         "pub_date",
			RequestDelay: 350 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			Base:               20,
			RecencyCurrentYear: 40,
			RecencyLastYear:    30,
			RecencyTwoYears:    20,
			KeywordPoints:      10,
			KeywordCap:         30,
			EmailBonus:         10,
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
