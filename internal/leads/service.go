// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package leads runs the two-phase search-and-enrich pipeline and hands
// the results to the scorer.
package leads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/lead-engine/internal/score"
	"github.com/pdiddy/lead-engine/pkg/types"
)

// timeNow supplies the reference year for recency scoring. Declared as a
// var so tests can substitute a fixed clock.
var timeNow = time.Now

// Fetcher is the outbound PubMed surface the pipeline needs.
// *pubmed.Client implements it; tests substitute a stub.
type Fetcher interface {
	Search(ctx context.Context, keywords []string, yearsBack, maxResults int) ([]string, error)
	FetchDetails(ctx context.Context, pmids []string) ([]types.Article, error)
}

// Service composes the PubMed client and the scorer into one search
// operation. A Service holds no per-request state; one instance serves
// concurrent requests.
type Service struct {
	PubMed Fetcher
	Scorer *score.Scorer

	// Delay is the advisory pause between the search call and the detail
	// fetch, per NCBI rate-limit guidance.
	Delay time.Duration
}

// NewService wires a Service from a fetcher and the scoring weights.
func NewService(fetcher Fetcher, scoring types.ScoringConfig, delay time.Duration) *Service {
	return &Service{
		PubMed: fetcher,
		Scorer: score.New(scoring),
		Delay:  delay,
	}
}

// Result is the boundary shape for one completed search.
type Result struct {
	Leads []types.Lead `json:"leads" yaml:"leads"`
	Total int          `json:"total" yaml:"total"`
}

// Search runs one full lead search: esearch for identifiers, efetch for
// records, then score and rank. An empty identifier list is a valid
// outcome and short-circuits to an empty result; a failure in either
// outbound call aborts the whole search with no partial results.
func (s *Service) Search(ctx context.Context, req types.SearchRequest) (Result, error) {
	if !hasKeywords(req.Keywords) {
		return Result{}, fmt.Errorf("search request has no keywords")
	}

	pmids, err := s.PubMed.Search(ctx, req.Keywords, req.YearsBack, req.MaxResults)
	if err != nil {
		return Result{}, fmt.Errorf("searching PubMed: %w", err)
	}
	if len(pmids) == 0 {
		return Result{Leads: []types.Lead{}}, nil
	}

	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	articles, err := s.PubMed.FetchDetails(ctx, pmids)
	if err != nil {
		return Result{}, fmt.Errorf("fetching article details: %w", err)
	}

	leads := s.Scorer.RankAll(articles, req.Keywords, timeNow().Year())
	return Result{Leads: leads, Total: len(leads)}, nil
}

func hasKeywords(keywords []string) bool {
	for _, kw := range keywords {
		if strings.TrimSpace(kw) != "" {
			return true
		}
	}
	return false
}
