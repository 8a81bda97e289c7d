// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes propensity scores for enriched articles and
// produces the ranked lead list.
package score

import (
	"sort"
	"strings"

	"github.com/pdiddy/lead-engine/internal/extract"
	"github.com/pdiddy/lead-engine/pkg/types"
)

// Score bounds. Weights are configurable but the final score always lands
// in this closed interval.
const (
	minScore = 0
	maxScore = 100
)

// Scorer computes scores from an immutable set of weights.
type Scorer struct {
	cfg types.ScoringConfig
}

// New returns a Scorer using the given weights.
func New(cfg types.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score returns the propensity score for one article: a base award plus
// recency, keyword relevance against the title, and an email bonus,
// clamped to [0, 100]. referenceYear anchors the recency calculation.
func (s *Scorer) Score(a types.Article, keywords []string, referenceYear int) int {
	total := s.cfg.Base

	// Articles with no publication year contribute nothing for recency.
	if a.Year > 0 {
		switch age := referenceYear - a.Year; {
		case age <= 0:
			total += s.cfg.RecencyCurrentYear
		case age == 1:
			total += s.cfg.RecencyLastYear
		case age == 2:
			total += s.cfg.RecencyTwoYears
		}
	}

	points := s.distinctTitleMatches(a.Title, keywords) * s.cfg.KeywordPoints
	if points > s.cfg.KeywordCap {
		points = s.cfg.KeywordCap
	}
	total += points

	if a.Author != nil && a.Author.Email != "" {
		total += s.cfg.EmailBonus
	}

	if total > maxScore {
		return maxScore
	}
	if total < minScore {
		return minScore
	}
	return total
}

// distinctTitleMatches counts distinct keywords appearing in the title,
// case-insensitively. Duplicate keywords in the request count once.
func (s *Scorer) distinctTitleMatches(title string, keywords []string) int {
	title = strings.ToLower(title)
	matched := make(map[string]bool)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || matched[kw] {
			continue
		}
		if strings.Contains(title, kw) {
			matched[kw] = true
		}
	}
	return len(matched)
}

// RankAll scores every article and returns the ranked lead list, best
// first. The sort is stable, so articles with equal scores keep their
// enrichment order; ranks are 1-based and assigned after the sort, with
// no gaps and no shared ranks.
func (s *Scorer) RankAll(articles []types.Article, keywords []string, referenceYear int) []types.Lead {
	leads := make([]types.Lead, 0, len(articles))
	for _, a := range articles {
		leads = append(leads, newLead(a, s.Score(a, keywords, referenceYear)))
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Score > leads[j].Score
	})
	for i := range leads {
		leads[i].Rank = i + 1
	}
	return leads
}

// newLead flattens an article and its score into the boundary shape.
// Long titles and affiliations are cut at 200 runes for display.
func newLead(a types.Article, score int) types.Lead {
	lead := types.Lead{
		Score:           score,
		PaperTitle:      truncate(a.Title, 200),
		PublicationDate: extract.FormatPubDate(a.Year, a.Month),
		PubmedID:        a.PMID,
	}
	if a.Author != nil {
		lead.Name = a.Author.Name
		lead.Affiliation = truncate(a.Author.Affiliation, 200)
		lead.Email = a.Author.Email
	}
	return lead
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
