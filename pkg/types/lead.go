// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the lead pipeline.
package types

// SearchRequest describes one lead search: the keywords to match against
// recent publications, a lookback window in years, and a cap on the number
// of records fetched from PubMed.
type SearchRequest struct {
	Keywords   []string `json:"keywords" yaml:"keywords"`
	YearsBack  int      `json:"years_back" yaml:"years_back"`
	MaxResults int      `json:"max_results" yaml:"max_results"`
}

// Author is the representative contact carried forward from one article:
// the first listed author with a recoverable email, or the first author
// when no email is found anywhere in the list.
type Author struct {
	// Name is the display name assembled from the record's fore and last
	// name parts. Either part may be missing; both missing leaves "".
	Name string `json:"name" yaml:"name"`

	// Affiliation is the author's first free-text affiliation string.
	Affiliation string `json:"affiliation" yaml:"affiliation"`

	// Email is the first email-shaped substring recovered from the
	// affiliation text, or "" when none was found.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Article is one enriched PubMed record. It is produced by the efetch
// parser and consumed by the scorer; it is not mutated after creation.
type Article struct {
	// PMID is the PubMed identifier. Always non-empty: records without
	// one are dropped during parsing.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title with any nested markup flattened to
	// plain text. Empty when the record has no title.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year, or 0 when the record carries none.
	// A zero year makes the article unscoreable for recency.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Month is the publication month as PubMed reports it ("Mar", "03"),
	// or "" when absent.
	Month string `json:"month,omitempty" yaml:"month,omitempty"`

	// Author is the representative author, or nil when the record lists
	// no authors at all.
	Author *Author `json:"author,omitempty" yaml:"author,omitempty"`
}

// Lead is a ranked candidate contact derived from one article. Rank is
// assigned once, after the full result set is sorted by score.
type Lead struct {
	Rank            int    `json:"rank" yaml:"rank"`
	Score           int    `json:"score" yaml:"score"`
	Name            string `json:"name" yaml:"name"`
	Affiliation     string `json:"affiliation" yaml:"affiliation"`
	Email           string `json:"email,omitempty" yaml:"email,omitempty"`
	PaperTitle      string `json:"paper_title" yaml:"paper_title"`
	PublicationDate string `json:"publication_date" yaml:"publication_date"`
	PubmedID        string `json:"pubmed_id" yaml:"pubmed_id"`
}
