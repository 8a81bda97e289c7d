// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/lead-engine/internal/extract"
	"github.com/pdiddy/lead-engine/pkg/types"
)

// FetchDetails retrieves the full records for the given PMIDs in one efetch
// call and enriches each into an Article. Records that cannot be parsed
// into an identified article are dropped, never errored, so the returned
// slice may be shorter than pmids. Order follows the efetch response,
// which preserves the order of the id parameter.
func (c *Client) FetchDetails(ctx context.Context, pmids []string) ([]types.Article, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
	}
	c.addIdentity(params)

	var set articleSet
	if err := c.getXML(ctx, efetchBase, params, &set); err != nil {
		return nil, fmt.Errorf("PubMed fetch: %w", err)
	}

	articles := make([]types.Article, 0, len(set.Articles))
	for _, raw := range set.Articles {
		if a, ok := enrich(raw); ok {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

// enrich applies the per-record extraction rules. Only the PMID is
// required; every other field has a documented fallback. The second
// return value is false when the record must be dropped.
func enrich(raw pubmedArticle) (types.Article, bool) {
	pmid := strings.TrimSpace(raw.PMID)
	if pmid == "" {
		return types.Article{}, false
	}

	a := types.Article{
		PMID:   pmid,
		Title:  strings.TrimSpace(string(raw.Title)),
		Month:  strings.TrimSpace(raw.PubDate.Month),
		Author: representativeAuthor(raw.Authors),
	}
	if y, err := strconv.Atoi(strings.TrimSpace(raw.PubDate.Year)); err == nil {
		a.Year = y
	}
	return a, true
}

// representativeAuthor picks the contact to carry forward: the first
// author (in listed order) with a recoverable email, falling back to the
// very first author when no email is found. Returns nil for an empty list.
func representativeAuthor(authors []rawAuthor) *types.Author {
	var first *types.Author
	for i, raw := range authors {
		author := &types.Author{
			Name: extract.AuthorName(raw.ForeName, raw.LastName),
		}
		if len(raw.Affiliations) > 0 {
			author.Affiliation = strings.TrimSpace(raw.Affiliations[0])
			author.Email = extract.Email(author.Affiliation)
		}
		if author.Email != "" {
			return author
		}
		if i == 0 {
			first = author
		}
	}
	return first
}

// efetch response XML structures. Field paths descend through the
// MedlineCitation envelope directly; fields absent from a record simply
// stay zero-valued.
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    string      `xml:"MedlineCitation>PMID"`
	Title   flatText    `xml:"MedlineCitation>Article>ArticleTitle"`
	PubDate pubDate     `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	Authors []rawAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type pubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
}

type rawAuthor struct {
	LastName     string   `xml:"LastName"`
	ForeName     string   `xml:"ForeName"`
	Affiliations []string `xml:"AffiliationInfo>Affiliation"`
}

// flatText collects every character-data node under an element, so titles
// keep the text of nested markup spans (<i>, <sup>, and similar) as one
// contiguous string.
type flatText string

func (t *flatText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case xml.CharData:
			b.Write(v)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				*t = flatText(b.String())
				return nil
			}
			depth--
		}
	}
}
