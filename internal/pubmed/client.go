// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API: esearch to find matching
// publication identifiers, efetch to retrieve and enrich the full records.
package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/lead-engine/internal/httputil"
	"github.com/pdiddy/lead-engine/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute
// httptest servers.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const defaultMaxResults = 50

// Client issues read-only queries against PubMed.
type Client struct {
	HTTP   *http.Client
	Config types.PubMedConfig
}

// NewClient returns a Client whose HTTP client enforces cfg.Timeout.
func NewClient(cfg types.PubMedConfig) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// Search runs an esearch query for the given keywords and lookback window
// and returns PMIDs in the order PubMed returns them (most recent first
// under the default pub_date sort). maxResults is clamped to the
// configured ceiling.
func (c *Client) Search(ctx context.Context, keywords []string, yearsBack, maxResults int) ([]string, error) {
	term := BuildQuery(keywords, yearsBack)
	if term == "" {
		return nil, fmt.Errorf("no searchable keywords")
	}

	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if ceiling := c.Config.MaxResults; ceiling > 0 && maxResults > ceiling {
		maxResults = ceiling
	}

	sortOrder := c.Config.Sort
	if sortOrder == "" {
		sortOrder = "pub_date"
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {term},
		"retmax":  {strconv.Itoa(maxResults)},
		"retmode": {"xml"},
		"sort":    {sortOrder},
	}
	c.addIdentity(params)

	var sr esearchResult
	if err := c.getXML(ctx, esearchBase, params, &sr); err != nil {
		return nil, fmt.Errorf("PubMed search: %w", err)
	}
	return sr.IDs, nil
}

// addIdentity attaches the optional NCBI API key and contact email.
func (c *Client) addIdentity(params url.Values) {
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
}

// getXML performs a GET against an E-utilities endpoint and decodes the
// XML response into out. Rate-limit responses are retried with backoff.
func (c *Client) getXML(ctx context.Context, base string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient(), req, 0)
	if err != nil {
		return fmt.Errorf("API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned HTTP %d", resp.StatusCode)
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	if c.Config.Timeout > 0 {
		return &http.Client{Timeout: c.Config.Timeout}
	}
	return http.DefaultClient
}

// esearch response XML structure. Only the identifier list is consumed;
// the rest of the envelope is ignored.
type esearchResult struct {
	IDs []string `xml:"IdList>Id"`
}
