// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lead-engine/internal/leads"
	"github.com/pdiddy/lead-engine/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubFetcher struct {
	pmids     []string
	articles  []types.Article
	searchErr error
	fetchErr  error
}

func (f *stubFetcher) Search(_ context.Context, _ []string, _, _ int) ([]string, error) {
	return f.pmids, f.searchErr
}

func (f *stubFetcher) FetchDetails(_ context.Context, _ []string) ([]types.Article, error) {
	return f.articles, f.fetchErr
}

func testRouter(fetcher *stubFetcher) *gin.Engine {
	svc := leads.NewService(fetcher, types.DefaultPipelineConfig().Scoring, 0)
	return NewRouter(svc)
}

func testArticles() []types.Article {
	return []types.Article{
		{
			PMID:  "12345",
			Title: "Hepatotoxicity screening in vitro",
			Year:  2026,
			Author: &types.Author{
				Name:        "Alice Alpha",
				Affiliation: "Institute of Toxicology",
				Email:       "alice@inst.edu",
			},
		},
		{
			PMID:  "67890",
			Title: "A study of something else",
			Year:  2020,
		},
	}
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSearchHandler(t *testing.T) {
	router := testRouter(&stubFetcher{
		pmids:    []string{"12345", "67890"},
		articles: testArticles(),
	})

	rec := postJSON(router, "/api/search",
		`{"keywords": ["hepatotoxicity"], "years_back": 2, "max_results": 50}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var result leads.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, 2, result.Total)
	require.Len(t, result.Leads, 2)

	top := result.Leads[0]
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, "Alice Alpha", top.Name)
	assert.Equal(t, "alice@inst.edu", top.Email)
	assert.Equal(t, "12345", top.PubmedID)
	assert.Greater(t, top.Score, result.Leads[1].Score)
}

func TestSearchHandlerNoResults(t *testing.T) {
	router := testRouter(&stubFetcher{pmids: nil})

	rec := postJSON(router, "/api/search", `{"keywords": ["zzz"]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result leads.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Total)
	assert.NotNil(t, result.Leads)
	assert.Empty(t, result.Leads)
}

func TestSearchHandlerBadRequest(t *testing.T) {
	router := testRouter(&stubFetcher{})

	cases := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"keywords": [`},
		{"missing keywords", `{"years_back": 2}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(router, "/api/search", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestSearchHandlerUpstreamFailure(t *testing.T) {
	router := testRouter(&stubFetcher{
		searchErr: errors.New("connection refused"),
	})

	rec := postJSON(router, "/api/search", `{"keywords": ["hepatotoxicity"]}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestExportCSVHandler(t *testing.T) {
	router := testRouter(&stubFetcher{
		pmids:    []string{"12345", "67890"},
		articles: testArticles(),
	})

	rec := postJSON(router, "/api/export", `{"keywords": ["hepatotoxicity"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "pubmed_leads_")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")

	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Alice Alpha", rows[1][2])
	assert.Equal(t, "12345", rows[1][7])
}

// brokenWriter fails every body write, as a closed client connection does.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestExportCSVHandlerRecordsWriteFailure(t *testing.T) {
	fetcher := &stubFetcher{
		pmids:    []string{"12345"},
		articles: testArticles()[:1],
	}
	svc := leads.NewService(fetcher, types.DefaultPipelineConfig().Scoring, 0)
	api := &API{svc: svc}

	rec := &brokenWriter{httptest.NewRecorder()}
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/export",
		strings.NewReader(`{"keywords": ["hepatotoxicity"]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	api.ExportCSVHandler(c)

	require.NotEmpty(t, c.Errors)
	assert.Contains(t, c.Errors.Last().Error(), "CSV export")
}

func TestHealthHandler(t *testing.T) {
	router := testRouter(&stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestDashboardHandler(t *testing.T) {
	router := testRouter(&stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "PubMed Lead Engine")
}
