// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/lead-engine/internal/leads"
	"github.com/pdiddy/lead-engine/pkg/types"
)

// Request-level defaults applied when the client omits a field.
const (
	defaultYearsBack  = 2
	defaultMaxResults = 100
)

// searchRequest is the JSON body for /api/search and /api/export.
type searchRequest struct {
	Keywords   []string `json:"keywords" binding:"required"`
	YearsBack  int      `json:"years_back"`
	MaxResults int      `json:"max_results"`
}

func (r *searchRequest) toRequest() types.SearchRequest {
	req := types.SearchRequest{
		Keywords:   r.Keywords,
		YearsBack:  r.YearsBack,
		MaxResults: r.MaxResults,
	}
	if req.YearsBack <= 0 {
		req.YearsBack = defaultYearsBack
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultMaxResults
	}
	return req
}

// runSearch binds the request body and runs the pipeline. A nil error
// return with ok=false means the handler already wrote a response.
func (api *API) runSearch(c *gin.Context) (leads.Result, bool) {
	var body searchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return leads.Result{}, false
	}

	result, err := api.svc.Search(c.Request.Context(), body.toRequest())
	if err != nil {
		// An upstream failure fails the whole search; zero results would
		// have come back as a success with total 0.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return leads.Result{}, false
	}
	return result, true
}

// SearchHandler runs a lead search and returns the ranked leads as JSON.
func (api *API) SearchHandler(c *gin.Context) {
	result, ok := api.runSearch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// csvHeader lists the export columns in dashboard order.
var csvHeader = []string{
	"Rank", "Score", "Name", "Affiliation", "Email",
	"Paper Title", "Publication Date", "PubMed ID",
}

// ExportCSVHandler runs a lead search and streams the ranked leads as a
// CSV attachment. Nothing is cached between calls; the export re-runs
// the search.
func (api *API) ExportCSVHandler(c *gin.Context) {
	result, ok := api.runSearch(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("pubmed_leads_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename=`+filename)

	w := csv.NewWriter(c.Writer)
	w.Write(csvHeader)
	for _, l := range result.Leads {
		w.Write([]string{
			strconv.Itoa(l.Rank),
			strconv.Itoa(l.Score),
			l.Name,
			l.Affiliation,
			l.Email,
			l.PaperTitle,
			l.PublicationDate,
			l.PubmedID,
		})
	}
	w.Flush()
	// Headers are already out, so a mid-stream failure can only be recorded.
	if err := w.Error(); err != nil {
		c.Error(fmt.Errorf("writing CSV export: %w", err))
	}
}
