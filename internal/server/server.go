// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the lead pipeline over HTTP: a JSON search API,
// a CSV export, and the browser dashboard.
package server

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/lead-engine/internal/leads"
)

//go:embed static/index.html
var dashboardHTML []byte

// API holds the handlers' shared dependencies.
type API struct {
	svc *leads.Service
}

// NewRouter builds the gin router with all routes registered.
func NewRouter(svc *leads.Service) *gin.Engine {
	router := gin.Default()
	api := &API{svc: svc}

	router.GET("/", api.DashboardHandler)
	router.GET("/health", api.HealthHandler)
	router.POST("/api/search", api.SearchHandler)
	router.POST("/api/export", api.ExportCSVHandler)

	return router
}

// DashboardHandler serves the embedded single-page dashboard.
func (api *API) DashboardHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", dashboardHTML)
}

// HealthHandler reports service liveness.
func (api *API) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
