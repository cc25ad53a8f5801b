package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	welcomeMessage = "Hello from Test Web App!"
	purpose        = "Testing portman CLI tool"

	// timestampLayout is ISO-8601 in UTC with millisecond precision
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// WelcomeResponse is returned by GET /
type WelcomeResponse struct {
	Message   string `json:"message"`
	Port      int    `json:"port"`
	Timestamp string `json:"timestamp"`
	Purpose   string `json:"purpose"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
	Port   int     `json:"port"`
}

// Item is a single sample record
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DataResponse is returned by GET /api/data
type DataResponse struct {
	Data  []Item `json:"data"`
	Count int    `json:"count"`
}

// formatTimestamp renders t the way the request log and responses expect
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// handleWelcome handles the root endpoint
func (s *Server) handleWelcome(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Message:   welcomeMessage,
		Port:      s.port,
		Timestamp: formatTimestamp(s.now()),
		Purpose:   purpose,
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	uptime := s.now().Sub(s.startedAt).Seconds()
	if uptime < 0 {
		uptime = 0
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
		Uptime: uptime,
		Port:   s.port,
	})
}

// handleListData handles the sample data listing
func (s *Server) handleListData(c *gin.Context) {
	items := sampleItems()

	c.JSON(http.StatusOK, DataResponse{
		Data:  items,
		Count: len(items),
	})
}

// sampleItems builds a fresh copy of the static listing for each response
func sampleItems() []Item {
	return []Item{
		{ID: 1, Name: "Item 1"},
		{ID: 2, Name: "Item 2"},
		{ID: 3, Name: "Item 3"},
	}
}
