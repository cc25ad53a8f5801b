// Package http provides the HTTP API of the test web app.
//
// The server exposes three fixed JSON endpoints:
//   - GET /          welcome message with the active port
//   - GET /health    health status and process uptime
//   - GET /api/data  a static list of sample items
//
// Every request, matched or not, is logged before routing.
package http
