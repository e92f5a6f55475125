// handlers_health.go - Health check handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HandleHealth returns server health status
func (h *Handler) HandleHealth(c echo.Context) error {
	resp := map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	}
	if h.hub != nil {
		resp["viewers"] = h.hub.ClientCount()
	}
	if snap := h.session.Current(); snap != nil {
		resp["snapshotId"] = snap.ID
		resp["fetchedAt"] = snap.FetchedAt
		resp["allocations"] = len(snap.Allocations)
	}
	return c.JSON(http.StatusOK, resp)
}
