// handlers_allocations.go - Schedule allocation query handlers
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/export"
	"github.com/campus-visualizer/backend/internal/models"
	"github.com/campus-visualizer/backend/internal/query"
)

type allocationsResponse struct {
	Allocations []models.Allocation `json:"allocations"`
	Total       int                 `json:"total"`
}

// parseAllocationFilter builds a query filter from request query parameters
func parseAllocationFilter(c echo.Context) (query.Filter, error) {
	f := query.Filter{
		Instructor: c.QueryParam("instructor"),
		Department: c.QueryParam("department"),
		Schedule:   c.QueryParam("schedule"),
		SortBy:     c.QueryParam("sortBy"),
		Descending: c.QueryParam("order") == "desc",
	}

	if v := c.QueryParam("minStudents"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, NewValidationError("minStudents")
		}
		f.MinStudents = n
	}
	if v := c.QueryParam("maxStudents"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, NewValidationError("maxStudents")
		}
		f.MaxStudents = n
	}
	return f, nil
}

// queryAllocations resolves the floor parameter and runs the filter against
// the current snapshot. A missing snapshot yields an empty result set so
// schedule views render empty tables rather than errors.
func (h *Handler) queryAllocations(c echo.Context) ([]models.Allocation, error) {
	f, err := parseAllocationFilter(c)
	if err != nil {
		return nil, err
	}

	// The floor parameter names a registered floor; its room prefix does
	// the actual matching.
	if name := c.QueryParam("floor"); name != "" {
		floor, ok := h.floors.Find(name)
		if !ok {
			return nil, NewNotFoundError("floor", name)
		}
		f.RoomPrefix = floor.RoomPrefix
	}

	snap := h.session.Acquire()
	if snap == nil {
		return []models.Allocation{}, nil
	}
	defer snap.Release()

	rows, err := snap.Store.Query(f)
	if err != nil {
		if f.SortBy != "" {
			return nil, NewBadRequestError("unsupported sort column", err)
		}
		return nil, NewInternalError("allocation query failed", err)
	}
	if rows == nil {
		rows = []models.Allocation{}
	}
	return rows, nil
}

// HandleGetAllocations returns the filtered allocation table as JSON
func (h *Handler) HandleGetAllocations(c echo.Context) error {
	rows, err := h.queryAllocations(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, allocationsResponse{
		Allocations: rows,
		Total:       len(rows),
	})
}

// HandleGetAllocationsMsgpack returns the allocation table in MessagePack format
func (h *Handler) HandleGetAllocationsMsgpack(c echo.Context) error {
	rows, err := h.queryAllocations(c)
	if err != nil {
		return err
	}

	data, err := msgpack.Marshal(map[string]interface{}{
		"allocations": rows,
		"total":       len(rows),
	})
	if err != nil {
		return NewInternalError("failed to encode msgpack", err)
	}

	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleExportAllocations returns the filtered allocation table as an
// Excel workbook download
func (h *Handler) HandleExportAllocations(c echo.Context) error {
	rows, err := h.queryAllocations(c)
	if err != nil {
		return err
	}

	data, err := export.AllocationsWorkbook(rows)
	if err != nil {
		return NewInternalError("failed to build workbook", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="allocations.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// HandleRefreshFeed re-fetches the schedule feed, swaps the snapshot, and
// notifies connected viewers
func (h *Handler) HandleRefreshFeed(c echo.Context) error {
	snap, err := h.session.Refresh(c.Request().Context())
	if err != nil {
		return NewInternalError("feed refresh failed", err)
	}

	if h.hub != nil {
		h.hub.BroadcastRefresh(snap.ID, len(snap.Allocations))
	}

	h.log.Info("feed refreshed via api",
		zap.String("snapshotId", snap.ID),
		zap.Int("allocations", len(snap.Allocations)))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"snapshotId":  snap.ID,
		"fetchedAt":   snap.FetchedAt,
		"allocations": len(snap.Allocations),
	})
}
