// handlers_rooms.go - Per-room schedule view handlers
package api

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/models"
	"github.com/campus-visualizer/backend/internal/query"
	"github.com/campus-visualizer/backend/internal/schedule"
)

// roomAllocation is one course row in a room's schedule view, with the
// decoded meetings alongside the raw schedule code.
type roomAllocation struct {
	Course   models.CourseSection `json:"course"`
	Room     models.Room          `json:"room"`
	Meetings []schedule.Meeting   `json:"meetings"`
}

// HandleGetRoomAllocations returns the courses allocated to one room,
// sorted by schedule code. The optional day parameter (1=Sunday..7=Saturday,
// or "today") restricts rows to courses meeting on that day.
func (h *Handler) HandleGetRoomAllocations(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return NewValidationError("name")
	}

	day := 0
	if v := c.QueryParam("day"); v != "" {
		if v == "today" {
			day = schedule.Today()
		} else {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 7 {
				return NewValidationError("day")
			}
			day = n
		}
	}

	snap := h.session.Acquire()
	if snap == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"room":        name,
			"allocations": []roomAllocation{},
		})
	}
	defer snap.Release()

	rows, err := snap.Store.Query(query.Filter{RoomName: name})
	if err != nil {
		return NewInternalError("allocation query failed", err)
	}

	result := make([]roomAllocation, 0, len(rows))
	for _, alloc := range rows {
		code := schedule.Decode(alloc.Course.Schedule)
		if day != 0 && !code.HasDay(day) {
			continue
		}
		result = append(result, roomAllocation{
			Course:   alloc.Course,
			Room:     alloc.Room,
			Meetings: code.Expand(),
		})
	}

	// Order rows by schedule code. An undecodable code is a data error
	// and fails the request rather than producing a guessed order.
	var cmpErr error
	sort.SliceStable(result, func(i, j int) bool {
		cmp, err := schedule.Compare(result[i].Course.Schedule, result[j].Course.Schedule)
		if err != nil {
			if cmpErr == nil {
				cmpErr = err
			}
			return false
		}
		return cmp < 0
	})
	if cmpErr != nil {
		h.log.Error("room schedule ordering failed",
			zap.String("room", name),
			zap.Error(cmpErr))
		return NewInternalError("invalid schedule code in feed", cmpErr)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"room":        name,
		"day":         day,
		"allocations": result,
	})
}
