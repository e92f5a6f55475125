// handlers_floors.go - Floor map handlers
package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/storage"
)

// floorSummary is the list representation of one registered floor
type floorSummary struct {
	Name       string     `json:"name"`
	Display    string     `json:"display"`
	RoomPrefix string     `json:"roomPrefix"`
	Built      bool       `json:"built"`
	Size       int64      `json:"size,omitempty"`
	BuiltAt    *time.Time `json:"builtAt,omitempty"`
}

// buildResult reports the outcome of one floor build in a batch
type buildResult struct {
	Floor string `json:"floor"`
	Built bool   `json:"built"`
	Error string `json:"error,omitempty"`
}

// floorMapNotFoundMessage is the literal text shown when a floor's SVG has
// not been built. The viewer displays it in place of the map, so the map
// endpoint answers 200 with this body rather than an error.
func floorMapNotFoundMessage(display string) string {
	return fmt.Sprintf("The SVG map for the %s was not found.", display)
}

// HandleListFloors returns all registered floors with the build state of
// their persisted maps
func (h *Handler) HandleListFloors(c echo.Context) error {
	infos, err := h.maps.List()
	if err != nil {
		return NewInternalError("failed to list floor maps", err)
	}
	byName := make(map[string]storage.MapInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	summaries := make([]floorSummary, 0, len(h.floors.Floors))
	for _, f := range h.floors.Floors {
		s := floorSummary{
			Name:       f.Name,
			Display:    f.Display,
			RoomPrefix: f.RoomPrefix,
			Built:      h.maps.Exists(f.Output),
		}
		if info, ok := byName[strings.TrimSuffix(f.Output, ".svg")]; ok {
			s.Size = info.Size
			builtAt := info.WrittenAt
			s.BuiltAt = &builtAt
		}
		summaries = append(summaries, s)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"floors": summaries,
	})
}

// HandleGetFloorMap returns the composed SVG for a floor, or the literal
// not-found message when the floor has not been built yet.
func (h *Handler) HandleGetFloorMap(c echo.Context) error {
	name := c.Param("name")
	floor, ok := h.floors.Find(name)
	if !ok {
		return NewNotFoundError("floor", name)
	}

	svg, err := h.maps.Read(floor.Output)
	if err != nil {
		return c.String(http.StatusOK, floorMapNotFoundMessage(floor.Display))
	}
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}

// HandleBuildFloor composes and persists one floor's SVG
func (h *Handler) HandleBuildFloor(c echo.Context) error {
	name := c.Param("name")
	floor, ok := h.floors.Find(name)
	if !ok {
		return NewNotFoundError("floor", name)
	}

	svg, err := h.composer.BuildFloor(floor.Name, h.definitionPath(floor))
	if err != nil {
		return NewInternalError("failed to build floor map", err)
	}
	if err := h.maps.Write(floor.Output, svg); err != nil {
		return NewInternalError("failed to write floor map", err)
	}

	h.log.Info("floor map built",
		zap.String("floor", floor.Name),
		zap.Int("bytes", len(svg)))

	return c.JSON(http.StatusOK, buildResult{Floor: floor.Name, Built: true})
}

// HandleBuildAllFloors composes every registered floor. A failing floor is
// reported in its result entry and does not stop the batch.
func (h *Handler) HandleBuildAllFloors(c echo.Context) error {
	results := make([]buildResult, 0, len(h.floors.Floors))
	for _, floor := range h.floors.Floors {
		result := buildResult{Floor: floor.Name}

		svg, err := h.composer.BuildFloor(floor.Name, h.definitionPath(floor))
		if err == nil {
			err = h.maps.Write(floor.Output, svg)
		}
		if err != nil {
			result.Error = err.Error()
			h.log.Error("floor build failed",
				zap.String("floor", floor.Name),
				zap.Error(err))
		} else {
			result.Built = true
		}
		results = append(results, result)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": results,
	})
}
