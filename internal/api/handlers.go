// handlers.go - Handler wiring for the viewer API
package api

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/models"
	"github.com/campus-visualizer/backend/internal/render"
	"github.com/campus-visualizer/backend/internal/session"
	"github.com/campus-visualizer/backend/internal/storage"
)

// Handler handles API requests.
type Handler struct {
	maps     *storage.MapStore
	session  *session.Manager
	composer *render.Composer
	floors   *models.FloorRegistry
	// floorsDir is the directory floor definition paths resolve against,
	// normally the directory holding floors.yaml.
	floorsDir string
	hub       *Hub
	log       *zap.Logger
	version   string
}

// NewHandler creates the API handler with its dependencies.
func NewHandler(maps *storage.MapStore, sess *session.Manager, composer *render.Composer,
	floors *models.FloorRegistry, floorsDir string, hub *Hub, log *zap.Logger, version string) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		maps:      maps,
		session:   sess,
		composer:  composer,
		floors:    floors,
		floorsDir: floorsDir,
		hub:       hub,
		log:       log,
		version:   version,
	}
}

// definitionPath resolves a floor's definition file against the registry dir.
func (h *Handler) definitionPath(floor models.Floor) string {
	if filepath.IsAbs(floor.Definition) {
		return floor.Definition
	}
	return filepath.Join(h.floorsDir, floor.Definition)
}
