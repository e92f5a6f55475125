// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check
	e.GET("/health", h.HandleHealth)

	// Floor map routes
	floorGroup := e.Group("/api/floors")
	floorGroup.GET("", h.HandleListFloors)
	floorGroup.POST("/build", h.HandleBuildAllFloors)
	floorGroup.GET("/:name/map", h.HandleGetFloorMap)
	floorGroup.POST("/:name/build", h.HandleBuildFloor)

	// Allocation routes
	allocGroup := e.Group("/api/allocations")
	allocGroup.GET("", h.HandleGetAllocations)
	allocGroup.GET("/msgpack", h.HandleGetAllocationsMsgpack)
	allocGroup.GET("/export", h.HandleExportAllocations)

	// Room schedule routes
	e.GET("/api/rooms/:name/allocations", h.HandleGetRoomAllocations)

	// Feed control
	e.POST("/api/feed/refresh", h.HandleRefreshFeed)
}

// RegisterWebSocketRoutes registers WebSocket routes
func RegisterWebSocketRoutes(e *echo.Echo, hub *Hub) {
	e.GET("/api/ws", hub.HandleWebSocket)
}
