package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/api"
	"github.com/campus-visualizer/backend/internal/config"
	"github.com/campus-visualizer/backend/internal/feed"
	"github.com/campus-visualizer/backend/internal/logger"
	"github.com/campus-visualizer/backend/internal/render"
	"github.com/campus-visualizer/backend/internal/session"
	"github.com/campus-visualizer/backend/internal/storage"
	"github.com/campus-visualizer/backend/internal/web"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Get the executable's directory for config resolution
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	// Load XML configuration
	configPath := filepath.Join(exeDir, "CampusVisualizer.config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Ensure all data directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load the floor registry
	floors, err := config.LoadFloors(cfg.Render.FloorsFile)
	if err != nil {
		log.Fatal("failed to load floor registry", zap.Error(err))
	}
	floorsDir := filepath.Dir(cfg.Render.FloorsFile)

	// Initialize map storage and the SVG composer
	maps, err := storage.NewMapStore(cfg.Storage.MapsDirectory)
	if err != nil {
		log.Fatal("failed to initialize map storage", zap.Error(err))
	}
	composer := render.NewComposer(render.DefaultRenderConfig(), log)

	// Initialize the feed client and snapshot manager
	feedClient := feed.NewClient(cfg.Feed.URL, cfg.GetFeedTimeout(), log)
	sessionMgr := session.NewManager(feedClient, log)

	if cfg.Feed.RefreshOnStart {
		if _, err := sessionMgr.Refresh(context.Background()); err != nil {
			log.Error("initial feed fetch failed", zap.Error(err))
		}
	}

	// Build all floor maps on startup when configured. A failing floor is
	// logged and skipped.
	if cfg.Render.BuildOnStart {
		for _, floor := range floors.Floors {
			defPath := floor.Definition
			if !filepath.IsAbs(defPath) {
				defPath = filepath.Join(floorsDir, defPath)
			}
			svg, err := composer.BuildFloor(floor.Name, defPath)
			if err == nil {
				err = maps.Write(floor.Output, svg)
			}
			if err != nil {
				log.Error("startup floor build failed",
					zap.String("floor", floor.Name), zap.Error(err))
			}
		}
	}

	// Initialize the websocket hub and API handler
	hub := api.NewHub(log)
	h := api.NewHandler(maps, sessionMgr, composer, floors, floorsDir, hub, log, Version)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	// Configure middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Logging.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c echo.Context) bool {
			// Compressing the websocket upgrade breaks it
			return c.Request().URL.Path == "/api/ws"
		},
	}))

	// CORS configuration
	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	// Routes
	api.RegisterRoutes(e, h)
	api.RegisterWebSocketRoutes(e, hub)

	// Embedded viewer frontend
	if err := web.RegisterStaticRoutes(e); err != nil {
		log.Warn("failed to register static routes", zap.Error(err))
	}

	// Configure server with settings from XML config
	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Print startup banner
	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           Campus Map Visualizer Server                    ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:    %-46s║\n", configPath)
	fmt.Printf("║  Listen:    http://%-38s║\n", cfg.GetServerAddr())
	fmt.Printf("║  Maps Dir:  %-46s║\n", cfg.Storage.MapsDirectory)
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")
	fmt.Printf("Open http://localhost:%d in your browser\n\n", cfg.Server.Port)

	e.Logger.Fatal(e.StartServer(s))
}
