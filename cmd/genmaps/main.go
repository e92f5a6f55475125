// genmaps builds the SVG map for every registered floor. Floors that fail
// to build are reported individually; the batch keeps going.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/config"
	"github.com/campus-visualizer/backend/internal/logger"
	"github.com/campus-visualizer/backend/internal/render"
	"github.com/campus-visualizer/backend/internal/storage"
)

func main() {
	floorsFile := flag.String("floors", "assets/floors.yaml", "floor registry file")
	outputDir := flag.String("out", "data/maps", "output directory for composed SVGs")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(*logLevel, "console")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	floors, err := config.LoadFloors(*floorsFile)
	if err != nil {
		log.Fatal("failed to load floor registry", zap.Error(err))
	}
	floorsDir := filepath.Dir(*floorsFile)

	maps, err := storage.NewMapStore(*outputDir)
	if err != nil {
		log.Fatal("failed to initialize map storage", zap.Error(err))
	}

	composer := render.NewComposer(render.DefaultRenderConfig(), log)

	failed := 0
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
			failed++
			log.Error("floor build failed",
				zap.String("floor", floor.Name),
				zap.Error(err))
			continue
		}
		log.Info("floor map written",
			zap.String("floor", floor.Name),
			zap.String("file", floor.Output),
			zap.Int("bytes", len(svg)))
	}

	if failed > 0 {
		log.Warn("batch finished with failures",
			zap.Int("failed", failed),
			zap.Int("total", len(floors.Floors)))
		os.Exit(1)
	}
}
