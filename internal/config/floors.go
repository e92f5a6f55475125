package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/campus-visualizer/backend/internal/models"
)

// LoadFloors reads and validates the floors.yaml registry.
func LoadFloors(path string) (*models.FloorRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read floors file: %w", err)
	}

	registry := &models.FloorRegistry{}
	if err := yaml.Unmarshal(data, registry); err != nil {
		return nil, fmt.Errorf("failed to parse floors file: %w", err)
	}

	if len(registry.Floors) == 0 {
		return nil, fmt.Errorf("floors file %s defines no floors", path)
	}

	seen := make(map[string]bool, len(registry.Floors))
	for i, f := range registry.Floors {
		if f.Name == "" {
			return nil, fmt.Errorf("floor %d has no name", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate floor name %q", f.Name)
		}
		seen[f.Name] = true
		if f.Definition == "" {
			return nil, fmt.Errorf("floor %q has no definition file", f.Name)
		}
		if f.Output == "" {
			return nil, fmt.Errorf("floor %q has no output file", f.Name)
		}
	}

	return registry, nil
}
