// Package config provides XML-based configuration management.
package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AppConfig represents the root XML configuration structure
type AppConfig struct {
	XMLName xml.Name `xml:"CampusVisualizer"`

	// Server configuration
	Server ServerConfig `xml:"Server"`

	// Schedule feed configuration
	Feed FeedConfig `xml:"Feed"`

	// Map rendering configuration
	Render RenderConfig `xml:"Render"`

	// Storage configuration
	Storage StorageConfig `xml:"Storage"`

	// Logging configuration
	Logging LoggingConfig `xml:"Logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         int    `xml:"Port"`
	BindAddress  string `xml:"BindAddress"`
	EnableCORS   bool   `xml:"EnableCORS"`
	AllowOrigins string `xml:"AllowOrigins"`
	ReadTimeout  int    `xml:"ReadTimeoutSeconds"`
	WriteTimeout int    `xml:"WriteTimeoutSeconds"`
	IdleTimeout  int    `xml:"IdleTimeoutSeconds"`
}

// FeedConfig contains schedule feed settings
type FeedConfig struct {
	URL            string `xml:"URL"`
	TimeoutSeconds int    `xml:"TimeoutSeconds"`
	RefreshOnStart bool   `xml:"RefreshOnStart"`
}

// RenderConfig contains map rendering settings
type RenderConfig struct {
	FloorsFile   string `xml:"FloorsFile"`
	BuildOnStart bool   `xml:"BuildOnStart"`
}

// StorageConfig contains file storage settings
type StorageConfig struct {
	DataDirectory string `xml:"DataDirectory"`
	MapsDirectory string `xml:"MapsDirectory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level                string `xml:"Level"`
	Format               string `xml:"Format"`
	EnableRequestLogging bool   `xml:"EnableRequestLogging"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8089,
			BindAddress:  "0.0.0.0",
			EnableCORS:   true,
			AllowOrigins: "*",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  120,
		},
		Feed: FeedConfig{
			URL:            "https://saci.ufpb.br/api/solution/latest",
			TimeoutSeconds: 15,
			RefreshOnStart: true,
		},
		Render: RenderConfig{
			FloorsFile:   "./assets/floors.yaml",
			BuildOnStart: true,
		},
		Storage: StorageConfig{
			DataDirectory: "./data",
			MapsDirectory: "./data/maps",
		},
		Logging: LoggingConfig{
			Level:                "info",
			Format:               "json",
			EnableRequestLogging: true,
		},
	}
}

// LoadConfig loads configuration from XML file
func LoadConfig(configPath string) (*AppConfig, error) {
	// If file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &AppConfig{}
	if err := xml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides
	config.applyEnvironmentOverrides()

	// Resolve relative paths
	config.resolvePaths(filepath.Dir(configPath))

	return config, nil
}

// Save saves the configuration to XML file
func (c *AppConfig) Save(configPath string) error {
	output, err := xml.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(xml.Header + "\n<!-- Campus Visualizer Configuration -->\n<!-- This file is auto-generated on first run -->\n\n")
	content := append(header, output...)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides allows environment variables to override config values
func (c *AppConfig) applyEnvironmentOverrides() {
	// PORT override
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	// FEED_URL override
	if feedURL := os.Getenv("FEED_URL"); feedURL != "" {
		c.Feed.URL = feedURL
	}

	// DATA_DIR override
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		c.Storage.DataDirectory = dataDir
	}
}

// resolvePaths converts relative paths to absolute based on config file location
func (c *AppConfig) resolvePaths(configDir string) {
	if !filepath.IsAbs(c.Storage.DataDirectory) {
		c.Storage.DataDirectory = filepath.Join(configDir, c.Storage.DataDirectory)
	}
	if !filepath.IsAbs(c.Storage.MapsDirectory) {
		c.Storage.MapsDirectory = filepath.Join(configDir, c.Storage.MapsDirectory)
	}
	if !filepath.IsAbs(c.Render.FloorsFile) {
		c.Render.FloorsFile = filepath.Join(configDir, c.Render.FloorsFile)
	}
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// GetFeedTimeout returns the feed request timeout as a duration
func (c *AppConfig) GetFeedTimeout() time.Duration {
	if c.Feed.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}

// EnsureDirectories creates all necessary directories
func (c *AppConfig) EnsureDirectories() error {
	dirs := []string{
		c.Storage.DataDirectory,
		c.Storage.MapsDirectory,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
