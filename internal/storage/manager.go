// Package storage persists composed floor SVG documents.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MapInfo describes one persisted floor document.
type MapInfo struct {
	Name      string    `json:"name"` // file name without extension
	Size      int64     `json:"size"`
	WrittenAt time.Time `json:"writtenAt"`
}

// MapStore writes and serves floor SVG documents under one output
// directory. Writes are whole-document: a failed build never replaces a
// previous good file with a partial one.
type MapStore struct {
	mu        sync.RWMutex
	outputDir string
}

// NewMapStore creates a MapStore, creating the output directory if needed.
func NewMapStore(outputDir string) (*MapStore, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &MapStore{outputDir: outputDir}, nil
}

// Write persists one floor document under the given file name.
func (s *MapStore) Write(fileName, svg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.outputDir, fileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(svg), 0644); err != nil {
		return fmt.Errorf("writing floor document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing floor document: %w", err)
	}
	return nil
}

// Read returns the stored document text for a file name.
func (s *MapStore) Read(fileName string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.outputDir, fileName))
	if err != nil {
		return "", fmt.Errorf("reading floor document %s: %w", fileName, err)
	}
	return string(data), nil
}

// Exists reports whether a floor document has been written.
func (s *MapStore) Exists(fileName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(filepath.Join(s.outputDir, fileName))
	return err == nil
}

// List returns metadata for all stored floor documents, newest first.
func (s *MapStore) List() ([]MapInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		return nil, fmt.Errorf("listing floor documents: %w", err)
	}

	var infos []MapInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".svg") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, MapInfo{
			Name:      strings.TrimSuffix(e.Name(), ".svg"),
			Size:      fi.Size(),
			WrittenAt: fi.ModTime(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].WrittenAt.After(infos[j].WrittenAt)
	})
	return infos, nil
}
