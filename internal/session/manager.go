// Package session manages feed snapshots: the schedule feed is fetched
// once per session and held immutably until a refresh swaps the whole
// snapshot out.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/models"
	"github.com/campus-visualizer/backend/internal/query"
)

// Fetcher supplies the allocation set for a new snapshot. A fetcher never
// fails; an unreachable feed yields an empty set.
type Fetcher interface {
	Fetch(ctx context.Context) []models.Allocation
}

// Snapshot is one immutable materialization of the feed. Readers that
// query the Store must hold a reference (Manager.Acquire / Release): the
// store stays open until the snapshot is both replaced and released by
// every reader.
type Snapshot struct {
	ID          string
	FetchedAt   time.Time
	Allocations []models.Allocation
	Store       *query.AllocStore

	mu      sync.Mutex
	refs    int
	retired bool
}

// Release drops a reference taken by Manager.Acquire. Once the snapshot
// has been replaced and the last reader releases it, the store is closed.
func (s *Snapshot) Release() {
	s.mu.Lock()
	s.refs--
	closeNow := s.retired && s.refs == 0
	s.mu.Unlock()
	if closeNow {
		s.Store.Close()
	}
}

func (s *Snapshot) acquire() {
	s.mu.Lock()
	s.refs++
	s.mu.Unlock()
}

// retire marks the snapshot as replaced. The store closes immediately
// when no reader holds it, otherwise when the last Release comes in.
func (s *Snapshot) retire() {
	s.mu.Lock()
	s.retired = true
	closeNow := s.refs == 0
	s.mu.Unlock()
	if closeNow {
		s.Store.Close()
	}
}

// Manager holds the current snapshot and performs refreshes.
type Manager struct {
	mu      sync.RWMutex
	fetcher Fetcher
	log     *zap.Logger
	current *Snapshot
}

// NewManager creates a snapshot manager. No snapshot exists until the
// first Refresh.
func NewManager(fetcher Fetcher, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{fetcher: fetcher, log: log}
}

// Refresh fetches the feed and swaps in a new snapshot. The previous
// snapshot is retired: its store closes once every in-flight reader has
// released it. An empty fetch still produces a valid (empty) snapshot so
// viewers render empty tables rather than stale or missing data.
func (m *Manager) Refresh(ctx context.Context) (*Snapshot, error) {
	allocations := m.fetcher.Fetch(ctx)

	store, err := query.NewAllocStore()
	if err != nil {
		return nil, fmt.Errorf("creating allocation store: %w", err)
	}
	if err := store.Load(allocations); err != nil {
		store.Close()
		return nil, fmt.Errorf("loading allocations: %w", err)
	}

	snap := &Snapshot{
		ID:          uuid.New().String(),
		FetchedAt:   time.Now(),
		Allocations: allocations,
		Store:       store,
	}

	m.mu.Lock()
	old := m.current
	m.current = snap
	m.mu.Unlock()

	if old != nil {
		old.retire()
	}

	m.log.Info("feed snapshot refreshed",
		zap.String("snapshotId", snap.ID),
		zap.Int("allocations", len(allocations)))

	return snap, nil
}

// Acquire returns the active snapshot with a reference held, or nil
// before the first refresh. The caller must Release it when done.
func (m *Manager) Acquire() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current != nil {
		m.current.acquire()
	}
	return m.current
}

// Current returns the active snapshot without taking a reference. Use it
// for metadata only; querying the store requires Acquire.
func (m *Manager) Current() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
