package store

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/pkg/regions"
)

// Store owns the loaded dataset. The first access loads the file; afterwards
// the same immutable record slice is served until the file's mtime changes or
// Refresh forces a reload. A failed reload keeps the previous good dataset in
// service.
type Store struct {
	path   string
	table  *regions.Table
	logger *zap.Logger

	mu      sync.RWMutex
	records []Record
	modTime time.Time
	loaded  bool
}

func New(path string, table *regions.Table, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		table:  table,
		logger: logger,
	}
}

// Table returns the reference data the store normalizes against.
func (s *Store) Table() *regions.Table {
	return s.table
}

// Records returns the current dataset, loading or reloading it if needed.
// Callers must not mutate the returned slice; reloads swap it out wholesale.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	if s.loaded && !s.fileChanged() {
		records := s.records
		s.mu.RUnlock()
		return records, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && !s.fileChanged() {
		return s.records, nil
	}

	if err := s.reloadLocked(); err != nil {
		if s.loaded {
			// Keep serving the last good dataset rather than taking the
			// dashboard down over a bad rewrite of the file.
			s.logger.Error("dataset reload failed, serving cached records",
				zap.String("path", s.path), zap.Error(err))
			return s.records, nil
		}
		return nil, err
	}
	return s.records, nil
}

// Refresh discards the cached dataset and reloads it from disk. Unlike the
// mtime-triggered reload in Records, a failure here is returned to the caller.
func (s *Store) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked()
}

// fileChanged reports whether the file's mtime differs from the loaded copy.
// A stat failure counts as changed so the reload path surfaces the error.
func (s *Store) fileChanged() bool {
	info, err := os.Stat(s.path)
	if err != nil {
		return true
	}
	return !info.ModTime().Equal(s.modTime)
}

func (s *Store) reloadLocked() error {
	info, err := os.Stat(s.path)
	if err != nil {
		return &LoadError{Path: s.path, Err: err}
	}

	records, err := Load(s.path, s.table)
	if err != nil {
		return err
	}

	s.records = records
	s.modTime = info.ModTime()
	s.loaded = true
	s.logger.Info("dataset loaded",
		zap.String("path", s.path),
		zap.Int("records", len(records)))
	return nil
}
