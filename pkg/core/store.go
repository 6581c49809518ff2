package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"
)

// DefaultKey is the name of the persisted record holding the collection.
const DefaultKey = "jot-notes"

// CorruptSuffix is appended to the key under which a corrupt blob is preserved.
const CorruptSuffix = ".corrupt"

// Store loads and saves the whole collection as one record.
type Store struct {
	mu            sync.RWMutex
	backend       Backend
	key           string
	logger        *slog.Logger
	corruptBackup bool

	loaded    bool
	available bool
	lastLoad  *time.Time
	lastSave  *time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKey sets the record name. Empty keeps DefaultKey.
func WithKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithStoreLogger sets the logger used by the store.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCorruptBackup controls whether a corrupt blob is copied to
// key+CorruptSuffix on load. Enabled by default.
func WithCorruptBackup(enabled bool) StoreOption {
	return func(s *Store) {
		s.corruptBackup = enabled
	}
}

// NewStore creates a Store over backend.
func NewStore(backend Backend, opts ...StoreOption) *Store {
	s := &Store{
		backend:       backend,
		key:           DefaultKey,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		corruptBackup: true,
		available:     true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Key returns the record name.
func (s *Store) Key() string {
	return s.key
}

// Loaded reports whether the initial Load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Available reports whether the backend was usable at the last Load.
func (s *Store) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.available
}

// Load reads the collection. An absent record yields an empty collection.
// Load always completes the initial load, so Save is allowed afterwards even
// when Load failed.
func (s *Store) Load(ctx context.Context) ([]Note, error) {
	notes, available, err := s.load(ctx)

	s.mu.Lock()
	now := time.Now()
	s.loaded = true
	s.available = available
	s.lastLoad = &now
	s.mu.Unlock()

	return notes, err
}

func (s *Store) load(ctx context.Context) ([]Note, bool, error) {
	if s.backend == nil {
		return []Note{}, false, &StorageUnavailableError{Key: s.key, Err: ErrBackendUnavailable}
	}

	data, found, err := s.backend.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("storage unavailable", "key", s.key, "error", err)
		return []Note{}, false, &StorageUnavailableError{Key: s.key, Err: err}
	}
	if !found {
		s.logger.Debug("no persisted record, starting empty", "key", s.key)
		return []Note{}, true, nil
	}

	notes, err := DecodeNotes(data)
	if err != nil {
		var corrupt *StorageCorruptError
		if !errors.As(err, &corrupt) {
			corrupt = &StorageCorruptError{Err: err}
		}
		corrupt.Key = s.key
		s.logger.Error("persisted record is corrupt", "key", s.key, "id", corrupt.ID, "error", corrupt.Err)
		s.preserveCorrupt(ctx, data)
		return []Note{}, true, corrupt
	}

	s.logger.Debug("loaded notes", "key", s.key, "count", len(notes))
	return notes, true, nil
}

func (s *Store) preserveCorrupt(ctx context.Context, data []byte) {
	if !s.corruptBackup {
		return
	}
	backupKey := s.key + CorruptSuffix
	if err := s.backend.Set(ctx, backupKey, data); err != nil {
		s.logger.Warn("failed to preserve corrupt record", "key", backupKey, "error", err)
		return
	}
	s.logger.Info("preserved corrupt record", "key", backupKey)
}

// Save replaces the persisted record with notes.
func (s *Store) Save(ctx context.Context, notes []Note) error {
	s.mu.RLock()
	loaded, available := s.loaded, s.available
	s.mu.RUnlock()

	if !loaded {
		return ErrNotLoaded
	}
	if !available || s.backend == nil {
		return &StorageUnavailableError{Key: s.key, Err: ErrBackendUnavailable}
	}

	data, err := EncodeNotes(notes)
	if err != nil {
		return &StorageWriteError{Key: s.key, Err: err}
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		s.logger.Warn("failed to persist notes", "key", s.key, "error", err)
		return &StorageWriteError{Key: s.key, Err: err}
	}

	s.mu.Lock()
	now := time.Now()
	s.lastSave = &now
	s.mu.Unlock()

	s.logger.Debug("saved notes", "key", s.key, "count", len(notes))
	return nil
}
