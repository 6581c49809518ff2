package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
)

// Service owns the session's note collection.
// It loads from the Store once, applies the pure collection operations and
// persists the result after every mutation. Storage failures never escape a
// mutation: they land in a single message slot read through LastError.
type Service struct {
	mu      sync.RWMutex
	store   *Store
	logger  *slog.Logger
	factory NoteFactory

	notes   []Note
	query   Query
	lastErr error
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFactory sets the id and clock source for new notes.
func WithFactory(f NoteFactory) ServiceOption {
	return func(s *Service) {
		s.factory = f
	}
}

// NewService creates a new Service. Call Open before mutating.
func NewService(store *Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		factory: DefaultFactory,
		notes:   []Note{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying store.
func (s *Service) Store() *Store {
	return s.store
}

// Open performs the initial load. On failure the session continues with an
// empty collection; the error is recorded in the slot and also returned.
func (s *Service) Open(ctx context.Context) error {
	return s.Reload(ctx)
}

// Reload replaces the in-memory collection with the persisted one.
func (s *Service) Reload(ctx context.Context) error {
	notes, err := s.store.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.notes = []Note{}
		s.lastErr = err
		s.logger.Warn("starting with an empty collection", "error", err)
		return err
	}
	s.notes = notes
	return nil
}

// AddNote creates a note and persists the collection.
// It returns a *ValidationError for a rejected input, or ErrDuplicateID when
// no unused id could be generated; the collection is unchanged in both cases.
// Storage failures are never returned, they go to LastError.
func (s *Service) AddNote(ctx context.Context, in NoteInput) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, n, err := s.factory.AddNote(s.notes, in)
	if err != nil {
		return Note{}, err
	}
	s.commit(ctx, next)
	s.logger.Debug("note added", "id", n.ID)
	return n, nil
}

// DeleteNote removes the note with id, if any, and persists the collection.
func (s *Service) DeleteNote(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(ctx, DeleteNote(s.notes, id))
	s.logger.Debug("note deleted", "id", id)
}

// EditNote applies p to the note with id, if any, and persists the collection.
func (s *Service) EditNote(ctx context.Context, id string, p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := EditNote(s.notes, id, p)
	if n, ok := FindNote(next, id); ok && (n.Title == "" || n.Content == "") {
		s.logger.Warn("edit left a note with an empty field", "id", id)
	}
	s.commit(ctx, next)
}

// ImportNotes merges notes into the collection (see NoteFactory.Merge) and
// persists it when anything was added. It returns the number of notes added.
func (s *Service) ImportNotes(ctx context.Context, notes []Note) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, added := s.factory.Merge(s.notes, notes)
	if added > 0 {
		s.commit(ctx, next)
	}
	s.logger.Debug("notes imported", "added", added, "skipped", len(notes)-added)
	return added
}

// commit swaps the snapshot and persists it. Must hold s.mu.
func (s *Service) commit(ctx context.Context, next []Note) {
	s.notes = next
	if err := s.store.Save(ctx, next); err != nil {
		s.lastErr = err
		if errors.Is(err, ErrNotLoaded) {
			s.logger.Error("save skipped before initial load", "key", s.store.Key())
		}
	}
}

// Notes returns a copy of the whole collection.
func (s *Service) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

// Get returns the note with id.
func (s *Service) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FindNote(s.notes, id)
}

// Visible returns the notes matching the current query.
func (s *Service) Visible() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query.Apply(s.notes)
}

// Tags returns the tag bar for the current collection.
func (s *Service) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CollectTags(s.notes)
}

// Query returns the active query.
func (s *Service) Query() Query {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// SetSearch sets the search term.
func (s *Service) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Search = term
}

// ToggleTag activates tag, or clears it when it is already active.
func (s *Service) ToggleTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = s.query.ToggleTag(tag)
}

// ClearTag removes the tag filter.
func (s *Service) ClearTag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Tag = ""
}

// LastError returns the most recent storage error, or nil.
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearError empties the message slot.
func (s *Service) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

// Watch observes changes of the persisted record if the backend supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.backend.(Watchable)
	if !ok {
		return nil, errors.New("backend does not support watching")
	}
	return w.Watch(ctx, s.store.Key())
}
