package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes       int    `json:"notes"`
	Visible     int    `json:"visible"`
	Query       Query  `json:"query"`
	LastError   string `json:"last_error,omitempty"`
	StoreLoaded bool   `json:"store_loaded"`
	BackendType string `json:"backend_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := ServiceState{
		Notes:   len(s.notes),
		Visible: len(s.query.Apply(s.notes)),
		Query:   s.query,
	}
	if s.lastErr != nil {
		state.LastError = s.lastErr.Error()
	}
	if s.store != nil {
		state.StoreLoaded = s.store.Loaded()
		state.BackendType = s.store.backendType()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

// StoreState exposes the store's internal state.
type StoreState struct {
	Key         string     `json:"key"`
	Loaded      bool       `json:"loaded"`
	Available   bool       `json:"available"`
	BackendType string     `json:"backend_type"`
	LastLoad    *time.Time `json:"last_load,omitempty"`
	LastSave    *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Key:         s.key,
		Loaded:      s.loaded,
		Available:   s.available,
		BackendType: s.backendType(),
		LastLoad:    s.lastLoad,
		LastSave:    s.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

func (s *Store) backendType() string {
	if s.backend == nil {
		return "none"
	}
	// Try to get component type if the backend implements introspection.Component
	if comp, ok := s.backend.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return "backend"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
