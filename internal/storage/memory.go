package storage

import "github.com/muhasaba/muhasaba/internal/models"

// MemoryStore is an in-process Provider used by tests and throwaway
// sessions. It never touches the filesystem.
type MemoryStore struct {
	state models.State
	// Saves counts Save calls, so tests can assert persistence happened.
	Saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: models.DefaultState()}
}

func (s *MemoryStore) Init() error {
	s.state = models.DefaultState()
	return nil
}

func (s *MemoryStore) Load() (models.State, error) {
	return s.state.Clone(), nil
}

func (s *MemoryStore) Save(state models.State) error {
	s.state = state.Clone()
	s.Saves++
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
