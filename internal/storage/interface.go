package storage

import "github.com/muhasaba/muhasaba/internal/models"

// Provider is the durable-storage adapter behind the tracker. Persistence
// is snapshot-grained: the tracker is the sole writer and every Save
// replaces the previous snapshot wholesale.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (models.State, error)
	Close() error

	// Save persists the entire state snapshot.
	Save(models.State) error

	// Utils
	GetConfigPath() string
}
