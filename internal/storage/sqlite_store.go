package storage

import "github.com/muhasaba/muhasaba/internal/storage/sqlite"

// NewSQLiteStore returns the SQLite-backed Provider.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}
