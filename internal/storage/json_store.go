package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muhasaba/muhasaba/internal/migration"
	"github.com/muhasaba/muhasaba/internal/models"
)

// blob is the on-disk shape of the JSON store: the full state under a
// version field. Legacy files from before versioning decode with Version 0
// and are upgraded on load.
type blob struct {
	Version int          `json:"version"`
	State   models.State `json:"state"`
}

type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(models.DefaultState())
}

func (s *JSONStore) Load() (models.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.State{}, fmt.Errorf("storage not initialized, run 'muhasaba init' first")
		}
		return models.State{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return models.State{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	if b.Version < migration.CurrentBlobVersion {
		migration.UpgradeState(b.Version, &b.State)
	} else {
		b.State.Normalize()
	}

	return b.State, nil
}

func (s *JSONStore) Save(state models.State) error {
	return s.write(state)
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) write(state models.State) error {
	data, err := json.MarshalIndent(blob{Version: migration.CurrentBlobVersion, State: state}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
