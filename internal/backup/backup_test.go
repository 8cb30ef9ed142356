package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhasaba/muhasaba/internal/constants"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "muhasaba.json")
	if err := os.WriteFile(storePath, []byte(`{"version":2,"state":{}}`), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(storePath), storePath
}

func TestCreateBackup(t *testing.T) {
	m, storePath := newTestManager(t)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}
	if filepath.Dir(backupPath) != m.GetBackupDir() {
		t.Errorf("backup written to %s, want inside %s", backupPath, m.GetBackupDir())
	}
	if !strings.HasPrefix(filepath.Base(backupPath), constants.BackupFilePrefix) {
		t.Errorf("backup name %s missing prefix", filepath.Base(backupPath))
	}

	want, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Error("backup content differs from the store")
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("CreateBackup() over a missing store did not error")
	}
}

func TestCreateBackupCollision(t *testing.T) {
	m, _ := newTestManager(t)

	// Two backups in the same second get distinct names.
	first, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("colliding backups share the path %s", first)
	}
}

func TestListBackups(t *testing.T) {
	m, _ := newTestManager(t)

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("got %d backups before creating any", len(backups))
	}

	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	// Seed backups at distinct timestamps, plus clutter that must be
	// ignored.
	names := []string{
		constants.BackupFilePrefix + "20260301-010000.json",
		constants.BackupFilePrefix + "20260302-010000.json",
		constants.BackupFilePrefix + "20260303-010000.json",
		"unrelated.json",
		constants.BackupFilePrefix + "garbage.json",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err = m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	// Newest first.
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first: %v", backups)
		}
	}
}

func TestRotation(t *testing.T) {
	m, _ := newTestManager(t)
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	// Seed more backups than the retention limit, oldest first.
	for i := 0; i < constants.MaxBackups+3; i++ {
		name := fmt.Sprintf("%s202603%02d-010000.json", constants.BackupFilePrefix, i+1)
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	// A fresh backup triggers rotation.
	if _, err := m.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("got %d backups after rotation, want %d", len(backups), constants.MaxBackups)
	}
	// The oldest seeds are the ones rotated out.
	for _, b := range backups {
		if strings.Contains(b.Path, "20260301-") || strings.Contains(b.Path, "20260302-") {
			t.Errorf("rotation kept an old backup: %s", b.Path)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	m, storePath := newTestManager(t)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// Change the live store, then restore.
	if err := os.WriteFile(storePath, []byte(`{"version":2,"state":{"savedDuas":["x"]}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() returned unexpected error: %v", err)
	}

	got, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"version":2,"state":{}}` {
		t.Errorf("store after restore = %s", got)
	}

	// The pre-restore store was itself backed up.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("got %d backups after restore, want the pre-restore safety copy too", len(backups))
	}

	if err := m.RestoreBackup(filepath.Join(m.GetBackupDir(), "nope.json")); err == nil {
		t.Error("RestoreBackup() over a missing backup did not error")
	}
}
