// Package storage provides SQLite-based persistence for the game
// snapshot and player settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/MontLac-Coders/kataya-puppyverse/internal/config"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

// defaultSlot is the single save slot. Saves are last-write-wins; there
// is no slot management.
const defaultSlot = "default"

// Store manages the SQLite database connection for save persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			payload TEXT NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS settings (
			slot TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS trivia_questions (
			id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS spanish_lessons (
			id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS zones (
			id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame writes the snapshot to the single local save slot.
func (s *Store) SaveGame(save *game.SaveData) error {
	return s.SaveSlot(defaultSlot, save)
}

// SaveSlot writes the snapshot to the named slot, stamping the version
// and save time. Later writes overwrite earlier ones.
func (s *Store) SaveSlot(slot string, save *game.SaveData) error {
	save.Version = game.SaveVersion
	save.LastSaved = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (slot, version, payload, saved_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   version = excluded.version,
		   payload = excluded.payload,
		   saved_at = excluded.saved_at`,
		slot, save.Version, string(payload),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame reads the snapshot from the local save slot.
func (s *Store) LoadGame() (*game.SaveData, error) {
	return s.LoadSlot(defaultSlot)
}

// LoadSlot reads the snapshot from the named slot. Returns (nil, nil)
// when no save exists. A corrupt or unreadable payload is treated as no
// save: it is logged and discarded so the game can start fresh rather
// than refuse to launch.
func (s *Store) LoadSlot(slot string) (*game.SaveData, error) {
	var version, payload string
	err := s.db.QueryRow(
		"SELECT version, payload FROM saves WHERE slot = ?",
		slot,
	).Scan(&version, &payload)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query save: %w", err)
	}

	var save game.SaveData
	if err := json.Unmarshal([]byte(payload), &save); err != nil {
		log.Warn("discarding corrupt save", "err", err)
		return nil, nil
	}

	if err := migrateSave(&save, version); err != nil {
		log.Warn("discarding incompatible save", "version", version, "err", err)
		return nil, nil
	}

	return &save, nil
}

// migrateSave upgrades a loaded snapshot to the current version. There
// is only one version so far; unknown versions are rejected.
func migrateSave(save *game.SaveData, version string) error {
	switch version {
	case game.SaveVersion:
		return nil
	default:
		return fmt.Errorf("unknown save version %q", version)
	}
}

// ClearGame deletes the save slot. Clearing an empty slot is a no-op.
func (s *Store) ClearGame() error {
	_, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", defaultSlot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear save: %w", err)
	}
	return nil
}

// Clear wipes the save and settings for a full fresh start. Idempotent.
func (s *Store) Clear() error {
	if err := s.ClearGame(); err != nil {
		return err
	}
	return s.ClearSettings()
}

// HasSave reports whether a snapshot exists in the save slot.
func (s *Store) HasSave() (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM saves WHERE slot = ?",
		defaultSlot,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query save slot: %w", err)
	}
	return n > 0, nil
}

// LastSavedAt returns the save slot's timestamp, or the zero time when
// no save exists.
func (s *Store) LastSavedAt() (time.Time, error) {
	var savedAt any
	err := s.db.QueryRow(
		"SELECT saved_at FROM saves WHERE slot = ?",
		defaultSlot,
	).Scan(&savedAt)

	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("storage: cannot query save time: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := savedAt.(type) {
	case time.Time:
		return v, nil
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, nil
}

// SaveSettings writes the player settings.
func (s *Store) SaveSettings(cfg config.Settings) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO settings (slot, payload, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		defaultSlot, string(payload),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// LoadSettings reads the player settings, falling back to defaults when
// none are stored or the stored payload is unreadable.
func (s *Store) LoadSettings() (config.Settings, error) {
	var payload string
	err := s.db.QueryRow(
		"SELECT payload FROM settings WHERE slot = ?",
		defaultSlot,
	).Scan(&payload)

	if err == sql.ErrNoRows {
		return config.DefaultSettings(), nil
	}
	if err != nil {
		return config.DefaultSettings(), fmt.Errorf("storage: cannot query settings: %w", err)
	}

	var cfg config.Settings
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		log.Warn("discarding corrupt settings", "err", err)
		return config.DefaultSettings(), nil
	}
	cfg.Normalize()
	return cfg, nil
}

// ClearSettings resets stored settings back to defaults.
func (s *Store) ClearSettings() error {
	_, err := s.db.Exec("DELETE FROM settings WHERE slot = ?", defaultSlot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear settings: %w", err)
	}
	return nil
}
