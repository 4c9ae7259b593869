package storage

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/config"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestLoadGameEmpty(t *testing.T) {
	store := openTestStore(t)

	save, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save != nil {
		t.Errorf("Expected no save in a fresh database, got %+v", save)
	}

	has, err := store.HasSave()
	if err != nil {
		t.Fatalf("HasSave() failed: %v", err)
	}
	if has {
		t.Error("HasSave() reported a save in a fresh database")
	}
}

func TestSaveAndLoadGame(t *testing.T) {
	store := openTestStore(t)

	save := game.NewSave()
	save.PlayerData.Coins = 250
	save.Puppies[0].Happiness = 42.5
	save.GameStats.TriviaCorrectAnswers = 7

	if err := store.SaveGame(save); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if save.Version != game.SaveVersion {
		t.Errorf("SaveGame did not stamp version: %q", save.Version)
	}
	if save.LastSaved == "" {
		t.Error("SaveGame did not stamp lastSaved")
	}

	loaded, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadGame() returned nil after a save")
	}
	if loaded.PlayerData.Coins != 250 {
		t.Errorf("Coins = %d, want 250", loaded.PlayerData.Coins)
	}
	if loaded.Puppies[0].Happiness != 42.5 {
		t.Errorf("Happiness = %v, want 42.5", loaded.Puppies[0].Happiness)
	}
	if loaded.GameStats.TriviaCorrectAnswers != 7 {
		t.Errorf("TriviaCorrectAnswers = %d, want 7", loaded.GameStats.TriviaCorrectAnswers)
	}
}

func TestSaveGameOverwritesSlot(t *testing.T) {
	store := openTestStore(t)

	first := game.NewSave()
	first.PlayerData.Coins = 1
	if err := store.SaveGame(first); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	second := game.NewSave()
	second.PlayerData.Coins = 2
	if err := store.SaveGame(second); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	loaded, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if loaded.PlayerData.Coins != 2 {
		t.Errorf("Coins = %d, want the later write (2)", loaded.PlayerData.Coins)
	}
}

func TestClearGameIdempotent(t *testing.T) {
	store := openTestStore(t)

	// Clearing an empty slot succeeds
	if err := store.ClearGame(); err != nil {
		t.Fatalf("ClearGame() on empty slot failed: %v", err)
	}

	if err := store.SaveGame(game.NewSave()); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if err := store.ClearGame(); err != nil {
		t.Fatalf("ClearGame() failed: %v", err)
	}

	save, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save != nil {
		t.Errorf("Expected no save after clear, got %+v", save)
	}

	// And clearing again is still fine
	if err := store.ClearGame(); err != nil {
		t.Fatalf("Second ClearGame() failed: %v", err)
	}
}

func TestClearWipesSettingsToo(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveGame(game.NewSave()); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	custom := config.DefaultSettings()
	custom.SoundEnabled = false
	custom.Difficulty = config.DifficultyHard
	if err := store.SaveSettings(custom); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	save, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save != nil {
		t.Error("Expected no save after full clear")
	}

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if !settings.SoundEnabled || settings.Difficulty != config.DifficultyEasy {
		t.Errorf("Expected default settings after clear, got %+v", settings)
	}
}

func TestLoadGameDiscardsCorruptPayload(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		"INSERT INTO saves (slot, version, payload) VALUES (?, ?, ?)",
		defaultSlot, game.SaveVersion, "{not json",
	)
	if err != nil {
		t.Fatalf("Seeding corrupt payload failed: %v", err)
	}

	save, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save != nil {
		t.Errorf("Expected corrupt save to be discarded, got %+v", save)
	}
}

func TestLoadGameDiscardsUnknownVersion(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		"INSERT INTO saves (slot, version, payload) VALUES (?, ?, ?)",
		defaultSlot, "9.9.9", "{}",
	)
	if err != nil {
		t.Fatalf("Seeding versioned payload failed: %v", err)
	}

	save, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save != nil {
		t.Errorf("Expected unknown version to be discarded, got %+v", save)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// Defaults when nothing is stored
	cfg, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if cfg != config.DefaultSettings() {
		t.Errorf("Fresh settings = %+v, want defaults", cfg)
	}

	cfg.SoundEnabled = false
	cfg.Difficulty = config.DifficultyHard
	if err := store.SaveSettings(cfg); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	loaded, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if loaded.SoundEnabled {
		t.Error("SoundEnabled survived the round trip as true")
	}
	if loaded.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, want hard", loaded.Difficulty)
	}

	if err := store.ClearSettings(); err != nil {
		t.Fatalf("ClearSettings() failed: %v", err)
	}
	cfg, err = store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if cfg != config.DefaultSettings() {
		t.Errorf("Settings after clear = %+v, want defaults", cfg)
	}
}

func TestLastSavedAt(t *testing.T) {
	store := openTestStore(t)

	at, err := store.LastSavedAt()
	if err != nil {
		t.Fatalf("LastSavedAt() failed: %v", err)
	}
	if !at.IsZero() {
		t.Errorf("Expected zero time before any save, got %v", at)
	}

	if err := store.SaveGame(game.NewSave()); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	at, err = store.LastSavedAt()
	if err != nil {
		t.Fatalf("LastSavedAt() failed: %v", err)
	}
	if at.IsZero() {
		t.Error("Expected a timestamp after saving")
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	var saves atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func(*game.SaveData) error {
		saves.Add(1)
		return nil
	})

	// A burst of schedules collapses into one write
	for i := 0; i < 5; i++ {
		d.Schedule(game.NewSave())
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	if got := saves.Load(); got != 1 {
		t.Errorf("Expected 1 save after a burst, got %d", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var saves atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func(*game.SaveData) error {
		saves.Add(1)
		return nil
	})

	d.Schedule(game.NewSave())
	d.Cancel()
	time.Sleep(100 * time.Millisecond)

	if got := saves.Load(); got != 0 {
		t.Errorf("Expected no saves after cancel, got %d", got)
	}
}

func TestDebouncerFlush(t *testing.T) {
	var saves atomic.Int32
	d := NewDebouncer(time.Hour, func(*game.SaveData) error {
		saves.Add(1)
		return nil
	})

	d.Schedule(game.NewSave())
	if err := d.Flush(game.NewSave()); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if got := saves.Load(); got != 1 {
		t.Errorf("Expected exactly 1 save after flush, got %d", got)
	}

	// The pending timer was cancelled; nothing fires later
	time.Sleep(50 * time.Millisecond)
	if got := saves.Load(); got != 1 {
		t.Errorf("Pending save fired after flush: %d saves", got)
	}
}

func TestDebouncerWritesScheduledSnapshot(t *testing.T) {
	saved := make(chan *game.SaveData, 1)
	d := NewDebouncer(20*time.Millisecond, func(s *game.SaveData) error {
		saved <- s
		return nil
	})

	live := game.NewSave()
	d.Schedule(live.Clone())

	// Mutations after scheduling must not reach the pending write.
	live.PlayerData.Coins = 9999
	live.Puppies[0].Happiness = 1

	select {
	case s := <-saved:
		if s.PlayerData.Coins != 100 {
			t.Errorf("Snapshot coins = %d, want the value at schedule time (100)", s.PlayerData.Coins)
		}
		if s.Puppies[0].Happiness == 1 {
			t.Error("Snapshot shares puppy state with the live save")
		}
	case <-time.After(time.Second):
		t.Fatal("Expected the scheduled save to fire")
	}
}
