package storage

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

// AutosaveDelay is how long the debouncer waits after the last schedule
// before writing.
const AutosaveDelay = 5 * time.Second

// Debouncer coalesces bursts of save requests into a single delayed
// write. Each Schedule captures the snapshot it was handed and restarts
// the delay; only the last snapshot in a burst reaches the store. The
// timer goroutine writes the captured snapshot, never live game state.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	save    func(*game.SaveData) error
	timer   *time.Timer
	pending *game.SaveData
}

// NewDebouncer creates a debouncer that invokes save after delay has
// elapsed without another Schedule call.
func NewDebouncer(delay time.Duration, save func(*game.SaveData) error) *Debouncer {
	return &Debouncer{delay: delay, save: save}
}

// Schedule requests a save of the given snapshot. Any pending snapshot
// is replaced and the delay restarts. The snapshot must not be mutated
// after it is handed in; callers pass a copy of the live save.
func (d *Debouncer) Schedule(snapshot *game.SaveData) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = snapshot
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	snapshot := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	// A Cancel or Flush may have raced the timer; nothing left to write.
	if snapshot == nil {
		return
	}
	if err := d.save(snapshot); err != nil {
		log.Error("autosave failed", "err", err)
	}
}

// Cancel drops any pending save without writing.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush cancels any pending save and writes the given snapshot
// immediately. Used on exit so the last state is never lost to the
// delay window.
func (d *Debouncer) Flush(snapshot *game.SaveData) error {
	d.Cancel()
	return d.save(snapshot)
}
