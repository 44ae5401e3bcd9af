/*
Package journal
File: tailer.go
Description:
    Follows the journal directory while the game is running.

    An fsnotify watcher reports created and written journal files; each
    notification reads the complete new lines of that file and sends them
    as one batch. Batches are consumed by a single dispatcher goroutine.
*/

package journal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Tailer streams new journal lines as event batches.
type Tailer struct {
	reader  *Reader
	offsets Offsets
	batches chan []Event
	logger  *slog.Logger
}

// NewTailer creates a tailer that resumes each file at the given offsets.
// Files without an offset are read from the start.
func NewTailer(reader *Reader, offsets Offsets) *Tailer {
	resume := make(Offsets, len(offsets))
	for path, n := range offsets {
		resume[path] = n
	}
	return &Tailer{
		reader:  reader,
		offsets: resume,
		batches: make(chan []Event, 16),
		logger:  reader.logger.With("component", "tailer"),
	}
}

// Batches is closed when Run returns.
func (t *Tailer) Batches() <-chan []Event {
	return t.batches
}

// Run watches the directory until ctx is cancelled.
func (t *Tailer) Run(ctx context.Context) error {
	defer close(t.batches)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create journal watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(t.reader.dir); err != nil {
		return fmt.Errorf("watch %q: %w", t.reader.dir, err)
	}
	t.logger.Info("watching journals", "dir", t.reader.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !IsJournalName(filepath.Base(ev.Name)) {
				continue
			}

			batch := t.poll(ev.Name)
			if len(batch) == 0 {
				continue
			}
			select {
			case t.batches <- batch:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			t.logger.Warn("journal watcher error", "error", err)
		}
	}
}

// poll reads whatever was appended to a file since the last notification.
func (t *Tailer) poll(path string) []Event {
	offset := t.offsets[path]

	// A file shorter than our offset was replaced; start over.
	if info, err := os.Stat(path); err == nil && info.Size() < offset {
		offset = 0
	}

	events, next, err := t.reader.readFrom(path, offset)
	if err != nil {
		t.logger.Warn("journal read failed", "file", filepath.Base(path), "error", err)
	}
	t.offsets[path] = next
	return events
}
