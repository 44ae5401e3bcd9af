/*
Package journal
File: reader.go
Description:
    Reads the game's journal directory from disk.

    The game writes one file per session named
    'Journal.<date>T<time>.<part>.log'. Name order is chronological order,
    so files are read in name order and events come out in arrival order.
*/

package journal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
)

var journalName = regexp.MustCompile(`^Journal\.\d+-\d+-\d+T\d+\.\d+\.log$`)

// IsJournalName reports whether a file name is a journal file.
func IsJournalName(name string) bool {
	return journalName.MatchString(name)
}

// Offsets records how many bytes of each journal file have been consumed.
type Offsets map[string]int64

// Reader loads every journal in a directory.
type Reader struct {
	dir    string
	logger *slog.Logger
}

// NewReader creates a reader for the given journal directory.
func NewReader(dir string, logger *slog.Logger) *Reader {
	return &Reader{dir: dir, logger: logger.With("component", "journal")}
}

// Files lists the journal files of the directory in chronological order.
func (r *Reader) Files() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("list journals in %q: %w", r.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsJournalName(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(r.dir, e.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// ReadAll decodes every journal in order. The returned offsets mark where
// a Tailer should resume each file.
func (r *Reader) ReadAll() ([]Event, Offsets, error) {
	files, err := r.Files()
	if err != nil {
		return nil, nil, err
	}

	offsets := make(Offsets, len(files))
	var events []Event
	for _, path := range files {
		evs, n, err := r.readFrom(path, 0)
		if err != nil {
			return nil, nil, err
		}
		events = append(events, evs...)
		offsets[path] = n
	}
	r.logger.Info("journals loaded", "files", len(files), "events", len(events))
	return events, offsets, nil
}

// readFrom decodes the complete lines of a file after offset and returns the
// new offset. A trailing partial line is left for the next read.
func (r *Reader) readFrom(path string, offset int64) ([]Event, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, offset, fmt.Errorf("open journal %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, offset, fmt.Errorf("seek journal %q: %w", path, err)
	}

	var events []Event
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadBytes('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return events, offset, fmt.Errorf("read journal %q: %w", path, err)
		}
		offset += int64(len(line))

		ev, err := Decode(bytes.TrimRight(line, "\r\n"))
		if err != nil {
			if !errors.Is(err, ErrUnhandled) {
				r.logger.Warn("skipping malformed journal line", "file", filepath.Base(path), "error", err)
			}
			continue
		}
		events = append(events, ev)
	}
	return events, offset, nil
}

// SinceLastSale returns the events after the most recent data sale, which
// is the window the current trip covers. Without a sale every event counts.
func SinceLastSale(events []Event) []Event {
	for i := len(events) - 1; i >= 0; i-- {
		if IsSale(events[i]) {
			return events[i+1:]
		}
	}
	return events
}
