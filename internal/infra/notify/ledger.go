package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"github.com/runoshun/pt/internal/infra/filestore"
)

// ledgerEntry records one announced pomodoro.
type ledgerEntry struct {
	StartedAt time.Time `json:"startedAt"`
	TaskID    int       `json:"taskID"`
}

func entryFor(a domain.Alert) ledgerEntry {
	return ledgerEntry{TaskID: a.TaskID, StartedAt: a.StartedAt.UTC()}
}

// ledger is the set of pomodoros already announced, kept in a JSON file
// so that separate `pt --notify` processes agree on it.
type ledger struct {
	path    string
	entries map[ledgerEntry]bool
}

func loadLedger(path string) (*ledger, error) {
	l := &ledger{path: path, entries: make(map[ledgerEntry]bool)}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return l, nil
	}

	var list []ledgerEntry
	if err := json.Unmarshal(content, &list); err != nil {
		// A damaged ledger only risks one repeated notification.
		return l, nil
	}
	for _, e := range list {
		l.entries[entryFor(domain.Alert{TaskID: e.TaskID, StartedAt: e.StartedAt})] = true
	}
	return l, nil
}

func (l *ledger) has(a domain.Alert) bool {
	return l.entries[entryFor(a)]
}

func (l *ledger) add(a domain.Alert) {
	l.entries[entryFor(a)] = true
}

// retain drops entries for pomodoros that are no longer expired.
// Returns true if anything was removed.
func (l *ledger) retain(alerts []domain.Alert) bool {
	current := make(map[ledgerEntry]bool, len(alerts))
	for _, a := range alerts {
		current[entryFor(a)] = true
	}
	removed := false
	for e := range l.entries {
		if !current[e] {
			delete(l.entries, e)
			removed = true
		}
	}
	return removed
}

func (l *ledger) save() error {
	list := make([]ledgerEntry, 0, len(l.entries))
	for e := range l.entries {
		list = append(list, e)
	}
	sortEntries(list)

	content, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return filestore.WriteAtomic(l.path, append(content, '\n'), 0o600)
}

func sortEntries(list []ledgerEntry) {
	slices.SortFunc(list, func(a, b ledgerEntry) int {
		if a.TaskID != b.TaskID {
			return a.TaskID - b.TaskID
		}
		return a.StartedAt.Compare(b.StartedAt)
	})
}
