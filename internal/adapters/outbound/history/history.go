package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/uiforge/uiforge/internal/domain"
)

const historyFile = ".uiforge/history.json"

// maxEntries caps the history file. Appends past the cap drop the oldest
// entries.
const maxEntries = 100

// FileHistory implements domain.HistoryStore using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Append(root string, entry domain.HistoryEntry) error {
	entries, err := h.Load(root, 0)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	fp := filepath.Join(root, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

// Load returns recorded runs, oldest first. A positive limit keeps only
// the most recent entries.
func (h *FileHistory) Load(root string, limit int) ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(filepath.Join(root, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}
