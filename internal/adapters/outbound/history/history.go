package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/a11ykraft/internal/domain"
)

const historyFile = ".a11ykraft/history/scans.json"

// MaxEntries bounds the stored history; older rows are dropped first.
const MaxEntries = 200

// FileHistory implements domain.ScanHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// Path returns the history file location for projectPath.
func Path(projectPath string) string {
	return filepath.Join(projectPath, historyFile)
}

func (h *FileHistory) Save(projectPath string, entry domain.ScanEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	fp := Path(projectPath)
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0o644)
}

// Load returns the stored entries oldest first, or nil when none exist.
func (h *FileHistory) Load(projectPath string) ([]domain.ScanEntry, error) {
	data, err := os.ReadFile(Path(projectPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ScanEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}
	return entries, nil
}
