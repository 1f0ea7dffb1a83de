package preferences

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// slotFile is the JSON layout of the persisted preference slot.
type slotFile struct {
	Version string `json:"version"`
	Theme   Theme  `json:"theme"`
}

const slotVersion = "1.0"

// FileStorage persists the theme slot as a small JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage rooted at path, creating the
// parent directory if needed.
func NewFileStorage(path string) (*FileStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}
	return &FileStorage{path: path}, nil
}

// DefaultSlotPath returns the conventional location of the preference
// slot under the user config directory.
func DefaultSlotPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, "folio", "theme.json"), nil
}

// Load reads the slot. ok is false when the slot has never been written.
func (f *FileStorage) Load() (Theme, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}

	var slot slotFile
	if err := json.Unmarshal(data, &slot); err != nil {
		return "", false, fmt.Errorf("failed to parse preference slot: %w", err)
	}
	if !slot.Theme.Valid() {
		return "", false, fmt.Errorf("unknown theme %q in preference slot", slot.Theme)
	}

	return slot.Theme, true, nil
}

// Save writes the slot atomically via a temporary file and rename.
func (f *FileStorage) Save(theme Theme) error {
	slot := slotFile{Version: slotVersion, Theme: theme}

	data, err := json.MarshalIndent(slot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preference slot: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
