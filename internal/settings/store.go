package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFile is the settings file name used when none is configured.
const DefaultFile = "wordle_settings.json"

// Store persists Settings.
// Load returns (nil, nil) when nothing has been saved yet.
type Store interface {
	Load() (*Settings, error)
	Save(s *Settings) error
}

// FileStore keeps settings in a flat JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore for path, or DefaultFile when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	return &FileStore{Path: path}
}

// Load implements Store.
func (f *FileStore) Load() (*Settings, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return decode(data)
}

// Save implements Store. The word list is written empty.
func (f *FileStore) Save(s *Settings) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func encode(s *Settings) ([]byte, error) {
	out := *s
	out.WordList = []string{}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}
