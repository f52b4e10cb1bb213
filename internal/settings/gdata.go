package settings

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

const gdataItem = "settings"

// GDataStore keeps settings in the per-user application data directory.
type GDataStore struct {
	m *gdata.Manager
}

// NewGDataStore opens the data manager for appName.
func NewGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open app data: %w", err)
	}
	return &GDataStore{m: m}, nil
}

// Load implements Store.
func (g *GDataStore) Load() (*Settings, error) {
	data, err := g.m.LoadItem(gdataItem)
	if err != nil {
		return nil, fmt.Errorf("load settings item: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decode(data)
}

// Save implements Store.
func (g *GDataStore) Save(s *Settings) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := g.m.SaveItem(gdataItem, data); err != nil {
		return fmt.Errorf("save settings item: %w", err)
	}
	return nil
}
