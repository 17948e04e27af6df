// Package desktop runs Rabbit Run in a native window with Ebitengine,
// synthesized sound and persisted player settings.
package desktop

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the per-user preferences of the desktop frontend.
type Settings struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // 0.0 ~ 1.0
	Scale  float64 `yaml:"scale"`  // window size relative to the world
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() Settings {
	return Settings{Volume: 0.6, Scale: 1}
}

func (s Settings) normalized() Settings {
	s.Volume = min(max(s.Volume, 0), 1)
	if s.Scale <= 0 {
		s.Scale = 1
	}
	return s
}

const (
	settingsObject   = "settings"
	settingsProperty = "desktop"
)

// SettingsStore persists Settings in the platform data directory.
// A store without a manager keeps settings in memory only.
type SettingsStore struct {
	manager *gdata.Manager
}

// OpenSettings opens the data directory of appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &SettingsStore{}, fmt.Errorf("desktop: open settings: %w", err)
	}
	return &SettingsStore{manager: m}, nil
}

// Load returns the saved settings, or the defaults when none were saved.
func (s *SettingsStore) Load() (Settings, error) {
	if s == nil || s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return DefaultSettings(), nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("desktop: load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return DefaultSettings(), fmt.Errorf("desktop: decode settings: %w", err)
	}
	return loaded.normalized(), nil
}

// Save writes settings to disk.
func (s *SettingsStore) Save(st Settings) error {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(st.normalized())
	if err != nil {
		return fmt.Errorf("desktop: encode settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("desktop: save settings: %w", err)
	}
	return nil
}
