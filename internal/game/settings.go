package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the global user preferences, persisted across sessions.
type Settings struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SFXVolume    float64 `yaml:"sfxVolume"`
}

func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		SFXVolume:    0.58,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager loads and saves Settings through gdata. A nil manager
// is a valid degraded mode: settings live in memory only.
type SettingsManager struct {
	m        *gdata.Manager
	settings Settings
}

func NewSettingsManager(m *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{m: m, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("settings: load failed, using defaults: %v", err)
	}
	return sm
}

func (sm *SettingsManager) Settings() Settings { return sm.settings }

// Load reads persisted settings; absent state keeps the defaults.
func (sm *SettingsManager) Load() error {
	if sm.m == nil {
		return nil
	}
	if !sm.m.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := sm.m.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return err
	}
	s.SFXVolume = clampF(s.SFXVolume, 0, 1)
	sm.settings = s
	return nil
}

// Save persists the current settings. Failure is logged, not fatal.
func (sm *SettingsManager) Save() {
	if sm.m == nil {
		return
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return
	}
	if err := sm.m.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		log.Printf("settings: save failed: %v", err)
	}
}

// Apply pushes the settings onto the audio subsystem.
func (sm *SettingsManager) Apply() {
	SetSoundEnabled(sm.settings.SoundEnabled)
	SetSFXVolume(sm.settings.SFXVolume)
}

// ToggleSound flips the sound preference, applies and persists it.
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	sm.Apply()
	sm.Save()
	return sm.settings.SoundEnabled
}
