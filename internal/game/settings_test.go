package game

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.SoundEnabled {
		t.Error("sound should default on")
	}
	if s.SFXVolume <= 0 || s.SFXVolume > 1 {
		t.Errorf("default volume out of range: %v", s.SFXVolume)
	}
}

func TestSettingsManagerDegradedMode(t *testing.T) {
	t.Cleanup(func() { SetSoundEnabled(true) })

	sm := NewSettingsManager(nil)
	if sm.Settings() != DefaultSettings() {
		t.Fatalf("nil-manager settings should be the defaults: %+v", sm.Settings())
	}
	if err := sm.Load(); err != nil {
		t.Fatalf("nil-manager load: %v", err)
	}
	sm.Save() // no-op, must not panic

	on := sm.ToggleSound()
	if on {
		t.Fatal("toggle from default should turn sound off")
	}
	if SoundIsEnabled() {
		t.Fatal("toggle should apply to the audio subsystem")
	}
	if !sm.ToggleSound() {
		t.Fatal("second toggle should turn sound back on")
	}
}
