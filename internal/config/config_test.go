package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	s, err := Load(path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "config file should be written on first run")

	assert.Equal(t, 30.0, s.HealthThreshold)
	assert.Equal(t, DefaultProcessName, s.ProcessName)
	assert.Equal(t, "r", s.PotionKey)
	assert.Equal(t, 100, s.PollIntervalMs)
	assert.Equal(t, 200, s.CooldownMs)
	assert.Equal(t, 200, s.PosX)
	assert.Equal(t, 880, s.PosY)
	assert.False(t, s.Locked)
	assert.Equal(t, "home", s.HotkeyLock)
	assert.Equal(t, "insert", s.HotkeyToggle)
	assert.Equal(t, "end", s.HotkeyClose)
}

func TestLoadUserEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `[settings]
health_threshold = 45.5
process_name = OtherGame.exe
potion_key = 3
current_hp_base = 0x064D8FD0
current_hp_offsets = 0x30,0x8C8,0xB0,0x2F0,0x368
max_hp_base = 0x064D8FD0
max_hp_offsets = 0x30,0x8C8,0xB0,0x2F0,0x370

[overlay]
pos_x = 50
pos_y = 60
locked = true

[hotkeys]
hotkey_toggle = f6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 45.5, s.HealthThreshold)
	assert.Equal(t, "OtherGame.exe", s.ProcessName)
	assert.Equal(t, "3", s.PotionKey)
	assert.Equal(t, 50, s.PosX)
	assert.Equal(t, 60, s.PosY)
	assert.True(t, s.Locked)
	assert.Equal(t, "f6", s.HotkeyToggle)
	// Untouched keys keep their defaults.
	assert.Equal(t, "home", s.HotkeyLock)
	assert.Equal(t, 100, s.PollIntervalMs)

	cur, max, potions, err := s.Chains()
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x064D8FD0), cur.Base)
	assert.Len(t, cur.Offsets, 5)
	assert.Equal(t, uintptr(0x370), max.Offsets[4])
	assert.True(t, potions.IsZero())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	s, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, s.SetOverlayPos(640, 480))
	require.NoError(t, s.SetLocked(true))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, reloaded.PosX)
	assert.Equal(t, 480, reloaded.PosY)
	assert.True(t, reloaded.Locked)
}

func TestLoadClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `[settings]
health_threshold = 250
poll_interval_ms = -5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHealthThreshold, s.HealthThreshold)
	assert.Equal(t, DefaultPollIntervalMs, s.PollIntervalMs)
}

func TestChainsRejectGarbageHPChain(t *testing.T) {
	s := Settings{
		CurrentHP: ChainSpec{Base: "zzz", Offsets: ""},
		MaxHP:     ChainSpec{Base: "0x10", Offsets: "0x8"},
	}
	_, _, _, err := s.Chains()
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "current_hp", cfgErr.Key)
}
