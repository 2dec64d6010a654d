// Package config manages config_user.ini: created with defaults on first
// run, loaded at startup, persisted when the user moves or locks the
// overlay. A corrupt or unreadable file falls back to defaults; config
// problems are never fatal.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"

	"github.com/leobrqz/AutoPot-DR/internal/memory"
)

const DefaultFileName = "config_user.ini"

// Defaults mirror the shipped config.
const (
	DefaultHealthThreshold = 30.0
	DefaultProcessName     = "ProjectAlpha-Win64-Shipping.exe"
	DefaultPotionKey       = "r"
	DefaultPollIntervalMs  = 100
	DefaultCooldownMs      = 200
	DefaultPosX            = 200
	DefaultPosY            = 880
	DefaultHotkeyLock      = "home"
	DefaultHotkeyToggle    = "insert"
	DefaultHotkeyClose     = "end"
)

// ChainSpec is a pointer chain as written in the INI file: a hex base
// offset and comma-separated hex offsets.
type ChainSpec struct {
	Base    string
	Offsets string
}

// Settings is the decoded configuration snapshot.
type Settings struct {
	HealthThreshold float64
	ProcessName     string
	PotionKey       string
	PollIntervalMs  int
	CooldownMs      int

	CurrentHP ChainSpec
	MaxHP     ChainSpec
	Potions   ChainSpec

	PosX   int
	PosY   int
	Locked bool

	HotkeyLock   string
	HotkeyToggle string
	HotkeyClose  string
}

// ConfigError reports an invalid setting that was replaced by its default.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Key + " " + e.Message
}

// Store couples the decoded settings with the viper instance used to
// persist changes.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string

	Settings
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("settings.health_threshold", DefaultHealthThreshold)
	v.SetDefault("settings.process_name", DefaultProcessName)
	v.SetDefault("settings.potion_key", DefaultPotionKey)
	v.SetDefault("settings.poll_interval_ms", DefaultPollIntervalMs)
	v.SetDefault("settings.trigger_cooldown_ms", DefaultCooldownMs)
	v.SetDefault("settings.current_hp_base", "0x0")
	v.SetDefault("settings.current_hp_offsets", "")
	v.SetDefault("settings.max_hp_base", "0x0")
	v.SetDefault("settings.max_hp_offsets", "")
	v.SetDefault("settings.potion_count_base", "0x0")
	v.SetDefault("settings.potion_count_offsets", "")
	v.SetDefault("overlay.pos_x", DefaultPosX)
	v.SetDefault("overlay.pos_y", DefaultPosY)
	v.SetDefault("overlay.locked", false)
	v.SetDefault("hotkeys.hotkey_lock", DefaultHotkeyLock)
	v.SetDefault("hotkeys.hotkey_toggle", DefaultHotkeyToggle)
	v.SetDefault("hotkeys.hotkey_close", DefaultHotkeyClose)
}

// Load reads the INI file at path, writing it with defaults first when it
// does not exist. Unreadable content degrades to defaults rather than
// failing startup.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	setDefaults(v)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("config: write defaults: %w", err)
		}
	}

	// Defaults survive a failed read; the file is recreated on next save.
	_ = v.ReadInConfig()

	s := &Store{v: v, path: path}
	s.decode()
	return s, nil
}

func (s *Store) decode() {
	s.HealthThreshold = s.v.GetFloat64("settings.health_threshold")
	if s.HealthThreshold <= 0 || s.HealthThreshold > 100 {
		s.HealthThreshold = DefaultHealthThreshold
	}
	s.ProcessName = s.v.GetString("settings.process_name")
	if s.ProcessName == "" {
		s.ProcessName = DefaultProcessName
	}
	s.PotionKey = s.v.GetString("settings.potion_key")
	if s.PotionKey == "" {
		s.PotionKey = DefaultPotionKey
	}
	s.PollIntervalMs = s.v.GetInt("settings.poll_interval_ms")
	if s.PollIntervalMs <= 0 {
		s.PollIntervalMs = DefaultPollIntervalMs
	}
	s.CooldownMs = s.v.GetInt("settings.trigger_cooldown_ms")
	if s.CooldownMs <= 0 {
		s.CooldownMs = DefaultCooldownMs
	}

	s.CurrentHP = ChainSpec{
		Base:    s.v.GetString("settings.current_hp_base"),
		Offsets: s.v.GetString("settings.current_hp_offsets"),
	}
	s.MaxHP = ChainSpec{
		Base:    s.v.GetString("settings.max_hp_base"),
		Offsets: s.v.GetString("settings.max_hp_offsets"),
	}
	s.Potions = ChainSpec{
		Base:    s.v.GetString("settings.potion_count_base"),
		Offsets: s.v.GetString("settings.potion_count_offsets"),
	}

	s.PosX = s.v.GetInt("overlay.pos_x")
	s.PosY = s.v.GetInt("overlay.pos_y")
	s.Locked = s.v.GetBool("overlay.locked")

	s.HotkeyLock = s.v.GetString("hotkeys.hotkey_lock")
	s.HotkeyToggle = s.v.GetString("hotkeys.hotkey_toggle")
	s.HotkeyClose = s.v.GetString("hotkeys.hotkey_close")
}

// Chains parses the configured pointer chains. The potion chain is
// optional; HP chains must parse.
func (s *Settings) Chains() (cur, max, potions memory.PointerChain, err error) {
	cur, err = memory.ParseChain(s.CurrentHP.Base, s.CurrentHP.Offsets)
	if err != nil {
		return cur, max, potions, &ConfigError{Key: "current_hp", Message: err.Error()}
	}
	max, err = memory.ParseChain(s.MaxHP.Base, s.MaxHP.Offsets)
	if err != nil {
		return cur, max, potions, &ConfigError{Key: "max_hp", Message: err.Error()}
	}
	potions, err = memory.ParseChain(s.Potions.Base, s.Potions.Offsets)
	if err != nil {
		// Advisory chain; treat junk as unconfigured.
		potions = memory.PointerChain{}
		err = nil
	}
	return cur, max, potions, nil
}

// SetOverlayPos persists a new overlay position.
func (s *Store) SetOverlayPos(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PosX, s.PosY = x, y
	s.v.Set("overlay.pos_x", x)
	s.v.Set("overlay.pos_y", y)
	return s.v.WriteConfig()
}

// SetLocked persists the overlay lock state.
func (s *Store) SetLocked(locked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Locked = locked
	s.v.Set("overlay.locked", locked)
	return s.v.WriteConfig()
}
