// Package config provides configuration management for Haven.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Haven application.
type Config struct {
	Countdown     CountdownConfig    `mapstructure:"countdown"`
	Bypass        BypassConfig       `mapstructure:"bypass"`
	Views         ViewsConfig        `mapstructure:"views"`
	Zen           ZenConfig          `mapstructure:"zen"`
	Book          BookConfig         `mapstructure:"book"`
	Greeting      GreetingConfig     `mapstructure:"greeting"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
	Letters       []LetterConfig     `mapstructure:"letters"`
}

// CountdownConfig holds the gate target. Target is an RFC 3339 instant;
// when it fails to parse, the fallback fields rebuild a deterministic
// target instead of letting the gate open early.
type CountdownConfig struct {
	Target            string `mapstructure:"target"`
	FallbackYear      int    `mapstructure:"fallback_year"`
	FallbackMonth     int    `mapstructure:"fallback_month"`
	FallbackDay       int    `mapstructure:"fallback_day"`
	FallbackUTCOffset int    `mapstructure:"fallback_utc_offset_hours"`
}

// TargetTime resolves the countdown target, falling back to the manual
// fields when the configured string does not parse.
func (c CountdownConfig) TargetTime() time.Time {
	if t, err := time.Parse(time.RFC3339, c.Target); err == nil {
		return t
	}
	midnight := time.Date(c.FallbackYear, time.Month(c.FallbackMonth), c.FallbackDay,
		0, 0, 0, 0, time.UTC)
	return midnight.Add(-time.Duration(c.FallbackUTCOffset) * time.Hour)
}

// UsesFallback reports whether TargetTime will use the fallback fields
// because the target string does not parse. Callers log this; the
// fallback itself stays silent and never fails.
func (c CountdownConfig) UsesFallback() bool {
	_, err := time.Parse(time.RFC3339, c.Target)
	return err != nil
}

// BypassConfig holds the early-unlock gesture settings.
type BypassConfig struct {
	Secret              string   `mapstructure:"secret"`
	RequiredActivations int      `mapstructure:"required_activations"`
	IdleWindow          Duration `mapstructure:"idle_window"`
}

// ViewsConfig holds view transition and inactivity settings.
type ViewsConfig struct {
	TransitionDuration Duration `mapstructure:"transition_duration"`
	HomeIdleTimeout    Duration `mapstructure:"home_idle_timeout"`
	GardenIdleTimeout  Duration `mapstructure:"garden_idle_timeout"`
	GardenEnabled      bool     `mapstructure:"garden_enabled"`
	SectionRevealStep  Duration `mapstructure:"section_reveal_step"`
}

// ZenConfig holds the quiet-mode schedule. Entries during the day window
// [day_start, day_end) exit at evening_exit the next time it comes
// around; entries outside it exit the same way at morning_exit.
type ZenConfig struct {
	DayStartHour    int `mapstructure:"day_start_hour"`
	DayEndHour      int `mapstructure:"day_end_hour"`
	EveningExitHour int `mapstructure:"evening_exit_hour"`
	MorningExitHour int `mapstructure:"morning_exit_hour"`
}

// BookConfig holds the book widget settings.
type BookConfig struct {
	TransitionDuration Duration `mapstructure:"transition_duration"`
}

// GreetingConfig holds the dashboard greeting.
type GreetingConfig struct {
	Name string `mapstructure:"name"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds the day and night palettes.
type ThemeConfig struct {
	DayBackground   string `mapstructure:"day_background"`
	DayForeground   string `mapstructure:"day_foreground"`
	DayAccent       string `mapstructure:"day_accent"`
	NightBackground string `mapstructure:"night_background"`
	NightForeground string `mapstructure:"night_foreground"`
	NightAccent     string `mapstructure:"night_accent"`
	ColorMuted      string `mapstructure:"color_muted"`
	ColorOverdue    string `mapstructure:"color_overdue"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		DayBackground:   "#FDF6EC",
		DayForeground:   "#4A403A",
		DayAccent:       "#C9849B",
		NightBackground: "#1F2233",
		NightForeground: "#D8D4E8",
		NightAccent:     "#8E7CC3",
		ColorMuted:      "#95A5A6",
		ColorOverdue:    "#E07A5F",
	}
}

// LetterConfig is one sealed letter shown on the dashboard.
type LetterConfig struct {
	ID      string `mapstructure:"id"`
	Title   string `mapstructure:"title"`
	Date    string `mapstructure:"date"`
	Preview string `mapstructure:"preview"`
	Content string `mapstructure:"content"`
	Icon    string `mapstructure:"icon"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Countdown: CountdownConfig{
			Target:            "2026-01-01T00:00:00Z",
			FallbackYear:      2026,
			FallbackMonth:     1,
			FallbackDay:       1,
			FallbackUTCOffset: 0,
		},
		Bypass: BypassConfig{
			Secret:              "",
			RequiredActivations: 3,
			IdleWindow:          Duration(700 * time.Millisecond),
		},
		Views: ViewsConfig{
			TransitionDuration: Duration(900 * time.Millisecond),
			HomeIdleTimeout:    Duration(3 * time.Minute),
			GardenIdleTimeout:  Duration(3 * time.Minute),
			GardenEnabled:      true,
			SectionRevealStep:  Duration(150 * time.Millisecond),
		},
		Zen: ZenConfig{
			DayStartHour:    5,
			DayEndHour:      18,
			EveningExitHour: 21,
			MorningExitHour: 5,
		},
		Book: BookConfig{
			TransitionDuration: Duration(1400 * time.Millisecond),
		},
		Greeting: GreetingConfig{
			Name: "friend",
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: "~/.haven",
		},
		Theme:   DefaultThemeConfig(),
		Letters: DefaultLetters(),
	}
}

// DefaultLetters returns the starter letters shown until the user edits
// the config.
func DefaultLetters() []LetterConfig {
	return []LetterConfig{
		{
			ID:      "welcome",
			Title:   "Welcome",
			Date:    "Day one",
			Preview: "A small note to start with",
			Content: "This space is yours. Plant a note, log a mood, let the days count themselves down.",
			Icon:    "✉",
		},
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.haven" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".haven")
	}

	if len(cfg.Letters) == 0 {
		cfg.Letters = DefaultLetters()
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("countdown.target", cfg.Countdown.Target)
	viper.Set("countdown.fallback_year", cfg.Countdown.FallbackYear)
	viper.Set("countdown.fallback_month", cfg.Countdown.FallbackMonth)
	viper.Set("countdown.fallback_day", cfg.Countdown.FallbackDay)
	viper.Set("countdown.fallback_utc_offset_hours", cfg.Countdown.FallbackUTCOffset)
	viper.Set("bypass.secret", cfg.Bypass.Secret)
	viper.Set("bypass.required_activations", cfg.Bypass.RequiredActivations)
	viper.Set("bypass.idle_window", cfg.Bypass.IdleWindow.String())
	viper.Set("views.transition_duration", cfg.Views.TransitionDuration.String())
	viper.Set("views.home_idle_timeout", cfg.Views.HomeIdleTimeout.String())
	viper.Set("views.garden_idle_timeout", cfg.Views.GardenIdleTimeout.String())
	viper.Set("views.garden_enabled", cfg.Views.GardenEnabled)
	viper.Set("views.section_reveal_step", cfg.Views.SectionRevealStep.String())
	viper.Set("zen.day_start_hour", cfg.Zen.DayStartHour)
	viper.Set("zen.day_end_hour", cfg.Zen.DayEndHour)
	viper.Set("zen.evening_exit_hour", cfg.Zen.EveningExitHour)
	viper.Set("zen.morning_exit_hour", cfg.Zen.MorningExitHour)
	viper.Set("book.transition_duration", cfg.Book.TransitionDuration.String())
	viper.Set("greeting.name", cfg.Greeting.Name)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.day_background", cfg.Theme.DayBackground)
	viper.Set("theme.day_foreground", cfg.Theme.DayForeground)
	viper.Set("theme.day_accent", cfg.Theme.DayAccent)
	viper.Set("theme.night_background", cfg.Theme.NightBackground)
	viper.Set("theme.night_foreground", cfg.Theme.NightForeground)
	viper.Set("theme.night_accent", cfg.Theme.NightAccent)
	viper.Set("theme.color_muted", cfg.Theme.ColorMuted)
	viper.Set("theme.color_overdue", cfg.Theme.ColorOverdue)

	letters := make([]map[string]any, 0, len(cfg.Letters))
	for _, l := range cfg.Letters {
		letters = append(letters, map[string]any{
			"id":      l.ID,
			"title":   l.Title,
			"date":    l.Date,
			"preview": l.Preview,
			"content": l.Content,
			"icon":    l.Icon,
		})
	}
	viper.Set("letters", letters)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".haven", "config.toml"), nil
}

// GetStatePath returns the directory holding persisted widget state.
func GetStatePath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "state")
}

// setDefaults sets default values for viper.
func setDefaults() {
	def := DefaultConfig()

	viper.SetDefault("countdown.target", def.Countdown.Target)
	viper.SetDefault("countdown.fallback_year", def.Countdown.FallbackYear)
	viper.SetDefault("countdown.fallback_month", def.Countdown.FallbackMonth)
	viper.SetDefault("countdown.fallback_day", def.Countdown.FallbackDay)
	viper.SetDefault("countdown.fallback_utc_offset_hours", def.Countdown.FallbackUTCOffset)
	viper.SetDefault("bypass.secret", def.Bypass.Secret)
	viper.SetDefault("bypass.required_activations", def.Bypass.RequiredActivations)
	viper.SetDefault("bypass.idle_window", def.Bypass.IdleWindow.String())
	viper.SetDefault("views.transition_duration", def.Views.TransitionDuration.String())
	viper.SetDefault("views.home_idle_timeout", def.Views.HomeIdleTimeout.String())
	viper.SetDefault("views.garden_idle_timeout", def.Views.GardenIdleTimeout.String())
	viper.SetDefault("views.garden_enabled", def.Views.GardenEnabled)
	viper.SetDefault("views.section_reveal_step", def.Views.SectionRevealStep.String())
	viper.SetDefault("zen.day_start_hour", def.Zen.DayStartHour)
	viper.SetDefault("zen.day_end_hour", def.Zen.DayEndHour)
	viper.SetDefault("zen.evening_exit_hour", def.Zen.EveningExitHour)
	viper.SetDefault("zen.morning_exit_hour", def.Zen.MorningExitHour)
	viper.SetDefault("book.transition_duration", def.Book.TransitionDuration.String())
	viper.SetDefault("greeting.name", def.Greeting.Name)
	viper.SetDefault("notifications.enabled", def.Notifications.Enabled)
	viper.SetDefault("storage.data_dir", "~/.haven")
	viper.SetDefault("theme.day_background", def.Theme.DayBackground)
	viper.SetDefault("theme.day_foreground", def.Theme.DayForeground)
	viper.SetDefault("theme.day_accent", def.Theme.DayAccent)
	viper.SetDefault("theme.night_background", def.Theme.NightBackground)
	viper.SetDefault("theme.night_foreground", def.Theme.NightForeground)
	viper.SetDefault("theme.night_accent", def.Theme.NightAccent)
	viper.SetDefault("theme.color_muted", def.Theme.ColorMuted)
	viper.SetDefault("theme.color_overdue", def.Theme.ColorOverdue)
}
