package tui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/lipgloss"

	"haven/internal/config"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with
// defaults. If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// palette is the resolved set of colors for one time of day.
type palette struct {
	background lipgloss.Color
	foreground lipgloss.Color
	accent     lipgloss.Color
	muted      lipgloss.Color
	overdue    lipgloss.Color
}

// themeSwitcher picks the day or night palette from the clock, with a
// manual override toggled by pressing the theme key three times inside a
// one second window. A pause between presses restarts the streak.
type themeSwitcher struct {
	theme config.ThemeConfig

	dayStartHour int
	dayEndHour   int

	override *bool

	presses int
	resetAt time.Time
}

const (
	themePressCount  = 3
	themePressWindow = time.Second
)

func newThemeSwitcher(theme config.ThemeConfig, zen config.ZenConfig) *themeSwitcher {
	return &themeSwitcher{
		theme:        theme,
		dayStartHour: zen.DayStartHour,
		dayEndHour:   zen.DayEndHour,
	}
}

// night reports whether the night palette applies at the given time.
func (ts *themeSwitcher) night(now time.Time) bool {
	if ts.override != nil {
		return *ts.override
	}
	hour := now.Hour()
	return hour < ts.dayStartHour || hour >= ts.dayEndHour
}

// press records one theme key press. The third press inside the window
// flips the manual override and returns true.
func (ts *themeSwitcher) press(now time.Time) bool {
	ts.presses++
	ts.resetAt = now.Add(themePressWindow)
	if ts.presses < themePressCount {
		return false
	}
	ts.presses = 0
	ts.resetAt = time.Time{}

	flipped := !ts.night(now)
	ts.override = &flipped
	return true
}

// tick expires a stale press streak.
func (ts *themeSwitcher) tick(now time.Time) {
	if !ts.resetAt.IsZero() && !now.Before(ts.resetAt) {
		ts.presses = 0
		ts.resetAt = time.Time{}
	}
}

// palette returns the active palette for the given time.
func (ts *themeSwitcher) palette(now time.Time) palette {
	p := palette{
		background: lipgloss.Color(ts.theme.DayBackground),
		foreground: lipgloss.Color(ts.theme.DayForeground),
		accent:     lipgloss.Color(ts.theme.DayAccent),
		muted:      lipgloss.Color(ts.theme.ColorMuted),
		overdue:    lipgloss.Color(ts.theme.ColorOverdue),
	}
	if ts.night(now) {
		p.background = lipgloss.Color(ts.theme.NightBackground)
		p.foreground = lipgloss.Color(ts.theme.NightForeground)
		p.accent = lipgloss.Color(ts.theme.NightAccent)
	}
	return p
}
