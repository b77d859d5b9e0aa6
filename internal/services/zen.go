package services

import (
	"time"

	"haven/internal/config"
	"haven/internal/domain"
	"haven/internal/ports"
)

// ZenController runs the quiet mode that tucks the dashboard away. Zen is
// never persisted; a restart always comes back with it off. Every entry
// schedules a fresh auto-exit from the current clock, so re-entering
// replaces any earlier schedule.
type ZenController struct {
	cfg   config.ZenConfig
	chime ports.Chime
	now   func() time.Time
	flag  domain.AmbientFlag
}

// NewZenController creates the controller. chime may be nil.
func NewZenController(cfg config.ZenConfig, chime ports.Chime, now func() time.Time) *ZenController {
	return &ZenController{cfg: cfg, chime: chime, now: now}
}

// Active reports whether zen mode is on.
func (z *ZenController) Active() bool {
	return z.flag.Active
}

// AutoExitAt returns the scheduled auto-exit, zero when inactive.
func (z *ZenController) AutoExitAt() time.Time {
	return z.flag.AutoExitAt
}

// Toggle flips zen mode and returns the new state.
func (z *ZenController) Toggle() bool {
	if z.flag.Active {
		z.exit()
		return false
	}
	z.enter()
	return true
}

// Tick exits zen mode once its scheduled end comes due.
func (z *ZenController) Tick(now time.Time) {
	if z.flag.AutoExitDue(now) {
		z.exit()
	}
}

func (z *ZenController) enter() {
	now := z.now()
	z.flag.Enter(now)
	z.flag.AutoExitAt = z.nextExit(now)
	if z.chime != nil {
		z.chime.ZenStart()
	}
}

func (z *ZenController) exit() {
	z.flag.Exit()
	if z.chime != nil {
		z.chime.ZenEnd()
	}
}

// nextExit picks the auto-exit instant for an entry at the given time.
// Daytime entries run until the next evening exit hour; nighttime entries
// run until the next morning exit hour. Either hour rolls to the
// following day when it has already passed.
func (z *ZenController) nextExit(entered time.Time) time.Time {
	hour := entered.Hour()
	if hour >= z.cfg.DayStartHour && hour < z.cfg.DayEndHour {
		evening := time.Date(entered.Year(), entered.Month(), entered.Day(),
			z.cfg.EveningExitHour, 0, 0, 0, entered.Location())
		if !entered.Before(evening) {
			evening = evening.AddDate(0, 0, 1)
		}
		return evening
	}

	morning := time.Date(entered.Year(), entered.Month(), entered.Day(),
		z.cfg.MorningExitHour, 0, 0, 0, entered.Location())
	if !entered.Before(morning) {
		morning = morning.AddDate(0, 0, 1)
	}
	return morning
}
