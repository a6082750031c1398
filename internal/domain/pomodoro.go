package domain

import (
	"fmt"
	"time"
)

// RunningPolicy decides what starting an already running pomodoro does.
type RunningPolicy string

// Running policies.
const (
	RunningKeep    RunningPolicy = "keep"    // Leave the start time alone (default)
	RunningRestart RunningPolicy = "restart" // Reset the start time to now
	RunningReject  RunningPolicy = "reject"  // Fail with ErrPomodoroActive
)

// IsValid returns true if the policy is known.
func (p RunningPolicy) IsValid() bool {
	switch p {
	case RunningKeep, RunningRestart, RunningReject:
		return true
	}
	return false
}

// ParseRunningPolicy parses a policy name.
func ParseRunningPolicy(s string) (RunningPolicy, error) {
	p := RunningPolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid on_running policy %q (want keep, restart or reject)", s)
	}
	return p, nil
}

// Rounding converts elapsed pomodoro time into credited time.
type Rounding string

// Rounding modes.
const (
	RoundNearest Rounding = "round" // Nearest minute (default)
	RoundFloor   Rounding = "floor" // Whole minutes, truncated
	RoundCeil    Rounding = "ceil"  // Whole minutes, rounded up
	RoundExact   Rounding = "exact" // Whole seconds
)

// IsValid returns true if the rounding mode is known.
func (r Rounding) IsValid() bool {
	switch r {
	case RoundNearest, RoundFloor, RoundCeil, RoundExact:
		return true
	}
	return false
}

// ParseRounding parses a rounding mode name.
func ParseRounding(s string) (Rounding, error) {
	r := Rounding(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid rounding %q (want round, floor, ceil or exact)", s)
	}
	return r, nil
}

// Apply converts d according to the rounding mode.
func (r Rounding) Apply(d time.Duration) time.Duration {
	switch r {
	case RoundFloor:
		return d.Truncate(time.Minute)
	case RoundCeil:
		if t := d.Truncate(time.Minute); t != d {
			return t + time.Minute
		}
		return d
	case RoundExact:
		return d.Truncate(time.Second)
	default:
		return d.Round(time.Minute)
	}
}

// PomodoroSettings holds the pomodoro rules shared by all tasks.
type PomodoroSettings struct {
	OnRunning RunningPolicy
	Rounding  Rounding
	Duration  time.Duration
}

// DefaultPomodoroSettings returns the settings used when nothing is configured.
func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		Duration:  DefaultPomodoroDuration,
		OnRunning: RunningKeep,
		Rounding:  RoundNearest,
	}
}

// Credit returns the time to add for a pomodoro that ran for elapsed.
// The result never exceeds one full pomodoro.
func (s PomodoroSettings) Credit(elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > s.Duration {
		elapsed = s.Duration
	}
	credit := s.Rounding.Apply(elapsed)
	if credit > s.Duration {
		credit = s.Duration
	}
	return credit
}
