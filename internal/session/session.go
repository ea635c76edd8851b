// Package session holds the classroom session state that lives outside the
// team roster: round counter, countdown timer and the variable-pool
// configuration, with per-key JSON persistence.
package session

import "fmt"

// DefaultTimerSeconds is the 30-minute classroom countdown.
const DefaultTimerSeconds = 1800

// State is the persisted part of a session. The running flag of the timer
// is deliberately not persisted; a reopened session starts paused.
type State struct {
	Started      bool `json:"started"`
	Round        int  `json:"round"`
	TimerSeconds int  `json:"timerSeconds"`
}

// DefaultState is the state of a fresh session.
func DefaultState() State {
	return State{
		Round:        1,
		TimerSeconds: DefaultTimerSeconds,
	}
}

// FormatTimer renders seconds as m:ss for the header clock.
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
