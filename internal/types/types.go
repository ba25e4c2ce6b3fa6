// Package types contains shared types used across the application.
package types

// TimerDisplayState is the coarse state shown in the statusbar badge and
// used to pick key hints.
type TimerDisplayState string

const (
	StateIdle    TimerDisplayState = "IDLE"
	StateFocus   TimerDisplayState = "FOCUS"
	StateBreak   TimerDisplayState = "BREAK"
	StateGrace   TimerDisplayState = "GRACE"
	StatePaused  TimerDisplayState = "PAUSED"
	StateSummary TimerDisplayState = "SUMMARY"
)
