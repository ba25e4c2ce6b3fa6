package types

import "time"

// Toast is a transient corner notification: saved confirmations, break
// reminders, task completions. It disappears once Expires passes.
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)
