package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrCannotSplit  = errors.New("task cannot be split")
	ErrInvalidClock = errors.New("invalid clock time")
	ErrInvalidBreak = errors.New("invalid scheduled break")
	ErrNoSession    = errors.New("no group session")
	ErrCorruptData  = errors.New("corrupt data")
)

// StoreError represents an error from the persistence layer
type StoreError struct {
	Bucket string // Logical bucket: "settings", "tasks", "log", etc.
	Op     string // Operation: "load", "save", "clear"
	Err    error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.Bucket != "" {
		return fmt.Sprintf("store %s [%s]: %v", e.Op, e.Bucket, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// PeerError represents a failure from the group-sync network layer. It is
// surfaced to the user as a message; local timer and task state never change
// because of one.
type PeerError struct {
	Op      string
	Session string
	Err     error
}

func (e *PeerError) Error() string {
	if e.Session != "" {
		return fmt.Sprintf("group %s [%s]: %v", e.Op, e.Session, e.Err)
	}
	return fmt.Sprintf("group %s: %v", e.Op, e.Err)
}

func (e *PeerError) Unwrap() error {
	return e.Err
}
