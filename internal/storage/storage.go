package storage

import "errors"

// Sentinel errors shared by the persistence layer and the HTTP handlers.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEventFull           = errors.New("event is full")
	ErrParticipantConflict = errors.New("participant already registered")
)
