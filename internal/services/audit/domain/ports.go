// Package domain defines the wizard audit journal contract
package domain

import (
	"context"
	"time"
)

// Event is one applied wizard action
type Event struct {
	At        time.Time `json:"at"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Version   uint64    `json:"version"`
	Detail    string    `json:"detail,omitempty"`
}

// Journal accepts events without blocking the caller
type Journal interface {
	Record(ev Event)
}

// Reader returns what a session did, newest first
type Reader interface {
	Recent(ctx context.Context, sessionID string, limit int) ([]Event, error)
}

// WorkerPort is the flush loop
type WorkerPort interface {
	Run(ctx context.Context) error
}
