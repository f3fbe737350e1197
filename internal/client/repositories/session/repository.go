package session

import (
	"context"
	"time"
)

// Record is the persisted form of a signed-in session.
type Record struct {
	UserID      string
	DisplayName string
	Email       string
	Token       string
	SavedAt     time.Time
}

type Repository interface {
	Save(ctx context.Context, r Record) error
	// Load returns ok=false when no session is stored.
	Load(ctx context.Context) (r Record, ok bool, err error)
	Clear(ctx context.Context) error
}
