package history

import (
	"context"
	"time"
)

// Run is one pipeline execution recorded in the history store.
type Run struct {
	ID             string
	VideoID        string
	Title          string
	Status         string // running, completed, failed
	StartedAt      time.Time
	FinishedAt     time.Time
	TokensUsed     int
	ProcessingTime float64
	EstimatedCost  float64
	OutputDir      string
	Error          string
}

// Outcome closes a run row.
type Outcome struct {
	Status         string
	TokensUsed     int
	ProcessingTime float64
	EstimatedCost  float64
	OutputDir      string
	Error          string
}

// Store persists run history.
type Store interface {
	Create(ctx context.Context, run Run) error
	Finish(ctx context.Context, id string, outcome Outcome) error
	List(ctx context.Context, limit int) ([]Run, error)
	Close() error
}
