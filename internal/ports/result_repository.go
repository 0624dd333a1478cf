package ports

import (
	"context"
	"errors"
	"time"

	"route-summary-service/internal/domain"
)

var ErrResultNotFound = errors.New("result not found")

// A raw pipeline result as stored, before decoding.
type StoredResult struct {
	ID        string
	Mode      domain.Mode
	Payload   []byte
	CreatedAt time.Time
}

// Port: a boundary for storing and retrieving pipeline result snapshots.
type ResultRepository interface {
	// Store a raw result and return its generated id.
	SaveResult(ctx context.Context, mode domain.Mode, payload []byte) (string, error)
	// Retrieve a stored result. Returns ErrResultNotFound for unknown ids.
	GetResult(ctx context.Context, id string) (*StoredResult, error)
}
