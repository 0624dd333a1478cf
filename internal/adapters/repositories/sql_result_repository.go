package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/platform/obs"
	"route-summary-service/internal/ports"
)

// Postgres-backed implementation of the ResultRepository port.
type SQLResultRepository struct{ DB *sql.DB }

func NewSQLResultRepository(db *sql.DB) *SQLResultRepository {
	return &SQLResultRepository{DB: db}
}

// Store a raw result payload under a new random id.
func (s *SQLResultRepository) SaveResult(ctx context.Context, mode domain.Mode, payload []byte) (_ string, err error) {
	defer obs.Time(ctx, "results.SaveResult")(&err)

	if s.DB == nil {
		return "", errors.New("sql result repository: DB is nil")
	}

	id := uuid.New()
	query := `
	INSERT INTO pipeline_results (result_id, mode, payload)
	VALUES ($1, $2, $3::jsonb);
	`
	if _, err := s.DB.ExecContext(ctx, query, id.String(), string(mode), string(payload)); err != nil {
		return "", fmt.Errorf("save result: insert pipeline_results: %w", err)
	}

	return id.String(), nil
}

// Return a stored result by id.
func (s *SQLResultRepository) GetResult(ctx context.Context, id string) (_ *ports.StoredResult, err error) {
	defer obs.Time(ctx, "results.GetResult")(&err)

	if s.DB == nil {
		return nil, errors.New("sql result repository: DB is nil")
	}

	// Malformed ids cannot match a stored row.
	if _, perr := uuid.Parse(id); perr != nil {
		return nil, fmt.Errorf("get result %q: %w", id, ports.ErrResultNotFound)
	}

	query := `
	SELECT
		result_id::text,
		mode,
		payload::text,
		created_at
	FROM pipeline_results
	WHERE result_id = $1;
	`

	var (
		out     ports.StoredResult
		mode    string
		payload string
	)
	err = s.DB.QueryRowContext(ctx, query, id).Scan(&out.ID, &mode, &payload, &out.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get result %q: %w", id, ports.ErrResultNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get result %q: scan row: %w", id, err)
	}

	out.Mode = domain.Mode(mode)
	out.Payload = []byte(payload)
	return &out, nil
}
