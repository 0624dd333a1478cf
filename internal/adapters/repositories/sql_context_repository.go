package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/platform/obs"
)

// Postgres-backed implementation of the ContextRepository port.
type SQLContextRepository struct{ DB *sql.DB }

func NewSQLContextRepository(db *sql.DB) *SQLContextRepository {
	return &SQLContextRepository{DB: db}
}

// Return depots in their original definition order.
func (s *SQLContextRepository) ListDepots(ctx context.Context) (_ []domain.Point, err error) {
	defer obs.Time(ctx, "context.ListDepots")(&err)

	if s.DB == nil {
		return nil, errors.New("sql context repository: DB is nil")
	}

	query := `
	SELECT
		depot_id,
		name,
		x,
		y
	FROM depots
	ORDER BY position, depot_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list depots: query depots table: %w", err)
	}
	defer rows.Close()

	depots := make([]domain.Point, 0, 8)
	for rows.Next() {
		var p domain.Point
		if err := rows.Scan(&p.ID, &p.Name, &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("list depots: scan row: %w", err)
		}
		depots = append(depots, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list depots: row iteration: %w", err)
	}

	return depots, nil
}

// Return all vehicle cost specs.
func (s *SQLContextRepository) ListVehicles(ctx context.Context) (_ []domain.VehicleSpec, err error) {
	defer obs.Time(ctx, "context.ListVehicles")(&err)

	if s.DB == nil {
		return nil, errors.New("sql context repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_id,
		name,
		fixed_cost,
		variable_cost_per_km
	FROM vehicles
	ORDER BY vehicle_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	vehicles := make([]domain.VehicleSpec, 0, 8)
	for rows.Next() {
		var v domain.VehicleSpec
		if err := rows.Scan(&v.ID, &v.Name, &v.FixedCost, &v.VariableCostPerKm); err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return vehicles, nil
}
