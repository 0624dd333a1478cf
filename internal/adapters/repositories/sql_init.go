package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"route-summary-service/internal/resultjson"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createResultsQuery := `
	CREATE TABLE IF NOT EXISTS pipeline_results (
		result_id UUID PRIMARY KEY,
		mode TEXT NOT NULL,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createDepotsQuery := `
	CREATE TABLE IF NOT EXISTS depots (
		depot_id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		x DOUBLE PRECISION NOT NULL DEFAULT 0,
		y DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		fixed_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
		variable_cost_per_km DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_pipeline_results_created_at
	ON pipeline_results(created_at);
	`

	statements := []string{
		createResultsQuery,
		createDepotsQuery,
		createVehiclesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate depot and vehicle tables from a JSON or YAML context file.
// Existing rows with the same key are replaced.
func SeedContext(db *sql.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed context: read %q: %w", path, err)
	}

	c, err := resultjson.DecodeContext(data)
	if err != nil {
		return fmt.Errorf("seed context: %w", err)
	}

	for i, v := range c.Vehicles {
		if strings.TrimSpace(v.ID) == "" {
			return fmt.Errorf("seed context: vehicle at index %d: id cannot be empty", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed context: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	depotStmt, err := tx.Prepare(`
	INSERT INTO depots (depot_id, position, name, x, y)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (depot_id) DO UPDATE
	SET position = EXCLUDED.position,
		name = EXCLUDED.name,
		x = EXCLUDED.x,
		y = EXCLUDED.y;
	`)
	if err != nil {
		return fmt.Errorf("seed context: prepare depot insert: %w", err)
	}
	defer depotStmt.Close()

	for pos, d := range c.Points.Depots {
		if _, err := depotStmt.Exec(d.ID, pos, d.Name, d.X, d.Y); err != nil {
			return fmt.Errorf("seed context: insert depot_id=%d: %w", d.ID, err)
		}
	}

	vehicleStmt, err := tx.Prepare(`
	INSERT INTO vehicles (vehicle_id, name, fixed_cost, variable_cost_per_km)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (vehicle_id) DO UPDATE
	SET name = EXCLUDED.name,
		fixed_cost = EXCLUDED.fixed_cost,
		variable_cost_per_km = EXCLUDED.variable_cost_per_km;
	`)
	if err != nil {
		return fmt.Errorf("seed context: prepare vehicle insert: %w", err)
	}
	defer vehicleStmt.Close()

	for _, v := range c.Vehicles {
		if _, err := vehicleStmt.Exec(v.ID, v.Name, v.FixedCost, v.VariableCostPerKm); err != nil {
			return fmt.Errorf("seed context: insert vehicle_id=%q: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed context: commit tx: %w", err)
	}

	return nil
}
