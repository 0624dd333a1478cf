//go:build postgres_integration

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/ports"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return db
}

func TestSQLResultRepositoryRoundTrip(t *testing.T) {
	repo := NewSQLResultRepository(openTestDB(t))
	ctx := context.Background()

	id, err := repo.SaveResult(ctx, domain.ModeStandard, []byte(`{"routes": []}`))
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	got, err := repo.GetResult(ctx, id)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if got.Mode != domain.ModeStandard {
		t.Errorf("mode = %q, want %q", got.Mode, domain.ModeStandard)
	}

	if _, err := repo.GetResult(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ports.ErrResultNotFound) {
		t.Errorf("err = %v, want ErrResultNotFound", err)
	}
}

func TestSeedContextAndList(t *testing.T) {
	db := openTestDB(t)

	path := filepath.Join(t.TempDir(), "context.yaml")
	doc := "points:\n  depots:\n    - id: 41\n      name: Seeded\nvehicles:\n  - id: seed_truck\n    fixed_cost: 10\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := SeedContext(db, path); err != nil {
		t.Fatalf("SeedContext: %v", err)
	}

	repo := NewSQLContextRepository(db)
	depots, err := repo.ListDepots(context.Background())
	if err != nil {
		t.Fatalf("ListDepots: %v", err)
	}
	found := false
	for _, d := range depots {
		if d.ID == 41 && d.Name == "Seeded" {
			found = true
		}
	}
	if !found {
		t.Errorf("seeded depot missing from %+v", depots)
	}

	vehicles, err := repo.ListVehicles(context.Background())
	if err != nil {
		t.Fatalf("ListVehicles: %v", err)
	}
	if len(vehicles) == 0 {
		t.Errorf("no vehicles listed after seeding")
	}
}
