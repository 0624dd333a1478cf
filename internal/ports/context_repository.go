package ports

import (
	"context"
	"route-summary-service/internal/domain"
)

// Port: read access to the shared point and vehicle definitions.
type ContextRepository interface {
	// Return depot points in definition order.
	ListDepots(ctx context.Context) ([]domain.Point, error)
	// Return all vehicle cost specs.
	ListVehicles(ctx context.Context) ([]domain.VehicleSpec, error)
}
