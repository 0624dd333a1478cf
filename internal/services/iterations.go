package services

import (
	"strings"

	"route-summary-service/internal/domain"
)

// A normalized iteration record with its backfilled fields resolved.
type IterationRow struct {
	ClusterID     *int     `json:"cluster_id"`
	Phase         string   `json:"phase"`
	VehicleType   string   `json:"vehicle_type"`
	RouteSequence string   `json:"route_sequence"`
	Distance      float64  `json:"distance"`
	TravelTime    float64  `json:"travel_time"`
	Objective     float64  `json:"objective"`
	CustomerCount int      `json:"customer_count"`
	Snapshots     []string `json:"snapshots,omitempty"`
}

// BuildIterationRows resolves objective, vehicle type, customer count and
// travel time for each record, cross-referencing routes by grouping key.
func BuildIterationRows(records []domain.IterationRecord, routes RoutesMap) []IterationRow {
	rows := make([]IterationRow, 0, len(records))
	for _, rec := range records {
		seq := rec.Sequence()
		rows = append(rows, IterationRow{
			ClusterID:     rec.Clone().ClusterID,
			Phase:         DisplayPhase(rec.Phase),
			VehicleType:   routes.VehicleType(rec),
			RouteSequence: seq,
			Distance:      rec.TotalDistance,
			TravelTime:    rec.TravelTime(),
			Objective:     routes.Objective(rec),
			CustomerCount: CountCustomers(seq),
			Snapshots:     append([]string(nil), rec.RoutesSnapshot...),
		})
	}
	return rows
}

// DisplayPhase strips the "RVND-" variant prefix ("RVND-INTER" -> "INTER").
// Records without a phase are shown as "RVND".
func DisplayPhase(phase string) string {
	if phase == "" {
		return "RVND"
	}
	return strings.TrimPrefix(phase, domain.PhaseRVNDPrefix)
}
