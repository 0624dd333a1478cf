package format

import (
	"fmt"
	"strconv"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/services"
)

// One display/export row of the final solution summary.
type SummaryRow struct {
	DepotID       int    `json:"depot_id"`
	DepotName     string `json:"depot_name"`
	TotalDistance string `json:"total_distance_km"`
	FixedCost     string `json:"fixed_cost"`
	VariableCost  string `json:"variable_cost"`
	TotalCost     string `json:"total_cost"`
	CustomerCount int    `json:"customer_count"`
	Customers     string `json:"customers"`
}

// One display row of an ACS or RVND iteration table.
type IterationRow struct {
	Cluster       string   `json:"cluster"`
	Phase         string   `json:"phase,omitempty"`
	VehicleType   string   `json:"vehicle_type"`
	RouteSequence string   `json:"route_sequence"`
	Distance      string   `json:"distance_km"`
	TravelTime    string   `json:"travel_time,omitempty"`
	CustomerCount *int     `json:"customer_count,omitempty"`
	Objective     string   `json:"objective"`
	Snapshots     []string `json:"snapshots,omitempty"`
}

// SummaryRows renders one row per depot accumulator. Standard-mode depots
// without a name are shown as "Depot <id>".
func (f *Formatter) SummaryRows(mode domain.Mode, depots []domain.DepotAccumulator) []SummaryRow {
	rows := make([]SummaryRow, 0, len(depots))
	for _, d := range depots {
		name := d.Name
		if name == "" && mode != domain.ModeAcademicReplay {
			name = fmt.Sprintf("Depot %d", d.DepotID)
		}

		rows = append(rows, SummaryRow{
			DepotID:       d.DepotID,
			DepotName:     name,
			TotalDistance: f.Distance(d.Distance),
			FixedCost:     f.Currency(d.FixedCost),
			VariableCost:  f.Currency(d.VariableCost),
			TotalCost:     f.Currency(d.TotalCost),
			CustomerCount: len(d.Customers),
			Customers:     JoinCustomers(d.Customers),
		})
	}
	return rows
}

// IterationRows renders iteration rows. Academic tables show the customer
// count; standard tables show travel time and the RVND phase variant instead.
func (f *Formatter) IterationRows(mode domain.Mode, rows []services.IterationRow, showPhase bool) []IterationRow {
	out := make([]IterationRow, 0, len(rows))
	for _, r := range rows {
		row := IterationRow{
			Cluster:       cluster(r.ClusterID),
			VehicleType:   r.VehicleType,
			RouteSequence: r.RouteSequence,
			Distance:      f.Decimal(r.Distance),
			Objective:     f.Decimal(r.Objective),
			Snapshots:     r.Snapshots,
		}

		if mode == domain.ModeAcademicReplay {
			n := r.CustomerCount
			row.CustomerCount = &n
		} else {
			row.TravelTime = f.Decimal(r.TravelTime)
			if showPhase {
				row.Phase = r.Phase
			}
		}
		out = append(out, row)
	}
	return out
}

// TotalDistanceLine is the grand-total line shown under the summary table.
func (f *Formatter) TotalDistanceLine(total float64) string {
	return "Total Jarak Keseluruhan: " + f.Distance(total) + " km"
}

func cluster(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}
