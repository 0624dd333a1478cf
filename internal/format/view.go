package format

import (
	"route-summary-service/internal/domain"
	"route-summary-service/internal/services"
)

// IterationTables are the rendered ACS and RVND tables.
type IterationTables struct {
	Status string         `json:"status"`
	ACS    []IterationRow `json:"acs"`
	RVND   []IterationRow `json:"rvnd"`
}

// View is a fully rendered report, ready for display.
type View struct {
	Status            string             `json:"status"`
	Mode              domain.Mode        `json:"mode,omitempty"`
	Iterations        IterationTables    `json:"iterations"`
	Summary           []SummaryRow       `json:"summary"`
	TotalDistance     string             `json:"total_distance"`
	TotalDistanceLine string             `json:"total_distance_line"`
	FixedCost         string             `json:"fixed_cost"`
	VariableCost      string             `json:"variable_cost"`
	TotalCost         string             `json:"total_cost"`
	Warnings          []services.Warning `json:"warnings,omitempty"`
}

// Render formats a report. A declined report renders with empty tables.
func (f *Formatter) Render(r *services.Report) View {
	v := View{
		Status:  r.Status,
		Mode:    r.Mode,
		Summary: []SummaryRow{},
		Iterations: IterationTables{
			Status: r.Iterations.Status,
			ACS:    f.IterationRows(r.Mode, r.Iterations.ACS, false),
			RVND:   f.IterationRows(r.Mode, r.Iterations.RVND, true),
		},
	}

	var totals services.Totals
	if agg := r.Aggregate; agg != nil {
		v.Summary = f.SummaryRows(agg.Mode, agg.Depots)
		v.Warnings = agg.Warnings
		totals = agg.Totals
	}

	v.TotalDistance = f.Distance(totals.Distance)
	v.TotalDistanceLine = f.TotalDistanceLine(totals.Distance)
	v.FixedCost = f.Currency(totals.FixedCost)
	v.VariableCost = f.Currency(totals.VariableCost)
	v.TotalCost = f.Currency(totals.TotalCost)
	return v
}
