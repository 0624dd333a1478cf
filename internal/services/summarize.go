package services

import (
	"fmt"

	"route-summary-service/internal/domain"
)

// Report states.
const (
	StatusOK       = "ok"
	StatusNoResult = "no_result"
	StatusNoData   = "no_data"
)

// Read-only inputs of one summary. Points and Vehicles are the externally
// owned context tables; they are only read.
type SummaryInput struct {
	Result   *domain.Result
	Points   domain.Points
	Vehicles domain.VehicleTable
}

// Normalized iteration tables of both phases.
type IterationReport struct {
	Status string         `json:"status"`
	ACS    []IterationRow `json:"acs"`
	RVND   []IterationRow `json:"rvnd"`
}

// Output of the reconciliation and aggregation chain for one result.
type Report struct {
	Status     string          `json:"status"`
	Mode       domain.Mode     `json:"mode,omitempty"`
	Iterations IterationReport `json:"iterations"`
	Aggregate  *Aggregate      `json:"aggregate,omitempty"`
}

// Summarize runs the engine on one result snapshot.
//
// A nil result is declined with StatusNoResult. Absent iteration logs are
// reported as StatusNoData on the iteration tables. The only error is
// ErrNoDepots for a standard result whose routes cannot be placed.
func Summarize(in SummaryInput) (*Report, error) {
	if in.Result == nil {
		return &Report{
			Status:     StatusNoResult,
			Iterations: IterationReport{Status: StatusNoData, ACS: []IterationRow{}, RVND: []IterationRow{}},
		}, nil
	}

	result := in.Result
	mode := domain.ModeStandard
	if result.IsAcademic() {
		mode = domain.ModeAcademicReplay
	}

	logs := NormalizeLogs(result)
	routes := BuildRoutesMap(result.Routes)

	iters := IterationReport{
		Status: StatusOK,
		ACS:    BuildIterationRows(logs.ACS, routes),
		RVND:   BuildIterationRows(logs.RVND, routes),
	}
	if logs.Empty() {
		iters.Status = StatusNoData
	}

	var agg *Aggregate
	if mode == domain.ModeAcademicReplay {
		agg = AggregateAcademic(result)
	} else {
		var err error
		agg, err = AggregateStandard(result.Routes, KnownDepots(in.Points, result), in.Vehicles)
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
	}

	return &Report{
		Status:     StatusOK,
		Mode:       mode,
		Iterations: iters,
		Aggregate:  agg,
	}, nil
}

// KnownDepots returns the depots of the input point definitions, or the depot
// embedded in the result when no point definitions are given.
func KnownDepots(points domain.Points, result *domain.Result) *domain.DepotSet {
	depots := points.DepotSet()
	if depots.Len() == 0 && result != nil && result.Dataset != nil && result.Dataset.Depot != nil {
		depots.Add(*result.Dataset.Depot)
	}
	return depots
}
