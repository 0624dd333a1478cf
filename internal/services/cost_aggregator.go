package services

import (
	"errors"
	"fmt"
	"sort"

	"route-summary-service/internal/domain"
)

var ErrNoDepots = errors.New("aggregate costs: no depots known but routes exist")

// Grand totals across all depots.
type Totals struct {
	Distance     float64 `json:"distance"`
	FixedCost    float64 `json:"fixed_cost"`
	VariableCost float64 `json:"variable_cost"`
	TotalCost    float64 `json:"total_cost"`
	Customers    int     `json:"customers"`
	Routes       int     `json:"routes"`
}

// A data-quality finding raised while attributing routes.
type Warning struct {
	RouteIndex int    `json:"route_index"`
	DepotID    int    `json:"depot_id"`
	Message    string `json:"message"`
}

// Per-depot accounting of one result plus grand totals. Attributions counts
// routes per depot attribution rule and is only set in standard mode.
type Aggregate struct {
	Mode         domain.Mode               `json:"mode"`
	Depots       []domain.DepotAccumulator `json:"depots"`
	Totals       Totals                    `json:"totals"`
	Warnings     []Warning                 `json:"warnings,omitempty"`
	Attributions map[Attribution]int       `json:"attributions,omitempty"`
}

// AggregateStandard folds standard-pipeline routes into one accumulator per depot.
//
// Each route adds its distance to the resolved depot, the vehicle's fixed cost
// once, distance * variable cost per km, and its non-zero sequence nodes.
// Unknown vehicle types contribute no cost. Accumulators are returned ordered
// by depot id. ErrNoDepots is returned only when routes exist but no depot is known.
func AggregateStandard(routes []domain.RouteRecord, depots *domain.DepotSet, vehicles domain.VehicleTable) (*Aggregate, error) {
	if depots.Len() == 0 && len(routes) > 0 {
		return nil, fmt.Errorf("%w (routes=%d)", ErrNoDepots, len(routes))
	}

	accs := make(map[int]*domain.DepotAccumulator, depots.Len())
	for _, id := range depots.IDs() {
		d, _ := depots.Get(id)
		accs[id] = &domain.DepotAccumulator{DepotID: id, Name: d.Name, Customers: []int{}}
	}

	agg := &Aggregate{Mode: domain.ModeStandard, Attributions: map[Attribution]int{}}

	for i, route := range routes {
		id, how, _ := ResolveDepot(route, depots)
		agg.Attributions[how]++
		if how == AttributionFallback {
			agg.Warnings = append(agg.Warnings, Warning{
				RouteIndex: i,
				DepotID:    id,
				Message:    fmt.Sprintf("route %d has no depot attribution among %d depots; assigned to first depot %d", i, depots.Len(), id),
			})
		}

		acc := accs[id]
		acc.Distance += route.TotalDistance
		acc.Routes++

		// A missing vehicle spec is a zero spec: no cost, no failure.
		vehicle, _ := vehicles.Lookup(route.VehicleType)
		acc.FixedCost += vehicle.FixedCost
		acc.VariableCost += route.TotalDistance * vehicle.VariableCostPerKm

		acc.Customers = append(acc.Customers, CustomerNodes(route.Sequence)...)
	}

	ids := depots.IDs()
	sort.Ints(ids)

	agg.Depots = make([]domain.DepotAccumulator, 0, len(ids))
	for _, id := range ids {
		acc := accs[id]
		acc.TotalCost = acc.FixedCost + acc.VariableCost

		agg.Totals.Distance += acc.Distance
		agg.Totals.FixedCost += acc.FixedCost
		agg.Totals.VariableCost += acc.VariableCost
		agg.Totals.TotalCost += acc.TotalCost
		agg.Totals.Customers += len(acc.Customers)
		agg.Totals.Routes += acc.Routes

		agg.Depots = append(agg.Depots, *acc)
	}

	return agg, nil
}

// AggregateAcademic summarizes an academic replay result.
//
// Costs are passed through from the result as shipped and never recomputed from
// vehicle specs. Distance is the sum of route distances; all non-zero sequence
// nodes are attributed to the dataset's single depot (id 0, "Depot" if absent).
func AggregateAcademic(result *domain.Result) *Aggregate {
	acc := domain.DepotAccumulator{Name: "Depot", Customers: []int{}}
	if result.Dataset != nil && result.Dataset.Depot != nil {
		acc.DepotID = result.Dataset.Depot.ID
		if result.Dataset.Depot.Name != "" {
			acc.Name = result.Dataset.Depot.Name
		}
	}

	for _, route := range result.Routes {
		acc.Distance += route.TotalDistance
		acc.Routes++
		acc.Customers = append(acc.Customers, CustomerNodes(route.Sequence)...)
	}

	if result.Costs != nil {
		acc.FixedCost = result.Costs.TotalFixedCost
		acc.VariableCost = result.Costs.TotalVariableCost
		acc.TotalCost = result.Costs.TotalCost
	}

	return &Aggregate{
		Mode:   domain.ModeAcademicReplay,
		Depots: []domain.DepotAccumulator{acc},
		Totals: Totals{
			Distance:     acc.Distance,
			FixedCost:    acc.FixedCost,
			VariableCost: acc.VariableCost,
			TotalCost:    acc.TotalCost,
			Customers:    len(acc.Customers),
			Routes:       acc.Routes,
		},
	}
}
