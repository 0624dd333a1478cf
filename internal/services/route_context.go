package services

import (
	"math"
	"strconv"
	"strings"

	"route-summary-service/internal/domain"
)

// Lookup from grouping key (cluster or depot id) to the authoritative route.
type RoutesMap map[int]domain.RouteRecord

// BuildRoutesMap indexes routes by their grouping key.
// Routes without a key are not indexed; a later route replaces an earlier one
// with the same key.
func BuildRoutesMap(routes []domain.RouteRecord) RoutesMap {
	m := make(RoutesMap, len(routes))
	for _, r := range routes {
		if r.ClusterID == nil {
			continue
		}
		m[*r.ClusterID] = r
	}
	return m
}

func (m RoutesMap) route(key *int) (domain.RouteRecord, bool) {
	if key == nil {
		return domain.RouteRecord{}, false
	}
	r, ok := m[*key]
	return r, ok
}

// resolve applies the backfill precedence: the record's own value, else the
// value of the route sharing its grouping key, else def.
func resolve[T any](own *T, route domain.RouteRecord, matched bool, fromRoute func(domain.RouteRecord) *T, def T) T {
	if own != nil {
		return *own
	}
	if matched {
		if v := fromRoute(route); v != nil {
			return *v
		}
	}
	return def
}

// Objective backfills the optimization objective (Z) of a record.
func (m RoutesMap) Objective(rec domain.IterationRecord) float64 {
	route, ok := m.route(rec.ClusterID)
	return resolve(rec.Objective, route, ok, func(r domain.RouteRecord) *float64 { return r.Objective }, 0)
}

// VehicleType backfills the vehicle type of a record. Empty strings count as absent.
func (m RoutesMap) VehicleType(rec domain.IterationRecord) string {
	route, ok := m.route(rec.ClusterID)
	return resolve(nonEmpty(rec.VehicleType), route, ok, func(r domain.RouteRecord) *string { return nonEmpty(r.VehicleType) }, "")
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// How a route was attributed to a depot.
type Attribution string

const (
	AttributionExplicit    Attribution = "explicit"
	AttributionFirstStop   Attribution = "first_stop"
	AttributionSingleDepot Attribution = "single_depot"
	AttributionFallback    Attribution = "fallback"
)

// ResolveDepot picks the depot bucket of a route.
//
// Precedence: an explicit depot id naming a known depot, the first stop's node
// id if it is a known depot, the only depot when exactly one is known, and
// finally the first depot in insertion order. ok is false only when no depot
// is known at all.
func ResolveDepot(route domain.RouteRecord, depots *domain.DepotSet) (id int, how Attribution, ok bool) {
	if route.DepotID != nil && depots.Has(*route.DepotID) {
		return *route.DepotID, AttributionExplicit, true
	}

	if node, found := route.FirstStopNode(); found && depots.Has(node) {
		return node, AttributionFirstStop, true
	}

	first, found := depots.First()
	if !found {
		return 0, "", false
	}
	if depots.Len() == 1 {
		return first.ID, AttributionSingleDepot, true
	}
	return first.ID, AttributionFallback, true
}

// CountCustomers counts the customers in a rendered route sequence such as
// "0-3-5-0" or "0, 3, 5, 0". Both delimiters are accepted; empty tokens and
// the depot token "0" are not counted. "-" and "" yield 0. The rule is
// purely textual: "0.0" and non-numeric tokens count, unlike CustomerNodes.
func CountCustomers(seq string) int {
	if seq == "" || seq == "-" {
		return 0
	}

	n := 0
	for _, tok := range strings.Split(strings.ReplaceAll(seq, "-", ","), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" || tok == "0" {
			continue
		}
		n++
	}
	return n
}

// CountCustomerNodes applies the CountCustomers rule to a structured sequence.
func CountCustomerNodes(tokens []string) int {
	return CountCustomers(strings.Join(tokens, ","))
}

// ParseNodeIDs converts node tokens to integer ids, skipping malformed tokens.
// Integral decimals such as "4.0" are accepted.
func ParseNodeIDs(tokens []string) []int {
	ids := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if id, ok := parseNodeID(tok); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// CustomerNodes returns the non-depot node ids of a sequence, in order.
// Tokens are parsed first, so malformed tokens are skipped and "0.0" is the
// depot. Its length can be lower than CountCustomerNodes for the same tokens.
func CustomerNodes(tokens []string) []int {
	out := []int{}
	for _, id := range ParseNodeIDs(tokens) {
		if id != 0 {
			out = append(out, id)
		}
	}
	return out
}

func parseNodeID(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	if n, err := strconv.Atoi(tok); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
