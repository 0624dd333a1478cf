package domain

// Phase tags carried by iteration records.
const (
	PhaseACSSummary  = "ACS_SUMMARY"
	PhaseRVNDSummary = "RVND_SUMMARY"
	// Standard-pipeline RVND records carry variant tags such as "RVND-INTER".
	PhaseRVNDPrefix = "RVND-"
)

// Represents one optimization step or phase summary emitted by the pipeline.
// Optional fields are pointers so that "absent" can be told apart from zero.
type IterationRecord struct {
	Phase           string
	ClusterID       *int
	VehicleType     string
	RouteSequence   *string
	TotalDistance   float64
	TotalTravelTime *float64
	Objective       *float64
	RoutesSnapshot  []string
}

// Return a deep copy so callers can never mutate the source result through it.
func (r IterationRecord) Clone() IterationRecord {
	out := r
	if r.ClusterID != nil {
		v := *r.ClusterID
		out.ClusterID = &v
	}
	if r.RouteSequence != nil {
		v := *r.RouteSequence
		out.RouteSequence = &v
	}
	if r.TotalTravelTime != nil {
		v := *r.TotalTravelTime
		out.TotalTravelTime = &v
	}
	if r.Objective != nil {
		v := *r.Objective
		out.Objective = &v
	}
	if r.RoutesSnapshot != nil {
		out.RoutesSnapshot = append([]string(nil), r.RoutesSnapshot...)
	}
	return out
}

// Sequence returns the route sequence, or "-" when the record has none.
func (r IterationRecord) Sequence() string {
	if r.RouteSequence == nil {
		return "-"
	}
	return *r.RouteSequence
}

// TravelTime defaults to the distance when the pipeline did not report it.
func (r IterationRecord) TravelTime() float64 {
	if r.TotalTravelTime == nil {
		return r.TotalDistance
	}
	return *r.TotalTravelTime
}
