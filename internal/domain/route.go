package domain

// Represents a single stop on an optimized route.
type Stop struct {
	NodeID *int
}

// Represents the authoritative per-vehicle route produced by the optimizer.
// Sequence holds raw node tokens as they appeared in the result; "0" is the depot.
// RouteRecords are read-only to the summary engine.
type RouteRecord struct {
	ClusterID     *int
	DepotID       *int
	Sequence      []string
	Stops         []Stop
	TotalDistance float64
	VehicleType   string
	Objective     *float64
}

// FirstStopNode returns the node id of the first stop, if the route has one.
func (r RouteRecord) FirstStopNode() (int, bool) {
	if len(r.Stops) == 0 || r.Stops[0].NodeID == nil {
		return 0, false
	}
	return *r.Stops[0].NodeID, true
}
