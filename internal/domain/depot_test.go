package domain

import "testing"

func TestDepotSetKeepsInsertionOrder(t *testing.T) {
	s := NewDepotSet(
		Depot{ID: 7, Name: "North"},
		Depot{ID: 2, Name: "South"},
		Depot{ID: 7, Name: "Duplicate"},
	)

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}

	first, ok := s.First()
	if !ok || first.ID != 7 {
		t.Fatalf("first = %+v (ok=%v), want id 7", first, ok)
	}

	d, _ := s.Get(7)
	if d.Name != "North" {
		t.Errorf("name = %q, want %q", d.Name, "North")
	}

	ids := s.IDs()
	if len(ids) != 2 || ids[0] != 7 || ids[1] != 2 {
		t.Errorf("ids = %v, want [7 2]", ids)
	}
}

func TestNilDepotSetIsEmpty(t *testing.T) {
	var s *DepotSet
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
	if s.Has(0) {
		t.Errorf("nil set should not contain depot 0")
	}
	if _, ok := s.First(); ok {
		t.Errorf("nil set should have no first depot")
	}
}

func TestIterationRecordDefaults(t *testing.T) {
	rec := IterationRecord{TotalDistance: 12.5}

	if got := rec.Sequence(); got != "-" {
		t.Errorf("sequence = %q, want %q", got, "-")
	}
	if got := rec.TravelTime(); got != 12.5 {
		t.Errorf("travel time = %v, want 12.5", got)
	}

	tt := 9.0
	rec.TotalTravelTime = &tt
	if got := rec.TravelTime(); got != 9.0 {
		t.Errorf("travel time = %v, want 9", got)
	}
}

func TestIterationRecordCloneDoesNotAlias(t *testing.T) {
	seq := "0-1-0"
	obj := 3.0
	rec := IterationRecord{RouteSequence: &seq, Objective: &obj, RoutesSnapshot: []string{"a"}}

	c := rec.Clone()
	*c.RouteSequence = "changed"
	*c.Objective = 99
	c.RoutesSnapshot[0] = "b"

	if seq != "0-1-0" || obj != 3.0 || rec.RoutesSnapshot[0] != "a" {
		t.Fatalf("clone mutated source: seq=%q obj=%v snap=%v", seq, obj, rec.RoutesSnapshot)
	}
}

func TestRouteFirstStopNode(t *testing.T) {
	id := 4
	r := RouteRecord{Stops: []Stop{{NodeID: &id}, {}}}
	got, ok := r.FirstStopNode()
	if !ok || got != 4 {
		t.Fatalf("first stop = %d (ok=%v), want 4", got, ok)
	}

	if _, ok := (RouteRecord{Stops: []Stop{{}}}).FirstStopNode(); ok {
		t.Errorf("stop without node id should report absent")
	}
}

func TestVehicleTableLookup(t *testing.T) {
	table := NewVehicleTable([]VehicleSpec{{ID: "A", FixedCost: 100, VariableCostPerKm: 2}})

	got, ok := table.Lookup("A")
	if !ok || got.FixedCost != 100 {
		t.Fatalf("Lookup(A) = %+v, %v; want FixedCost 100, true", got, ok)
	}

	got, ok = table.Lookup("missing")
	if ok {
		t.Fatalf("Lookup(missing) ok = true, want false")
	}
	if got != (VehicleSpec{}) {
		t.Errorf("Lookup(missing) = %+v, want zero spec", got)
	}
}
