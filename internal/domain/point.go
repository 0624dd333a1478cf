package domain

// A depot or customer location from the input point definitions.
// X and Y are kept as given; the summary engine never interprets them.
type Point struct {
	ID   int
	Name string
	X    float64
	Y    float64
}

// Input point definitions shared by the optimizer and the summary.
type Points struct {
	Depots    []Point
	Customers []Point
}

// DepotSet builds the known-depot collection in definition order.
func (p Points) DepotSet() *DepotSet {
	s := NewDepotSet()
	for _, d := range p.Depots {
		s.Add(Depot{ID: d.ID, Name: d.Name})
	}
	return s
}
