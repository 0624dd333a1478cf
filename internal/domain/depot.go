package domain

// A depot known to the summary, identified in the same key space as cluster ids.
type Depot struct {
	ID   int
	Name string
}

// Ordered, id-unique collection of depots.
// Insertion order is significant: it decides the fallback depot.
type DepotSet struct {
	order []int
	byID  map[int]Depot
}

func NewDepotSet(depots ...Depot) *DepotSet {
	s := &DepotSet{byID: make(map[int]Depot, len(depots))}
	for _, d := range depots {
		s.Add(d)
	}
	return s
}

// Add a depot. A repeated id keeps its original position and first name.
func (s *DepotSet) Add(d Depot) {
	if s.byID == nil {
		s.byID = map[int]Depot{}
	}
	if _, ok := s.byID[d.ID]; ok {
		return
	}
	s.byID[d.ID] = d
	s.order = append(s.order, d.ID)
}

func (s *DepotSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

func (s *DepotSet) Has(id int) bool {
	if s == nil {
		return false
	}
	_, ok := s.byID[id]
	return ok
}

func (s *DepotSet) Get(id int) (Depot, bool) {
	if s == nil {
		return Depot{}, false
	}
	d, ok := s.byID[id]
	return d, ok
}

// First returns the first depot in insertion order.
func (s *DepotSet) First() (Depot, bool) {
	if s.Len() == 0 {
		return Depot{}, false
	}
	return s.byID[s.order[0]], true
}

// IDs returns depot ids in insertion order.
func (s *DepotSet) IDs() []int {
	if s == nil {
		return nil
	}
	return append([]int(nil), s.order...)
}

// Per-depot running aggregate. One is created per known depot and folded into
// as routes are attributed to it. Customers keeps duplicates: a node served by
// two routes counts twice.
//
// TotalCost is stored, not derived: academic replay results ship
// their own total, which need not equal fixed + variable.
type DepotAccumulator struct {
	DepotID      int     `json:"depot_id"`
	Name         string  `json:"name"`
	Distance     float64 `json:"distance"`
	Customers    []int   `json:"customers"`
	FixedCost    float64 `json:"fixed_cost"`
	VariableCost float64 `json:"variable_cost"`
	TotalCost    float64 `json:"total_cost"`
	Routes       int     `json:"routes"`
}
