package domain

// Cost parameters of one vehicle type.
type VehicleSpec struct {
	ID                string
	Name              string
	FixedCost         float64
	VariableCostPerKm float64
}

// Read-only lookup of vehicle specs by type id.
type VehicleTable map[string]VehicleSpec

func NewVehicleTable(specs []VehicleSpec) VehicleTable {
	t := make(VehicleTable, len(specs))
	for _, v := range specs {
		t[v.ID] = v
	}
	return t
}

// Lookup returns the spec for a vehicle type. ok is false for unknown types;
// the zero spec returned then carries no cost.
func (t VehicleTable) Lookup(id string) (VehicleSpec, bool) {
	v, ok := t[id]
	return v, ok
}
