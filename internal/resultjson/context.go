package resultjson

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"route-summary-service/internal/domain"
)

// PointDoc is one depot or customer definition. ID is optional; depots without
// an id take their position in the list.
type PointDoc struct {
	ID   *int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

type PointsDoc struct {
	Depots    []PointDoc `json:"depots" yaml:"depots"`
	Customers []PointDoc `json:"customers" yaml:"customers"`
}

type VehicleDoc struct {
	ID                string  `json:"id" yaml:"id"`
	Name              string  `json:"name,omitempty" yaml:"name,omitempty"`
	FixedCost         float64 `json:"fixed_cost" yaml:"fixed_cost"`
	VariableCostPerKm float64 `json:"variable_cost_per_km" yaml:"variable_cost_per_km"`
}

// ContextDoc bundles point and vehicle definitions in one file.
type ContextDoc struct {
	Points   PointsDoc    `json:"points" yaml:"points"`
	Vehicles []VehicleDoc `json:"vehicles" yaml:"vehicles"`
}

// Context is the decoded, read-only summary context.
type Context struct {
	Points   domain.Points
	Vehicles []domain.VehicleSpec
}

// DecodeContext parses a context document. YAML is accepted, and so is JSON
// since it is a subset of YAML.
func DecodeContext(data []byte) (*Context, error) {
	if strings.TrimSpace(string(data)) == "" {
		return &Context{}, nil
	}

	var doc ContextDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode context: parse yaml: %w", err)
	}

	return &Context{
		Points:   doc.Points.ToDomain(),
		Vehicles: VehiclesToDomain(doc.Vehicles),
	}, nil
}

func (p PointsDoc) ToDomain() domain.Points {
	return domain.Points{
		Depots:    pointsToDomain(p.Depots),
		Customers: pointsToDomain(p.Customers),
	}
}

func pointsToDomain(docs []PointDoc) []domain.Point {
	out := make([]domain.Point, 0, len(docs))
	for i, d := range docs {
		id := i
		if d.ID != nil {
			id = *d.ID
		}
		out = append(out, domain.Point{ID: id, Name: d.Name, X: d.X, Y: d.Y})
	}
	return out
}

func VehiclesToDomain(docs []VehicleDoc) []domain.VehicleSpec {
	out := make([]domain.VehicleSpec, 0, len(docs))
	for _, v := range docs {
		out = append(out, domain.VehicleSpec{
			ID:                v.ID,
			Name:              v.Name,
			FixedCost:         v.FixedCost,
			VariableCostPerKm: v.VariableCostPerKm,
		})
	}
	return out
}
