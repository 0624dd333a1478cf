// Package resultjson decodes optimization pipeline results and context
// documents into the domain model.
package resultjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"route-summary-service/internal/domain"
)

type wireResult struct {
	Mode          lenient[string]        `json:"mode"`
	ACSData       lenient[wirePhase]     `json:"acs_data"`
	RVNDData      lenient[wirePhase]     `json:"rvnd_data"`
	IterationLogs lenientList[wireLog]   `json:"iteration_logs"`
	Routes        lenientList[wireRoute] `json:"routes"`
	Costs         lenient[wireCosts]     `json:"costs"`
	Dataset       lenient[wireDataset]   `json:"dataset"`
}

type wirePhase struct {
	IterationLogs lenientList[wireLog] `json:"iteration_logs"`
}

type wireLog struct {
	Phase           lenient[string]              `json:"phase"`
	ClusterID       optInt                       `json:"cluster_id"`
	VehicleType     flexString                   `json:"vehicle_type"`
	RouteSequence   flexSequence                 `json:"route_sequence"`
	TotalDistance   optFloat                     `json:"total_distance"`
	TotalTravelTime optFloat                     `json:"total_travel_time"`
	Objective       optFloat                     `json:"objective"`
	RoutesSnapshot  lenientList[json.RawMessage] `json:"routes_snapshot"`
}

// wireStop never fails; a stop that is not an object keeps its position
// with an unknown node id.
type wireStop struct {
	NodeID optInt
}

func (s *wireStop) UnmarshalJSON(b []byte) error {
	*s = wireStop{}
	var v struct {
		NodeID optInt `json:"node_id"`
	}
	if err := json.Unmarshal(b, &v); err == nil {
		s.NodeID = v.NodeID
	}
	return nil
}

type wireRoute struct {
	ClusterID     optInt                       `json:"cluster_id"`
	DepotID       optInt                       `json:"depot_id"`
	Sequence      lenientList[json.RawMessage] `json:"sequence"`
	Stops         lenientList[wireStop]        `json:"stops"`
	TotalDistance optFloat                     `json:"total_distance"`
	VehicleType   flexString                   `json:"vehicle_type"`
	Objective     optFloat                     `json:"objective"`
}

type wireCosts struct {
	TotalFixedCost    optFloat `json:"total_fixed_cost"`
	TotalVariableCost optFloat `json:"total_variable_cost"`
	TotalCost         optFloat `json:"total_cost"`
}

type wireDepot struct {
	ID   optInt     `json:"id"`
	Name flexString `json:"name"`
}

type wireDataset struct {
	Depot lenient[wireDepot] `json:"depot"`
}

var (
	ErrEmptyDocument     = errors.New("empty result document")
	ErrMalformedDocument = errors.New("malformed result document")
)

// Decode parses a pipeline result in either the standard or the academic
// replay shape. Optional fields that are missing or have the wrong shape are
// left unset; only a document that is not a JSON object is rejected.
func Decode(data []byte) (*domain.Result, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil, fmt.Errorf("decode result: %w", ErrEmptyDocument)
	}

	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode result: %w: %w", ErrMalformedDocument, err)
	}

	res := &domain.Result{Mode: domain.ModeStandard}
	if w.Mode.v == string(domain.ModeAcademicReplay) {
		res.Mode = domain.ModeAcademicReplay
	}

	res.ACSData = phaseToDomain(w.ACSData)
	res.RVNDData = phaseToDomain(w.RVNDData)
	if w.IterationLogs.set {
		res.IterationLogs = logsToDomain(w.IterationLogs.items)
	}

	res.Routes = make([]domain.RouteRecord, 0, len(w.Routes.items))
	for _, r := range w.Routes.items {
		res.Routes = append(res.Routes, r.toDomain())
	}

	if c := w.Costs; c.set {
		res.Costs = &domain.CostTotals{
			TotalFixedCost:    c.v.TotalFixedCost.orZero(),
			TotalVariableCost: c.v.TotalVariableCost.orZero(),
			TotalCost:         c.v.TotalCost.orZero(),
		}
	}

	if w.Dataset.set {
		res.Dataset = &domain.Dataset{}
		if d := w.Dataset.v.Depot; d.set {
			res.Dataset.Depot = &domain.Depot{ID: d.v.ID.v, Name: string(d.v.Name)}
		}
	}

	return res, nil
}

// A phase collection only counts as present when it carries iteration_logs.
func phaseToDomain(p lenient[wirePhase]) *domain.PhaseData {
	if !p.set || !p.v.IterationLogs.set {
		return nil
	}
	return &domain.PhaseData{IterationLogs: logsToDomain(p.v.IterationLogs.items)}
}

func logsToDomain(logs []wireLog) []domain.IterationRecord {
	out := make([]domain.IterationRecord, 0, len(logs))
	for _, l := range logs {
		rec := domain.IterationRecord{
			Phase:           l.Phase.v,
			ClusterID:       l.ClusterID.ptr(),
			VehicleType:     string(l.VehicleType),
			RouteSequence:   l.RouteSequence.ptr(),
			TotalDistance:   l.TotalDistance.orZero(),
			TotalTravelTime: l.TotalTravelTime.ptr(),
			Objective:       l.Objective.ptr(),
		}
		for _, snap := range l.RoutesSnapshot.items {
			rec.RoutesSnapshot = append(rec.RoutesSnapshot, compact(snap))
		}
		out = append(out, rec)
	}
	return out
}

func (r wireRoute) toDomain() domain.RouteRecord {
	out := domain.RouteRecord{
		ClusterID:     r.ClusterID.ptr(),
		DepotID:       r.DepotID.ptr(),
		Sequence:      make([]string, 0, len(r.Sequence.items)),
		Stops:         make([]domain.Stop, 0, len(r.Stops.items)),
		TotalDistance: r.TotalDistance.orZero(),
		VehicleType:   string(r.VehicleType),
		Objective:     r.Objective.ptr(),
	}
	for _, tok := range r.Sequence.items {
		out.Sequence = append(out.Sequence, scalarText(tok))
	}
	for _, s := range r.Stops.items {
		out.Stops = append(out.Stops, domain.Stop{NodeID: s.NodeID.ptr()})
	}
	return out
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
