package dto

import (
	"encoding/json"

	"route-summary-service/internal/format"
	"route-summary-service/internal/resultjson"
	"route-summary-service/internal/services"
)

// SummaryRequest carries a pipeline result plus optional context. Absent
// points or vehicles are loaded from the configured context store.
type SummaryRequest struct {
	Result   json.RawMessage          `json:"result"`
	Points   *resultjson.PointsDoc    `json:"points"`
	Vehicles *[]resultjson.VehicleDoc `json:"vehicles"`
}

type SummaryResponse struct {
	ResultID string `json:"result_id,omitempty"`
	format.View
	Totals *services.Totals `json:"totals,omitempty"`
}

type SaveResultResponse struct {
	ID   string `json:"id"`
	Mode string `json:"mode"`
}

func NewSummaryResponse(id string, r *services.Report, f *format.Formatter) SummaryResponse {
	res := SummaryResponse{ResultID: id, View: f.Render(r)}
	if r.Aggregate != nil {
		totals := r.Aggregate.Totals
		res.Totals = &totals
	}
	return res
}
