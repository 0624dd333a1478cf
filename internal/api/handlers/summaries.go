package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"route-summary-service/internal/api/dto"
	"route-summary-service/internal/format"
	"route-summary-service/internal/resultjson"
	"route-summary-service/internal/services"
)

const maxBodyBytes = 8 << 20

type SummaryHandler struct {
	Service   *services.SummaryService
	Formatter *format.Formatter
}

// Summarize runs the engine on a result posted inline.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SummaryRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	var override services.ContextOverride
	if req.Points != nil {
		points := req.Points.ToDomain()
		override.Points = &points
	}
	if req.Vehicles != nil {
		override.Vehicles = resultjson.VehiclesToDomain(*req.Vehicles)
	}

	// A missing result is declined by the engine, not rejected.
	var report *services.Report
	var err error
	if len(req.Result) == 0 || string(req.Result) == "null" {
		report, err = h.Service.Summarize(r.Context(), nil, override)
	} else {
		res, derr := resultjson.Decode(req.Result)
		if derr != nil {
			writeError(w, r, http.StatusBadRequest, "invalid result document")
			return
		}
		report, err = h.Service.Summarize(r.Context(), res, override)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewSummaryResponse("", report, h.Formatter))
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case services.IsNotFound(err):
		writeError(w, r, http.StatusNotFound, "result not found")
	case errors.Is(err, services.ErrNoDepots):
		writeError(w, r, http.StatusUnprocessableEntity, "no depots known for the result's routes")
	case errors.Is(err, resultjson.ErrEmptyDocument):
		writeError(w, r, http.StatusBadRequest, "empty result document")
	case errors.Is(err, resultjson.ErrMalformedDocument):
		writeError(w, r, http.StatusBadRequest, "invalid result document")
	default:
		logf(r, "summary failed: err=%v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
