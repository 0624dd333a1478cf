package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"route-summary-service/internal/api/dto"
	"route-summary-service/internal/format"
	"route-summary-service/internal/services"
)

type ResultHandler struct {
	Service   *services.SummaryService
	Formatter *format.Formatter
}

// Create stores a raw pipeline result snapshot.
func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "unreadable body")
		return
	}

	id, mode, err := h.Service.SaveResult(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.SaveResultResponse{ID: id, Mode: string(mode)})
}

// Summary renders the summary of a stored result.
func (h *ResultHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "result id is required")
		return
	}

	report, err := h.Service.SummarizeStored(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewSummaryResponse(id, report, h.Formatter))
}
