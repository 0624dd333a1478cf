package services

import "route-summary-service/internal/domain"

// Construction-phase (ACS) and local-search-phase (RVND) records of one result.
type IterationLogs struct {
	ACS  []domain.IterationRecord
	RVND []domain.IterationRecord
}

// Empty reports the informational "no iteration data" state.
func (l IterationLogs) Empty() bool {
	return len(l.ACS) == 0 && len(l.RVND) == 0
}

// NormalizeLogs extracts ACS and RVND iteration records from either result shape.
//
// A nested phase collection (standard pipeline) is used verbatim. Otherwise the
// flat log stream (academic replay) is filtered by its summary phase tag.
// Missing logs yield empty sequences, never an error. The returned records are
// copies; the result is not modified.
func NormalizeLogs(result *domain.Result) IterationLogs {
	if result == nil {
		return IterationLogs{}
	}

	return IterationLogs{
		ACS:  phaseLogs(result.ACSData, result.IterationLogs, domain.PhaseACSSummary),
		RVND: phaseLogs(result.RVNDData, result.IterationLogs, domain.PhaseRVNDSummary),
	}
}

func phaseLogs(nested *domain.PhaseData, flat []domain.IterationRecord, tag string) []domain.IterationRecord {
	if nested != nil {
		out := make([]domain.IterationRecord, 0, len(nested.IterationLogs))
		for _, rec := range nested.IterationLogs {
			out = append(out, rec.Clone())
		}
		return out
	}

	out := []domain.IterationRecord{}
	for _, rec := range flat {
		if rec.Phase == tag {
			out = append(out, rec.Clone())
		}
	}
	return out
}
