package services

import "route-summary-service/internal/domain"

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func strp(v string) *string { return &v }

func stops(ids ...int) []domain.Stop {
	out := make([]domain.Stop, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Stop{NodeID: intp(id)})
	}
	return out
}
