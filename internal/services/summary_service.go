package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/platform/metrics"
	"route-summary-service/internal/platform/obs"
	"route-summary-service/internal/ports"
	"route-summary-service/internal/resultjson"
)

// SummaryService runs the engine against stored results and the shared
// context tables. Cache is optional.
type SummaryService struct {
	Results  ports.ResultRepository
	Context  ports.ContextRepository
	Cache    ports.SummaryCache
	CacheTTL time.Duration
}

// ContextOverride carries context supplied with a request. Nil fields are
// loaded from the ContextRepository.
type ContextOverride struct {
	Points   *domain.Points
	Vehicles []domain.VehicleSpec
}

// SaveResult validates and stores a raw pipeline result.
func (s *SummaryService) SaveResult(ctx context.Context, payload []byte) (_ string, _ domain.Mode, err error) {
	defer obs.Time(ctx, "summary.SaveResult")(&err)

	res, err := resultjson.Decode(payload)
	if err != nil {
		return "", "", fmt.Errorf("save result: %w", err)
	}

	id, err := s.Results.SaveResult(ctx, res.Mode, payload)
	if err != nil {
		return "", "", fmt.Errorf("save result: %w", err)
	}
	return id, res.Mode, nil
}

// SummarizeStored summarizes a stored result. Reports are cached per id and
// per fingerprint of the context tables, so reseeded depots or vehicle costs
// are never served from an older entry. Cache failures are logged and never
// fail the request.
func (s *SummaryService) SummarizeStored(ctx context.Context, id string) (_ *Report, err error) {
	defer obs.Time(ctx, "summary.SummarizeStored")(&err)

	tables, err := s.loadContext(ctx, ContextOverride{})
	if err != nil {
		return nil, fmt.Errorf("summarize stored %q: %w", id, err)
	}

	key := summaryKey(id, tables)
	if s.Cache != nil {
		if b, ok, cerr := s.Cache.Get(ctx, key); cerr != nil {
			metrics.CacheLookups.WithLabelValues("error").Inc()
			log.Printf("summary cache get failed: key=%s err=%v", key, cerr)
		} else if ok {
			var cached Report
			if jerr := json.Unmarshal(b, &cached); jerr == nil {
				metrics.CacheLookups.WithLabelValues("hit").Inc()
				return &cached, nil
			}
			log.Printf("summary cache entry unreadable: key=%s", key)
		} else {
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
	}

	stored, err := s.Results.GetResult(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("summarize stored %q: %w", id, err)
	}

	res, err := resultjson.Decode(stored.Payload)
	if err != nil {
		return nil, fmt.Errorf("summarize stored %q: %w", id, err)
	}

	report, err := s.Summarize(ctx, res, tables)
	if err != nil {
		return nil, fmt.Errorf("summarize stored %q: %w", id, err)
	}

	if s.Cache != nil {
		if b, jerr := json.Marshal(report); jerr == nil {
			if cerr := s.Cache.Put(ctx, key, b, s.CacheTTL); cerr != nil {
				log.Printf("summary cache put failed: key=%s err=%v", key, cerr)
			}
		}
	}

	return report, nil
}

// Summarize runs the engine on a decoded result, loading whatever context
// the request did not supply. Academic replay results need no context.
func (s *SummaryService) Summarize(ctx context.Context, res *domain.Result, override ContextOverride) (_ *Report, err error) {
	defer obs.Time(ctx, "summary.Summarize")(&err)

	in := SummaryInput{Result: res}
	if res == nil || res.IsAcademic() {
		return observe(Summarize(in))
	}

	tables, err := s.loadContext(ctx, override)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	in.Points = *tables.Points
	in.Vehicles = domain.NewVehicleTable(tables.Vehicles)

	return observe(Summarize(in))
}

// loadContext fills the parts of override that are nil from the
// ContextRepository. Both fields of the result are non-nil.
func (s *SummaryService) loadContext(ctx context.Context, override ContextOverride) (ContextOverride, error) {
	out := override
	if out.Points == nil {
		points := domain.Points{}
		if s.Context != nil {
			depots, err := s.Context.ListDepots(ctx)
			if err != nil {
				return ContextOverride{}, fmt.Errorf("list depots: %w", err)
			}
			points.Depots = depots
		}
		out.Points = &points
	}

	if out.Vehicles == nil {
		out.Vehicles = []domain.VehicleSpec{}
		if s.Context != nil {
			vehicles, err := s.Context.ListVehicles(ctx)
			if err != nil {
				return ContextOverride{}, fmt.Errorf("list vehicles: %w", err)
			}
			if vehicles != nil {
				out.Vehicles = vehicles
			}
		}
	}
	return out, nil
}

// summaryKey is "summary:<id>:<fingerprint>", the fingerprint hashing the
// depot and vehicle tables in listing order.
func summaryKey(id string, tables ContextOverride) string {
	h := xxhash.New()
	for _, d := range tables.Points.Depots {
		fmt.Fprintf(h, "d|%d|%q|%g|%g\n", d.ID, d.Name, d.X, d.Y)
	}
	for _, v := range tables.Vehicles {
		fmt.Fprintf(h, "v|%q|%q|%g|%g\n", v.ID, v.Name, v.FixedCost, v.VariableCostPerKm)
	}
	return fmt.Sprintf("summary:%s:%016x", id, h.Sum64())
}

func observe(r *Report, err error) (*Report, error) {
	if err != nil {
		metrics.Summaries.WithLabelValues(string(domain.ModeStandard), "error").Inc()
		return nil, err
	}

	mode := string(r.Mode)
	if mode == "" {
		mode = "none"
	}
	metrics.Summaries.WithLabelValues(mode, r.Status).Inc()

	if r.Aggregate != nil {
		for rule, n := range r.Aggregate.Attributions {
			metrics.DepotAttributions.WithLabelValues(string(rule)).Add(float64(n))
		}
		metrics.SummaryWarnings.Add(float64(len(r.Aggregate.Warnings)))
	}
	return r, nil
}

// IsNotFound reports whether err means the requested result does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ports.ErrResultNotFound)
}
