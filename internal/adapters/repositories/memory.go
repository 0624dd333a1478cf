package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/ports"
	"route-summary-service/internal/resultjson"
)

// In-memory ResultRepository used when no DATABASE_URL is configured.
type MemoryResultRepository struct {
	mu      sync.RWMutex
	results map[string]ports.StoredResult
	now     func() time.Time
}

func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{results: map[string]ports.StoredResult{}, now: time.Now}
}

func (m *MemoryResultRepository) SaveResult(ctx context.Context, mode domain.Mode, payload []byte) (string, error) {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[id] = ports.StoredResult{
		ID:        id,
		Mode:      mode,
		Payload:   append([]byte(nil), payload...),
		CreatedAt: m.now().UTC(),
	}
	return id, nil
}

func (m *MemoryResultRepository) GetResult(ctx context.Context, id string) (*ports.StoredResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.results[id]
	if !ok {
		return nil, fmt.Errorf("get result %q: %w", id, ports.ErrResultNotFound)
	}
	r.Payload = append([]byte(nil), r.Payload...)
	return &r, nil
}

// StaticContextRepository serves a fixed, decoded context document.
type StaticContextRepository struct {
	ctx resultjson.Context
}

func NewStaticContextRepository(c *resultjson.Context) *StaticContextRepository {
	if c == nil {
		c = &resultjson.Context{}
	}
	return &StaticContextRepository{ctx: *c}
}

func (s *StaticContextRepository) ListDepots(ctx context.Context) ([]domain.Point, error) {
	return append([]domain.Point(nil), s.ctx.Points.Depots...), nil
}

func (s *StaticContextRepository) ListVehicles(ctx context.Context) ([]domain.VehicleSpec, error) {
	return append([]domain.VehicleSpec(nil), s.ctx.Vehicles...), nil
}
