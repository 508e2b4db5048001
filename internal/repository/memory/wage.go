package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashaile/humetix-backend-go/internal/domain/wage"
)

type WageConfigRepository struct {
	mu    sync.RWMutex
	items map[string]wage.Config
}

func NewWageConfigRepository() *WageConfigRepository {
	return &WageConfigRepository{items: make(map[string]wage.Config)}
}

func layerKey(scope wage.Scope, targetID *string) string {
	if targetID == nil {
		return string(scope)
	}
	return string(scope) + "/" + *targetID
}

func (r *WageConfigRepository) GetByScopeTarget(_ context.Context, scope wage.Scope, targetID *string) (wage.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.items[layerKey(scope, targetID)]
	if !ok {
		return wage.Config{}, wage.ErrConfigNotFound
	}
	return cfg, nil
}

func (r *WageConfigRepository) Upsert(_ context.Context, cfg wage.Config) (wage.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := layerKey(cfg.Scope, cfg.TargetID)
	if existing, ok := r.items[key]; ok {
		cfg.ID = existing.ID
		cfg.CreatedAt = existing.CreatedAt
	} else {
		cfg.ID = uuid.NewString()
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now
	r.items[key] = cfg
	return cfg, nil
}

func (r *WageConfigRepository) ListByScope(_ context.Context, scope wage.Scope) ([]wage.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []wage.Config
	for _, cfg := range r.items {
		if cfg.Scope == scope {
			out = append(out, cfg)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := "", ""
		if out[i].TargetID != nil {
			ti = *out[i].TargetID
		}
		if out[j].TargetID != nil {
			tj = *out[j].TargetID
		}
		return ti < tj
	})
	return out, nil
}

func (r *WageConfigRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, cfg := range r.items {
		if cfg.ID == id {
			delete(r.items, key)
			return nil
		}
	}
	return wage.ErrConfigNotFound
}
