package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
)

type CalendarRepository struct {
	mu     sync.RWMutex
	byDate map[string]calendar.Override
}

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{byDate: make(map[string]calendar.Override)}
}

func dateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

func (r *CalendarRepository) Upsert(_ context.Context, o calendar.Override) (calendar.Override, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := dateKey(o.Date)
	if existing, ok := r.byDate[key]; ok {
		o.ID = existing.ID
		o.CreatedAt = existing.CreatedAt
	} else {
		o.ID = uuid.NewString()
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	r.byDate[key] = o
	return o, nil
}

func (r *CalendarRepository) GetByDate(_ context.Context, date time.Time) (calendar.Override, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byDate[dateKey(date)]
	if !ok {
		return calendar.Override{}, calendar.ErrOverrideNotFound
	}
	return o, nil
}

func (r *CalendarRepository) ListBetween(_ context.Context, from, to time.Time) ([]calendar.Override, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []calendar.Override
	for _, o := range r.byDate {
		if !o.Date.Before(from) && o.Date.Before(to) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *CalendarRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, o := range r.byDate {
		if o.ID == id {
			delete(r.byDate, key)
			return nil
		}
	}
	return calendar.ErrOverrideNotFound
}
