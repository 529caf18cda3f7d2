// Package usage gates how many AI-enhanced responses a session may use
// per calendar day.
package usage

import (
	"context"
	"sync"
	"time"

	"servicebuddy/models"
)

// Limiter is the daily AI quota gate. Allow reports whether the session
// may make another AI call today; Record counts one; Status reports the
// session's position. The date scope is the server's local calendar day.
type Limiter interface {
	Allow(ctx context.Context, sessionID string) (bool, error)
	Record(ctx context.Context, sessionID string) error
	Status(ctx context.Context, sessionID string) (models.UsageInfo, error)
}

func dateKey(now time.Time) string {
	return now.Format("2006-01-02")
}

type usageRecord struct {
	count int
	date  string
}

// MemoryLimiter is a process-local limiter. It is a soft, non-adversarial
// gate: concurrent callers share one mutex, but entries for old session
// ids are never evicted, so it suits single-instance deployments only.
type MemoryLimiter struct {
	mu    sync.Mutex
	limit int
	usage map[string]usageRecord
	now   func() time.Time
}

func NewMemoryLimiter(limit int) *MemoryLimiter {
	return &MemoryLimiter{
		limit: limit,
		usage: make(map[string]usageRecord),
		now:   time.Now,
	}
}

// WithClock overrides the limiter's clock. Test hook.
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.now = now
	return l
}

func (l *MemoryLimiter) Allow(ctx context.Context, sessionID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.usage[sessionID]
	if !ok || rec.date != dateKey(l.now()) {
		return true, nil
	}
	return rec.count < l.limit, nil
}

func (l *MemoryLimiter) Record(ctx context.Context, sessionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	today := dateKey(l.now())
	rec, ok := l.usage[sessionID]
	if !ok || rec.date != today {
		l.usage[sessionID] = usageRecord{count: 1, date: today}
		return nil
	}
	rec.count++
	l.usage[sessionID] = rec
	return nil
}

func (l *MemoryLimiter) Status(ctx context.Context, sessionID string) (models.UsageInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	used := 0
	if rec, ok := l.usage[sessionID]; ok && rec.date == dateKey(l.now()) {
		used = rec.count
	}
	remaining := l.limit - used
	if remaining < 0 {
		remaining = 0
	}
	return models.UsageInfo{Used: used, Remaining: remaining, Limit: l.limit}, nil
}
