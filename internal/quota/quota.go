// Package quota limits outbound model calls per minute and per day.
// Counters live in memory and reset when the process restarts.
package quota

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
)

// ErrExhausted is returned once the daily limit has been used up.
var ErrExhausted = errors.New("daily request quota exhausted")

type Limiter struct {
	mu sync.Mutex

	limiter *rate.Limiter

	dailyLimit int
	usedToday  int
	dayKey     string

	now func() time.Time
}

// New builds a Limiter. Zero values disable the matching limit.
func New(cfg config.QuotaConfig) *Limiter {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	daily := cfg.RequestsPerDay
	if daily < 0 {
		daily = 0
	}

	return &Limiter{
		limiter:    rate.NewLimiter(limit, 1),
		dailyLimit: daily,
		now:        time.Now,
	}
}

// Unlimited returns a Limiter that never blocks.
func Unlimited() *Limiter {
	return New(config.QuotaConfig{})
}

// Reserve takes one request from today's budget and waits for the per-minute
// limiter. The daily slot is returned if ctx ends while waiting.
func (l *Limiter) Reserve(ctx context.Context) error {
	if err := l.takeDaily(); err != nil {
		return err
	}

	if err := l.limiter.Wait(ctx); err != nil {
		l.refundDaily()
		return err
	}
	return nil
}

// Remaining reports how many calls are left today, or -1 when unlimited.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dailyLimit == 0 {
		return -1
	}
	l.rollDay()
	return l.dailyLimit - l.usedToday
}

func (l *Limiter) takeDaily() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollDay()
	if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
		return ErrExhausted
	}
	l.usedToday++
	return nil
}

func (l *Limiter) refundDaily() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.usedToday > 0 {
		l.usedToday--
	}
}

// rollDay resets the counter on a new UTC day. Callers hold mu.
func (l *Limiter) rollDay() {
	key := l.now().UTC().Format("2006-01-02")
	if l.dayKey != key {
		l.dayKey = key
		l.usedToday = 0
	}
}
