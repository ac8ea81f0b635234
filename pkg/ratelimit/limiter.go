package ratelimit

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for admission control.
var (
	admissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riot_rate_limit_admissions_total",
		Help: "Total admitted requests by path (immediate or queued)",
	}, []string{"path"})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "riot_rate_limit_queue_depth",
		Help: "Current number of requests waiting for quota",
	})

	admissionWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "riot_rate_limit_wait_seconds",
		Help:    "Time queued requests waited for admission",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	})
)

// Config holds the quota window configuration.
type Config struct {
	ShortLimit  int
	ShortWindow time.Duration
	LongLimit   int
	LongWindow  time.Duration
}

// DefaultConfig returns the development-key quota windows.
func DefaultConfig() Config {
	return Config{
		ShortLimit:  DefaultShortLimit,
		ShortWindow: DefaultShortWindow,
		LongLimit:   DefaultLongLimit,
		LongWindow:  DefaultLongWindow,
	}
}

// Limiter enforces both quota windows and serializes admission of outbound
// requests. Safe for concurrent use by any number of callers.
type Limiter struct {
	mu      sync.Mutex
	short   *window
	long    *window
	queue   waiterQueue
	seq     uint64
	serving bool
	logger  zerolog.Logger
}

// NewLimiter creates a limiter with the given window configuration.
func NewLimiter(cfg Config, logger zerolog.Logger) *Limiter {
	if cfg.ShortLimit <= 0 || cfg.LongLimit <= 0 {
		cfg = DefaultConfig()
	}
	l := &Limiter{
		short:  newWindow(cfg.ShortLimit, cfg.ShortWindow),
		long:   newWindow(cfg.LongLimit, cfg.LongWindow),
		logger: logger,
	}
	return l
}

// Acquire blocks until the caller is admitted or ctx is cancelled. If both
// windows have headroom and nothing is queued, it consumes one unit from each
// window and returns immediately. Otherwise the caller is queued with its
// priority and suspended until the service loop admits it. Higher priority
// values are admitted first; ties go to the earlier arrival.
func (l *Limiter) Acquire(ctx context.Context, priority int) error {
	l.mu.Lock()

	now := time.Now()
	l.short.tick(now)
	l.long.tick(now)

	// Immediate admission only when nobody is waiting, so queued requests
	// keep their deterministic priority/FIFO order.
	if len(l.queue) == 0 && l.short.headroom() && l.long.headroom() {
		l.short.consume()
		l.long.consume()
		l.mu.Unlock()
		admissionsTotal.WithLabelValues("immediate").Inc()
		return nil
	}

	w := &waiter{
		priority: priority,
		seq:      l.seq,
		admit:    make(chan struct{}),
	}
	l.seq++
	heap.Push(&l.queue, w)
	queueDepth.Set(float64(len(l.queue)))

	if !l.serving {
		l.serving = true
		go l.serve()
	}
	l.mu.Unlock()

	enqueued := time.Now()
	l.logger.Debug().
		Int("priority", priority).
		Uint64("seq", w.seq).
		Msg("Request queued for quota")

	select {
	case <-w.admit:
		admissionsTotal.WithLabelValues("queued").Inc()
		admissionWaitSeconds.Observe(time.Since(enqueued).Seconds())
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		if w.index >= 0 {
			heap.Remove(&l.queue, w.index)
			queueDepth.Set(float64(len(l.queue)))
		}
		l.mu.Unlock()
		return ctx.Err()
	}
}

// serve is the single queue-servicing loop. Exactly one serve goroutine runs
// at a time; it exits once the queue drains and is restarted by the next
// caller that has to queue.
func (l *Limiter) serve() {
	for {
		l.mu.Lock()

		now := time.Now()
		l.short.tick(now)
		l.long.tick(now)

		if len(l.queue) == 0 {
			l.serving = false
			l.mu.Unlock()
			return
		}

		if l.short.headroom() && l.long.headroom() {
			w := heap.Pop(&l.queue).(*waiter)
			l.short.consume()
			l.long.consume()
			queueDepth.Set(float64(len(l.queue)))
			close(w.admit)
			l.mu.Unlock()
			continue
		}

		// Both windows must have headroom: wait for the last reset among
		// the exhausted ones.
		var wait time.Duration
		if !l.short.headroom() {
			wait = l.short.untilReset(now)
		}
		if !l.long.headroom() {
			if d := l.long.untilReset(now); d > wait {
				wait = d
			}
		}
		l.mu.Unlock()

		l.logger.Debug().
			Dur("wait", wait).
			Msg("Quota exhausted, sleeping until window reset")
		timer := time.NewTimer(wait)
		<-timer.C
	}
}

// Snapshot returns the current quota usage and queue depth.
func (l *Limiter) Snapshot() Usage {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.short.tick(now)
	l.long.tick(now)

	return Usage{
		Short: WindowUsage{
			Used:    l.short.used,
			Limit:   l.short.limit,
			ResetIn: l.short.untilReset(now),
		},
		Long: WindowUsage{
			Used:    l.long.used,
			Limit:   l.long.limit,
			ResetIn: l.long.untilReset(now),
		},
		QueueDepth: len(l.queue),
	}
}
