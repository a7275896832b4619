package storage

import (
	"context"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/sbilibin2017/gw-videotube/internal/logger"
)

var breakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "videotube_storage_breaker_state",
	Help: "Object store circuit breaker state (0 closed, 1 half-open, 2 open).",
}, []string{"name"})

// BreakerSettings tunes the circuit breaker around the remote store.
type BreakerSettings struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// MinRequests and FailureRatio decide when the breaker opens.
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerSettings opens after 60% failures over at least 5 calls
// and probes again after 30 seconds.
func DefaultBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:         name,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// BreakerStorage fails fast while the wrapped store keeps failing.
type BreakerStorage struct {
	next ObjectStore
	cb   *gobreaker.CircuitBreaker[string]
}

func NewBreakerStorage(next ObjectStore, s BreakerSettings) *BreakerStorage {
	breakerState.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= s.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("storage circuit breaker state change",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
			breakerState.WithLabelValues(name).Set(float64(to))
		},
	})

	return &BreakerStorage{next: next, cb: cb}
}

func (b *BreakerStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	return b.cb.Execute(func() (string, error) {
		return b.next.Save(ctx, key, r, size, contentType)
	})
}

func (b *BreakerStorage) Delete(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() (string, error) {
		return "", b.next.Delete(ctx, key)
	})
	return err
}

// State exposes the breaker state.
func (b *BreakerStorage) State() gobreaker.State {
	return b.cb.State()
}
