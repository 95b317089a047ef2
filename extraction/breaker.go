package extraction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerGenerator wraps a Generator with a circuit breaker so a flapping
// upstream fails fast instead of eating the full timeout on every request.
// It never retries; an open breaker surfaces as ErrUpstreamUnavailable.
type BreakerGenerator struct {
	gen Generator
	cb  *gobreaker.CircuitBreaker
}

// NewBreakerGenerator wraps gen with a circuit breaker.
func NewBreakerGenerator(gen Generator) *BreakerGenerator {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "extraction-upstream",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})
	return &BreakerGenerator{gen: gen, cb: cb}
}

// Generate runs the wrapped generator through the breaker.
func (b *BreakerGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	out, err := b.cb.Execute(func() (any, error) {
		return b.gen.Generate(ctx, system, user)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		return "", err
	}
	text, _ := out.(string)
	return text, nil
}
