// Package breaker guards the blob store read path with a circuit breaker
// and a hard per-call timeout, so serving routes return something within a
// bounded latency even when the backing store is degraded.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/drussmiller/sparta-media-go/internal/port"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

const (
	DefaultFailureThreshold = 3
	DefaultCooldown         = 30 * time.Second
	DefaultCallTimeout      = 800 * time.Millisecond
)

type Options struct {
	FailureThreshold int
	Cooldown         time.Duration
	CallTimeout      time.Duration
}

// Gateway wraps a StoreReader with breaker state. One instance is built per
// process and shared by reference between callers; all transitions happen
// under a single mutex. A "not found" reply is a healthy store answering, so
// it never counts as a failure.
type Gateway struct {
	inner       port.StoreReader
	threshold   int
	cooldown    time.Duration
	callTimeout time.Duration
	now         func() time.Time

	mu            sync.Mutex
	state         State
	failures      int
	lastFailure   time.Time
	probeInFlight bool
}

// compile-time check: *Gateway must satisfy port.StoreReader
var _ port.StoreReader = (*Gateway)(nil)

func New(inner port.StoreReader, opts Options) *Gateway {
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = DefaultFailureThreshold
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}
	return &Gateway{
		inner:       inner,
		threshold:   opts.FailureThreshold,
		cooldown:    opts.Cooldown,
		callTimeout: opts.CallTimeout,
		now:         time.Now,
	}
}

func (g *Gateway) ReadFile(ctx context.Context, fileKey string) ([]byte, error) {
	var data []byte
	err := g.do(ctx, func(cctx context.Context) error {
		var err error
		data, err = g.inner.ReadFile(cctx, fileKey)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (g *Gateway) FileExists(ctx context.Context, fileKey string) (bool, error) {
	var exists bool
	err := g.do(ctx, func(cctx context.Context) error {
		var err error
		exists, err = g.inner.FileExists(cctx, fileKey)
		return err
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// State reports the current breaker state.
func (g *Gateway) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gateway) do(ctx context.Context, fn func(context.Context) error) error {
	probe, err := g.allow()
	if err != nil {
		return err
	}

	cctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	callErr := fn(cctx)
	if callErr != nil && errors.Is(callErr, context.DeadlineExceeded) {
		callErr = fmt.Errorf("%w: call exceeded %s budget", port.ErrStoreUnavailable, g.callTimeout)
	}

	g.record(probe, callErr)
	return callErr
}

// allow decides whether the call may reach the store. It returns probe=true
// when the call is the single half-open probe.
func (g *Gateway) allow() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateClosed:
		return false, nil
	case StateOpen:
		if g.now().Sub(g.lastFailure) > g.cooldown {
			g.state = StateHalfOpen
			g.probeInFlight = true
			return true, nil
		}
		return false, fmt.Errorf("%w: circuit open", port.ErrStoreUnavailable)
	default: // StateHalfOpen
		if g.probeInFlight {
			return false, fmt.Errorf("%w: probe in flight", port.ErrStoreUnavailable)
		}
		g.probeInFlight = true
		return true, nil
	}
}

func (g *Gateway) record(probe bool, err error) {
	// The store answering "no such object" is a success as far as the
	// breaker is concerned.
	failed := err != nil && !errors.Is(err, port.ErrObjectNotFound)

	g.mu.Lock()
	defer g.mu.Unlock()

	if probe {
		g.probeInFlight = false
		if failed {
			g.state = StateOpen
			g.lastFailure = g.now()
		} else {
			g.state = StateClosed
			g.failures = 0
		}
		return
	}

	if failed {
		g.failures++
		if g.failures >= g.threshold {
			g.state = StateOpen
			g.lastFailure = g.now()
		}
		return
	}

	g.failures = 0
}
