// Package engine schedules probe rounds across the configured fleet and
// records the latest result per (host, service) pair. One round fans out a
// probe goroutine per pair and waits for all of them before the round counts
// as complete; results land in the store as each probe finishes, so readers
// see partial rounds. Probe failures are data (a Down result), never errors.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/lookout-dev/lookout/internal/config"
	"github.com/lookout-dev/lookout/internal/logger"
	"github.com/lookout-dev/lookout/internal/probe"
)

// Prober runs a single protocol check against one service.
// probe.Dispatcher is the production implementation.
type Prober interface {
	Check(ctx context.Context, host config.HostConfig, svc config.ServiceConfig) probe.Outcome
}

// Engine owns the monitoring loop. Start launches it; Refresh asks for an
// immediate round between ticks; Statuses exposes the store to readers.
type Engine struct {
	cfg      *config.Config
	prober   Prober
	store    *Store
	interval time.Duration
	log      logger.Logger

	refreshCh chan struct{}
	doneCh    chan struct{}

	roundMu sync.Mutex // serializes rounds: the loop and one-shot callers never overlap

	mu        sync.Mutex
	lastRound time.Time
}

// New creates an engine for the given configuration. A nil logger discards
// engine logs; pass a file logger in TUI mode so stderr stays clean.
func New(cfg *config.Config, prober Prober, log logger.Logger) *Engine {
	interval := cfg.Settings.RefreshInterval
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Engine{
		cfg:       cfg,
		prober:    prober,
		store:     NewStore(),
		interval:  interval,
		log:       log,
		refreshCh: make(chan struct{}, 1),
		doneCh:    make(chan struct{}),
	}
}

// Start launches the monitoring loop in a background goroutine. The first
// round runs immediately, then the loop repeats every refresh interval until
// ctx is cancelled. Ticks that fire while a round is still running are
// dropped, so a slow round is followed by at most one back-to-back round.
func (e *Engine) Start(ctx context.Context) {
	go e.run(ctx)
}

// Done is closed once the loop launched by Start has exited.
func (e *Engine) Done() <-chan struct{} {
	return e.doneCh
}

// Refresh asks the loop to run a round now instead of waiting for the next
// tick. Non-blocking; calls made while a refresh is already pending coalesce
// into a single round.
func (e *Engine) Refresh() {
	select {
	case e.refreshCh <- struct{}{}:
	default:
	}
}

// Statuses returns a snapshot of every recorded result, keyed by
// (host, service, port). The caller owns the returned map.
func (e *Engine) Statuses() map[Key]CheckResult {
	return e.store.Snapshot()
}

// LastRound reports when the most recent round completed. Zero before the
// first round finishes.
func (e *Engine) LastRound() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastRound
}

// Interval reports the configured refresh period.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.doneCh)

	e.log.Debug("monitor loop starting, interval %s", e.interval)
	e.RunRound(ctx)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.log.Debug("monitor loop stopped")
			return
		case <-ticker.C:
			e.RunRound(ctx)
		case <-e.refreshCh:
			e.RunRound(ctx)
		}
	}
}

// RunRound probes every configured (host, service) pair once and blocks
// until every probe has finished. Exported for one-shot callers that want a
// single round without the loop.
func (e *Engine) RunRound(ctx context.Context) {
	e.roundMu.Lock()
	defer e.roundMu.Unlock()

	started := time.Now()

	var wg sync.WaitGroup
	for _, host := range e.cfg.Hosts {
		for _, svc := range host.Services {
			wg.Add(1)
			go func(host config.HostConfig, svc config.ServiceConfig) {
				defer wg.Done()
				e.checkOne(ctx, host, svc)
			}(host, svc)
		}
	}
	wg.Wait()

	e.mu.Lock()
	e.lastRound = time.Now()
	e.mu.Unlock()

	e.log.Debug("round complete: %d services in %s", e.cfg.TotalServices(), time.Since(started).Round(time.Millisecond))
}

// checkOne runs a single probe and stores the result. A panic inside the
// prober is recovered and logged so one faulty task cannot take down the
// round; the pair keeps its previous entry in that case.
func (e *Engine) checkOne(ctx context.Context, host config.HostConfig, svc config.ServiceConfig) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("probe task %s:%s:%d panicked: %v", host.Name, svc.Name, svc.Port, r)
		}
	}()

	probeStart := time.Now()
	outcome := e.prober.Check(ctx, host, svc)
	elapsed := time.Since(probeStart)

	// Elapsed time is recorded for every outcome: on a Down result it is
	// the time to failure, which tells a refusal apart from a probe that
	// ran out its full timeout.
	result := CheckResult{
		HostName:     host.Name,
		ServiceName:  svc.Name,
		Address:      host.Address,
		Port:         svc.Port,
		Protocol:     svc.Protocol,
		Status:       StatusDown,
		LastCheck:    time.Now().UTC(),
		ResponseTime: elapsed,
		ErrorMessage: outcome.Message,
	}
	if outcome.Up {
		result.Status = StatusUp
	}
	e.store.Put(result)
}
