package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dm/ccm-go/internal/client"
	"github.com/dm/ccm-go/internal/model"
)

// DefaultInterval is the fixed poll cadence. There is no backoff: after a
// failed cycle the next attempt is simply the next tick.
const DefaultInterval = 10 * time.Minute

// Update is delivered to subscribers after every poll cycle. On success Err
// is nil and Snapshot is the freshly published state. On a fatal cycle Err
// carries the failure and Snapshot is the last-known-good state (nil if no
// cycle ever succeeded).
type Update struct {
	Snapshot *model.Snapshot
	Err      error
}

// Coordinator owns the refresh schedule and the current snapshot. It is the
// single writer: each successful cycle replaces the snapshot with one atomic
// pointer swap, so any number of readers can call Snapshot concurrently
// without locking and never observe a half-merged state.
type Coordinator struct {
	client   client.CraftyClient
	interval time.Duration
	log      zerolog.Logger

	current atomic.Pointer[model.Snapshot]

	mu      sync.Mutex // guards subs and lastErr
	subs    []chan Update
	lastErr error

	refreshCh chan struct{}
}

// NewCoordinator creates a Coordinator polling c every interval.
// A non-positive interval falls back to DefaultInterval.
func NewCoordinator(c client.CraftyClient, interval time.Duration, log zerolog.Logger) *Coordinator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Coordinator{
		client:    c,
		interval:  interval,
		log:       log,
		refreshCh: make(chan struct{}, 1),
	}
}

// Interval returns the fixed poll cadence.
func (co *Coordinator) Interval() time.Duration { return co.interval }

// Refresh runs one poll cycle synchronously. On success the new snapshot is
// published before Refresh returns; on a fatal build error the previous
// snapshot is retained and the error is both recorded and returned. The
// owner uses a direct call for the startup first-refresh; the run loop uses
// it for every scheduled tick.
//
// Refresh must not be called concurrently with itself; the run loop is the
// only caller after startup, which keeps polls from overlapping.
func (co *Coordinator) Refresh(ctx context.Context) error {
	snap, err := BuildSnapshot(ctx, co.client, co.log)
	if err != nil {
		co.mu.Lock()
		co.lastErr = err
		co.mu.Unlock()
		co.log.Error().Err(err).Msg("poll failed, keeping previous snapshot")
		co.publish(Update{Snapshot: co.current.Load(), Err: err})
		return err
	}

	co.current.Store(snap)
	co.mu.Lock()
	co.lastErr = nil
	co.mu.Unlock()
	co.log.Debug().
		Int("servers", len(snap.Servers)).
		Int("roles", len(snap.Roles)).
		Int("users", len(snap.Users)).
		Msg("snapshot published")
	co.publish(Update{Snapshot: snap})
	return nil
}

// Start launches the poll loop. It returns immediately; the loop stops when
// ctx is cancelled.
func (co *Coordinator) Start(ctx context.Context) {
	go co.run(ctx)
}

func (co *Coordinator) run(ctx context.Context) {
	ticker := time.NewTicker(co.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-co.refreshCh:
		}
		// The cycle runs inline in this goroutine: ticks that fire while a
		// cycle is in flight are dropped by the ticker, so polls never
		// overlap and the timer itself is never blocked.
		_ = co.Refresh(ctx)
	}
}

// Snapshot returns the last published snapshot, or nil before the first
// successful cycle. The returned value is immutable and may become stale
// the instant a new snapshot is published.
func (co *Coordinator) Snapshot() *model.Snapshot {
	return co.current.Load()
}

// LastError returns the error of the most recent cycle, or nil if it
// succeeded.
func (co *Coordinator) LastError() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.lastErr
}

// Subscribe registers a consumer for per-cycle updates. The channel is
// buffered; a consumer that falls behind misses intermediate updates rather
// than blocking publication.
func (co *Coordinator) Subscribe() <-chan Update {
	ch := make(chan Update, 8)
	co.mu.Lock()
	co.subs = append(co.subs, ch)
	co.mu.Unlock()
	return ch
}

// RequestRefresh asks the run loop for an immediate poll. Requests made
// while a cycle is in flight coalesce into a single follow-up cycle.
func (co *Coordinator) RequestRefresh() {
	select {
	case co.refreshCh <- struct{}{}:
	default:
	}
}

func (co *Coordinator) publish(u Update) {
	co.mu.Lock()
	defer co.mu.Unlock()
	for _, ch := range co.subs {
		select {
		case ch <- u:
		default:
			co.log.Warn().Msg("subscriber slow, dropping update")
		}
	}
}
