// Package lazyfetch decides when a read must synchronize from upstream first.
//
// Each key moves Unpopulated -> Populating -> Populated. At most one populate
// runs per key; concurrent readers of the same key wait for that flight. A
// populate that succeeds but leaves the key empty settles it, so later reads
// do not refetch until the settle marker expires. A failed populate leaves
// the key Unpopulated and the next read tries again.
package lazyfetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// State of a key as seen by the coordinator
type State int

const (
	Unpopulated State = iota
	Populating
	Populated
)

func (s State) String() string {
	switch s {
	case Unpopulated:
		return "unpopulated"
	case Populating:
		return "populating"
	case Populated:
		return "populated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CountFunc reports how many local rows exist for a key
type CountFunc func(ctx context.Context) (int64, error)

// PopulateFunc synchronizes a key from upstream
type PopulateFunc func(ctx context.Context) error

// Config holds coordinator settings
type Config struct {
	// EmptyTTL is how long a settled-empty key stays settled. Zero keeps it forever.
	EmptyTTL time.Duration
	// SyncTimeout bounds a single populate call. Default: 60s
	SyncTimeout time.Duration
}

// Coordinator serializes populate calls per key
type Coordinator struct {
	group  singleflight.Group
	config Config
	now    func() time.Time

	mu       sync.Mutex
	settled  map[string]time.Time
	inflight map[string]int
}

// New creates a Coordinator
func New(cfg Config) *Coordinator {
	if cfg.SyncTimeout <= 0 {
		cfg.SyncTimeout = 60 * time.Second
	}
	return &Coordinator{
		config:   cfg,
		now:      time.Now,
		settled:  make(map[string]time.Time),
		inflight: make(map[string]int),
	}
}

// Ensure makes sure key has been populated before the caller reads it.
//
// The populate call runs detached from ctx cancellation, bounded by SyncTimeout,
// so a reader that gives up does not abort work other readers are waiting on.
// A caller whose ctx ends while waiting gets Populating and ctx.Err().
func (c *Coordinator) Ensure(ctx context.Context, key string, count CountFunc, populate PopulateFunc) (State, error) {
	if c.isSettled(key) {
		return Populated, nil
	}

	n, err := count(ctx)
	if err != nil {
		return Unpopulated, fmt.Errorf("count %s: %w", key, err)
	}
	if n > 0 {
		return Populated, nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		return nil, c.run(context.WithoutCancel(ctx), key, count, populate)
	})

	select {
	case <-ctx.Done():
		return Populating, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Unpopulated, res.Err
		}
		return Populated, nil
	}
}

func (c *Coordinator) run(ctx context.Context, key string, count CountFunc, populate PopulateFunc) error {
	c.setInflight(key, 1)
	defer c.setInflight(key, -1)

	ctx, cancel := context.WithTimeout(ctx, c.config.SyncTimeout)
	defer cancel()

	// Another flight may have finished between our count and acquiring this one
	if c.isSettled(key) {
		return nil
	}
	n, err := count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	logger := log.WithField("key", key)
	logger.Debug("populating key")
	start := c.now()

	if err := populate(ctx); err != nil {
		logger.WithError(err).Warn("populate failed, key stays unpopulated")
		return err
	}

	n, err = count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", key, err)
	}
	if n == 0 {
		c.markSettled(key)
		logger.Debug("upstream returned nothing, key settled empty")
	}

	logger.WithFields(log.Fields{
		"rows":     n,
		"duration": c.now().Sub(start).String(),
	}).Debug("key populated")

	return nil
}

// Forget drops the settled marker so the next empty read populates again
func (c *Coordinator) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.settled, key)
}

// State reports what the coordinator knows about key without touching the store.
// Keys that were populated with rows are not tracked and report Unpopulated.
func (c *Coordinator) State(key string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inflight[key] > 0 {
		return Populating
	}
	if c.settledLocked(key) {
		return Populated
	}
	return Unpopulated
}

func (c *Coordinator) isSettled(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settledLocked(key)
}

func (c *Coordinator) settledLocked(key string) bool {
	at, ok := c.settled[key]
	if !ok {
		return false
	}
	if c.config.EmptyTTL > 0 && c.now().Sub(at) >= c.config.EmptyTTL {
		delete(c.settled, key)
		return false
	}
	return true
}

func (c *Coordinator) markSettled(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settled[key] = c.now()
}

func (c *Coordinator) setInflight(key string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight[key] += delta
	if c.inflight[key] <= 0 {
		delete(c.inflight, key)
	}
}

// EpisodesKey is the coordinator key for a podcast's episode list
func EpisodesKey(podcastID uint) string {
	return fmt.Sprintf("episodes:%d", podcastID)
}

// CatalogSeedKey guards seeding an empty catalog with the default keyword
const CatalogSeedKey = "catalog:seed"
