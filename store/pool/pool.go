// Package pool provides a bounded, health-checked connection pool.
//
// A Pool owns the idle connections for one backend and hands out exclusive
// leases. At most Config.MaxConns connections exist at once; additional
// callers suspend in Get until a lease is returned or their context is
// cancelled. Connections are never shared: while leased, a connection is
// owned by exactly one in-flight operation.
package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrClosed is returned by Get after the pool has been closed.
var ErrClosed = errors.New("pool: closed")

// DefaultMaxConns bounds the pool when Config.MaxConns is unset.
const DefaultMaxConns = 4

// Manager creates and inspects connections on behalf of a Pool.
type Manager[C any] interface {
	// Connect opens one new connection to the backend.
	Connect(ctx context.Context) (C, error)

	// IsValid probes a candidate connection with a trivial round trip.
	// The pool calls it on checkout when Config.TestOnCheckout is set and
	// replaces the connection if the probe fails.
	IsValid(ctx context.Context, conn C) error

	// HasBroken is a cheap, non-blocking check consulted when a lease is
	// released; a true result discards the connection instead of
	// returning it to the idle set.
	HasBroken(conn C) bool

	// Close tears down a connection that will not be reused.
	Close(conn C) error
}

// Config tunes pool behavior.
type Config struct {
	// MaxConns bounds concurrently open connections. Zero or negative
	// selects DefaultMaxConns.
	MaxConns int

	// TestOnCheckout enables the IsValid probe before a pooled connection
	// is handed out. Fresh connections are not probed.
	TestOnCheckout bool

	// AcquireTimeout bounds the wait for a free connection. Zero waits
	// until the caller's context is done.
	AcquireTimeout time.Duration
}

// Pool is a bounded set of reusable connections. Safe for concurrent use.
type Pool[C any] struct {
	mgr Manager[C]
	cfg Config
	sem *semaphore.Weighted

	mu     sync.Mutex
	idle   []C
	closed bool
}

// New builds a pool over the manager. No connections are opened until the
// first Get.
func New[C any](mgr Manager[C], cfg Config) *Pool[C] {
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = DefaultMaxConns
	}
	return &Pool[C]{
		mgr: mgr,
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(cfg.MaxConns)),
	}
}

// Get leases a connection, suspending until capacity is available. Idle
// connections that fail the optional checkout probe are closed and replaced
// transparently. The caller must call Release or Discard on the lease.
func (p *Pool[C]) Get(ctx context.Context) (*Lease[C], error) {
	if p.cfg.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.AcquireTimeout)
		defer cancel()
	}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	for {
		conn, ok, err := p.popIdle()
		if err != nil {
			p.sem.Release(1)
			return nil, err
		}
		if !ok {
			break
		}
		if !p.cfg.TestOnCheckout {
			return &Lease[C]{pool: p, conn: conn}, nil
		}
		if err := p.mgr.IsValid(ctx, conn); err == nil {
			return &Lease[C]{pool: p, conn: conn}, nil
		}
		// Stale connection: drop it and try the next idle one.
		_ = p.mgr.Close(conn)
	}

	conn, err := p.mgr.Connect(ctx)
	if err != nil {
		p.sem.Release(1)
		return nil, fmt.Errorf("open connection: %w", err)
	}
	return &Lease[C]{pool: p, conn: conn}, nil
}

// Close tears down all idle connections and rejects further leases.
// Outstanding leases discard their connections on release.
func (p *Pool[C]) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	idle := p.idle
	p.idle = nil
	p.mu.Unlock()

	var firstErr error
	for _, conn := range idle {
		if err := p.mgr.Close(conn); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *Pool[C]) popIdle() (conn C, ok bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return conn, false, ErrClosed
	}
	n := len(p.idle)
	if n == 0 {
		return conn, false, nil
	}
	conn = p.idle[n-1]
	p.idle = p.idle[:n-1]
	return conn, true, nil
}

func (p *Pool[C]) release(conn C, broken bool) {
	p.mu.Lock()
	closed := p.closed
	if !closed && !broken {
		p.idle = append(p.idle, conn)
	}
	p.mu.Unlock()

	if closed || broken {
		_ = p.mgr.Close(conn)
	}
	p.sem.Release(1)
}

// Lease is temporary exclusive ownership of one pooled connection.
// A Lease is not safe for concurrent use.
type Lease[C any] struct {
	pool *Pool[C]
	conn C
	done bool
}

// Conn returns the leased connection. The connection must not be retained
// past Release or Discard.
func (l *Lease[C]) Conn() C {
	return l.conn
}

// Release returns the connection to the pool, or closes it when the
// manager's HasBroken check reports breakage. Release is idempotent.
func (l *Lease[C]) Release() {
	if l.done {
		return
	}
	l.done = true
	l.pool.release(l.conn, l.pool.mgr.HasBroken(l.conn))
}

// Discard closes the connection instead of pooling it, freeing its capacity
// slot. Use it when an operation leaves the connection in an unknown state.
func (l *Lease[C]) Discard() {
	if l.done {
		return
	}
	l.done = true
	l.pool.release(l.conn, true)
}
