// Package sqlite implements the store contracts over an embedded SQLite
// engine (modernc.org/sqlite).
//
// The adapter translates the backend-agnostic sqlq parameter model into
// driver values, executes statements over a leased pooled connection, and
// decodes result rows into caller types by field/column mapping.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/emberforge/emberforge/store"
	"github.com/emberforge/emberforge/store/pool"
	"github.com/emberforge/emberforge/store/sqlq"
)

var tracer = otel.Tracer("github.com/emberforge/emberforge/store/sqlite")

// Config tunes a SQLite store.
type Config struct {
	// Path is the database file location.
	Path string
	// MaxConns bounds the connection pool. Zero selects the pool default.
	MaxConns int
	// TestOnCheckout probes pooled connections before reuse.
	TestOnCheckout bool
	// AcquireTimeout bounds the wait for a free connection. Zero waits on
	// the caller's context alone.
	AcquireTimeout time.Duration
}

// Store is a SQLite-backed store. It wraps a connection pool and holds no
// per-operation state, so one Store may serve many concurrent callers.
type Store struct {
	pool *pool.Pool[*Conn]
}

var (
	_ store.Store  = (*Store)(nil)
	_ store.Execer = (*Store)(nil)
)

// Open builds a store for the database file named by cfg.Path. Connections
// open lazily on first use.
func Open(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, wrapErr("open", KindConnection, errors.New("storage path is required"))
	}
	p := pool.New(NewManager(cfg.Path), pool.Config{
		MaxConns:       cfg.MaxConns,
		TestOnCheckout: cfg.TestOnCheckout,
		AcquireTimeout: cfg.AcquireTimeout,
	})
	return &Store{pool: p}, nil
}

// NewStore wraps an existing pool. The store takes ownership: Close closes
// the pool.
func NewStore(p *pool.Pool[*Conn]) *Store {
	return &Store{pool: p}
}

// Close releases all pooled connections.
func (s *Store) Close() error {
	return s.pool.Close()
}

// Exec runs a query expecting no result rows.
func (s *Store) Exec(ctx context.Context, q sqlq.Query) error {
	ctx, span := startSpan(ctx, "sqlite.exec")
	defer span.End()

	lease, err := s.pool.Get(ctx)
	if err != nil {
		return spanErr(span, wrapErr("exec", KindConnection, err))
	}
	defer lease.Release()

	if _, err := lease.Conn().DB().ExecContext(ctx, q.Text(), bindArgs(q.Params())...); err != nil {
		return spanErr(span, wrapErr("exec", KindExecution, err))
	}
	return nil
}

// Query executes q against the store and decodes every result row into T.
// Rows come back in the engine's natural order; only the query text itself
// imposes ordering. T follows the row mapping documented on the package
// scanner: struct fields map to columns by db tag or case-insensitive name,
// and non-struct types consume a single column.
func Query[T any](ctx context.Context, s *Store, q sqlq.Query) ([]T, error) {
	ctx, span := startSpan(ctx, "sqlite.query")
	defer span.End()

	lease, err := s.pool.Get(ctx)
	if err != nil {
		return nil, spanErr(span, wrapErr("query", KindConnection, err))
	}
	defer lease.Release()

	rows, err := lease.Conn().DB().QueryContext(ctx, q.Text(), bindArgs(q.Params())...)
	if err != nil {
		return nil, spanErr(span, wrapErr("query", KindExecution, err))
	}
	defer rows.Close()

	out, err := scanRows[T](rows)
	if err != nil {
		return nil, spanErr(span, err)
	}
	return out, nil
}

// bindArgs lowers a Params value into database/sql arguments: an ordered
// argument list for the positional shape, sql.Named values for the named
// shape.
func bindArgs(p sqlq.Params) []any {
	switch p.Shape() {
	case sqlq.ShapePositional:
		values := p.Values()
		args := make([]any, len(values))
		for i, v := range values {
			args[i] = nativeValue(v)
		}
		return args
	case sqlq.ShapeNamed:
		pairs := p.Pairs()
		args := make([]any, len(pairs))
		for i, pair := range pairs {
			args[i] = sql.Named(pair.Name, nativeValue(pair.Value))
		}
		return args
	default:
		return nil
	}
}

// nativeValue maps a Param onto the engine's value representation.
//
// Integers up to 64 bits become native integers. 128-bit and pointer-width
// integers exceed or may exceed what a SQLite integer column can promise, so
// they are stored as fixed little-endian blobs; decoding the blob with the
// same convention reproduces the value exactly. UUIDs cross as their raw 16
// bytes.
func nativeValue(p sqlq.Param) any {
	switch p.Kind() {
	case sqlq.KindNull:
		return nil
	case sqlq.KindUint8, sqlq.KindUint16, sqlq.KindUint32:
		return int64(p.Uint64())
	case sqlq.KindUint64:
		// Bit-reinterpreted: values above the signed range round-trip
		// by re-casting, not by numeric comparison in SQL.
		return int64(p.Uint64())
	case sqlq.KindInt8, sqlq.KindInt16, sqlq.KindInt32, sqlq.KindInt64:
		return p.Int64()
	case sqlq.KindUint, sqlq.KindInt:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], p.Uint64())
		return b[:]
	case sqlq.KindUint128:
		b := p.Uint128().Bytes()
		return b[:]
	case sqlq.KindInt128:
		b := p.Int128().Bytes()
		return b[:]
	case sqlq.KindFloat32, sqlq.KindFloat64:
		return p.Float64()
	case sqlq.KindText:
		return p.Text()
	case sqlq.KindBlob:
		return p.Blob()
	case sqlq.KindUUID:
		id := p.UUID()
		return id[:]
	default:
		return nil
	}
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("db.system", "sqlite"),
	))
}

func spanErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
