// Package postgres implements lifecycle.Store on PostgreSQL through pgx.
//
// Every status change is a single conditional UPDATE keyed on the expected
// prior status (and version, for applications and employments). Zero rows
// affected means another writer got there first and is reported as
// lifecycle.Stale.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobmate/placement-service/internal/lifecycle"
)

// querier is the part of pgxpool.Pool and pgx.Tx the store uses.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is a lifecycle.Store backed by a pgx pool.
type Store struct {
	pool *pgxpool.Pool
	q    querier
}

var _ lifecycle.Store = (*Store)(nil)

// New returns a Store on pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, q: pool}
}

// InTx runs fn in a single database transaction. Nested calls join it.
func (s *Store) InTx(ctx context.Context, fn func(tx lifecycle.Store) error) error {
	if s.pool == nil {
		return fn(s)
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return lifecycle.TransientStore(err, "begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&Store{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return lifecycle.TransientStore(err, "commit")
	}
	return nil
}

// ─── Error mapping ───────────────────────────────────────────────────────────

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// readErr maps a single-row read failure.
func readErr(err error, entity, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return lifecycle.NotFound(entity, id)
	}
	return lifecycle.TransientStore(err, "get "+entity)
}

// ─── Query building ──────────────────────────────────────────────────────────

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

// add appends cond, whose single %d is replaced by the argument position.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

// after restricts the rows to those past c in (created_at, id) order.
func (w *where) after(c *lifecycle.Cursor) {
	if c == nil {
		return
	}
	w.args = append(w.args, c.CreatedAt, c.ID)
	w.conds = append(w.conds, fmt.Sprintf("(created_at, id) > ($%d, $%d)", len(w.args)-1, len(w.args)))
}

func (w *where) raw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func limitClause(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", n)
}

func stringsOf[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func errUnknownReminder(kind lifecycle.ReminderKind) error {
	return errors.Newf("unknown reminder kind %q", kind)
}
