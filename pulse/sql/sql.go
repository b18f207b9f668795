// Package sql adapts database/sql queries into pulse streams.
package sql

import (
	"context"
	"database/sql"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// Scanner converts one result row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query runs query against db and returns a stream of the scanned
// rows. Rows are pumped before Query returns, so with no observer
// registered yet they sit in the stream's pending buffer and replay
// in row order to the first value-capable observer.
//
// The first query, scan or iteration error fails the stream and is
// also returned; rows scanned before the error remain buffered.
// Otherwise the stream finishes.
func Query[T any](ctx context.Context, db *sql.DB, query string, scanner Scanner[T], args ...any) (*core.Stream[T], error) {
	s := core.New[T]()
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		s.Fail(err)
		return s, err
	}
	defer rows.Close()
	for rows.Next() {
		value, err := scanner(rows)
		if err != nil {
			s.Fail(err)
			return s, err
		}
		s.Emit(value)
	}
	if err := rows.Err(); err != nil {
		s.Fail(err)
		return s, err
	}
	s.Finish()
	return s, nil
}

// QueryRow runs a query expecting a single row and returns a stream
// seeded with the scanned value.
func QueryRow[T any](ctx context.Context, db *sql.DB, query string, scanner func(*sql.Row) (T, error), args ...any) (*core.Stream[T], error) {
	s := core.New[T]()
	value, err := scanner(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		s.Fail(err)
		return s, err
	}
	s.Emit(value)
	s.Finish()
	return s, nil
}
