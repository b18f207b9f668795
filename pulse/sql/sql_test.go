package sql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	_, err = db.Exec(`INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 25), ('Charlie', 35)`)
	if err != nil {
		t.Fatalf("failed to insert data: %v", err)
	}
	return db
}

type User struct {
	ID   int
	Name string
	Age  int
}

func TestQuery(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stream, err := Query(ctx, db, "SELECT id, name, age FROM users ORDER BY id", func(rows *sql.Rows) (User, error) {
		var u User
		err := rows.Scan(&u.ID, &u.Name, &u.Age)
		return u, err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var users []User
	stream.OnValue(func(u User) { users = append(users, u) })

	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Name != "Alice" || users[2].Name != "Charlie" {
		t.Errorf("rows out of order: %v", users)
	}
	if stream.State() != core.Finished {
		t.Errorf("state = %v, want %v", stream.State(), core.Finished)
	}
}

func TestQueryScanError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	scanErr := errors.New("bad row")
	stream, err := Query(ctx, db, "SELECT id FROM users ORDER BY id", func(rows *sql.Rows) (int, error) {
		var id int
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
		if id == 2 {
			return 0, scanErr
		}
		return id, nil
	})

	if !errors.Is(err, scanErr) {
		t.Fatalf("got err %v, want %v", err, scanErr)
	}
	if stream.State() != core.Failed {
		t.Errorf("state = %v, want %v", stream.State(), core.Failed)
	}

	// The row scanned before the failure stays buffered.
	var ids []int
	stream.OnValue(func(id int) { ids = append(ids, id) })
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("buffered rows = %v, want [1]", ids)
	}
}

func TestQueryBadSQL(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stream, err := Query(ctx, db, "SELECT nope FROM missing", func(rows *sql.Rows) (int, error) {
		return 0, nil
	})
	if err == nil {
		t.Fatal("expected query error")
	}
	if stream.State() != core.Failed {
		t.Errorf("state = %v, want %v", stream.State(), core.Failed)
	}
}

func TestQueryRow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stream, err := QueryRow(ctx, db, "SELECT COUNT(*) FROM users", func(row *sql.Row) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []int
	stream.OnValue(func(n int) { got = append(got, n) })
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("got %v, want [3]", got)
	}
}
