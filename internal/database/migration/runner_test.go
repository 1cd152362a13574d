package migration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sponsor-scout/internal/database"
)

type fakeTx struct {
	execs      []string
	committed  bool
	rolledBack bool
	failOn     string
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	t.execs = append(t.execs, query)
	if t.failOn != "" && strings.Contains(query, t.failOn) {
		return 0, errors.New("exec failed")
	}
	return 0, nil
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
	execs    []string
}

func (d *fakeDB) Ping(ctx context.Context) error { return nil }
func (d *fakeDB) Close() error                   { return nil }

func (d *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	d.execs = append(d.execs, query)
	return 0, nil
}

func (d *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (d *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

func (d *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestRun_LockAndStatementsShareOneTransaction(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeDB{tx: tx}

	if err := Run(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(db.execs) != 0 {
		t.Fatalf("statements ran outside the transaction: %v", db.execs)
	}
	if len(tx.execs) != len(statements)+1 {
		t.Fatalf("tx execs = %d, want %d", len(tx.execs), len(statements)+1)
	}
	if !strings.Contains(tx.execs[0], "pg_advisory_xact_lock") {
		t.Fatalf("first statement = %q, want the advisory lock", tx.execs[0])
	}
	if !tx.committed {
		t.Fatal("transaction not committed")
	}
}

func TestRun_FailedStatementRollsBack(t *testing.T) {
	tx := &fakeTx{failOn: "community_signals"}
	db := &fakeDB{tx: tx}

	if err := Run(context.Background(), db); err == nil {
		t.Fatal("expected error")
	}
	if tx.committed {
		t.Fatal("failed run must not commit")
	}
	if !tx.rolledBack {
		t.Fatal("failed run must roll back")
	}
}

func TestRun_NilDB(t *testing.T) {
	if err := Run(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
}
