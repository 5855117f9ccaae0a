package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	perr "pressroom/internal/platform/errors"
	"pressroom/internal/platform/store"
)

type fakeQueryer struct{ scanErr error }

func (f *fakeQueryer) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, errors.New("unexpected exec")
}

func (f *fakeQueryer) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (f *fakeQueryer) QueryRow(context.Context, string, ...any) store.Row {
	return errRow{err: f.scanErr}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestGet_NoRowsBecomesNotFound(t *testing.T) {
	r := NewPG().Bind(&fakeQueryer{scanErr: pgx.ErrNoRows})

	_, err := r.Get(context.Background(), 11)
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("no rows should map to not found, got %v (code %v)", err, perr.CodeOf(err))
	}
}

func TestGet_SeamFailureIsNotNotFound(t *testing.T) {
	r := NewPG().Bind(&fakeQueryer{scanErr: errors.New("connection refused")})

	_, err := r.Get(context.Background(), 11)
	if err == nil {
		t.Fatalf("expected error")
	}
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("seam failure must not be reported as not found: %v", err)
	}
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("seam failure code = %v, want %v", perr.CodeOf(err), perr.ErrorCodeDB)
	}
}

func TestGet_PgErrorKeepsMappedCode(t *testing.T) {
	r := NewPG().Bind(&fakeQueryer{scanErr: &pgconn.PgError{Code: "57P03"}})

	_, err := r.Get(context.Background(), 11)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("cannot-connect-now code = %v, want %v", perr.CodeOf(err), perr.ErrorCodeUnavailable)
	}
}
