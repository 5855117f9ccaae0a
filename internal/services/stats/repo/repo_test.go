package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	perr "pressroom/internal/platform/errors"
	"pressroom/internal/platform/store"
)

type fakeCH struct {
	lastTable string
	lastData  any
	lastSQL   string
	lastArgs  []any

	rows      [][]any
	insertErr error
}

func (f *fakeCH) Insert(_ context.Context, table string, data any) error {
	f.lastTable, f.lastData = table, data
	return f.insertErr
}

func (f *fakeCH) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	return &fakeRows{rows: f.rows}, nil
}

func (f *fakeCH) Close() error { return nil }

type fakeRows struct {
	rows [][]any
	i    int
}

func (r *fakeRows) Next() bool { r.i++; return r.i <= len(r.rows) }

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.i-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = row[i].(int64)
		case *string:
			*p = row[i].(string)
		default:
			return errors.New("unsupported scan dest")
		}
	}
	return nil
}

func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }

func TestInsert_TargetsUsageEvents(t *testing.T) {
	ch := &fakeCH{}
	r := NewCH(ch)

	rows := [][]any{{"evt-1", "2025-08-14", int64(1), int64(7), "abstract"}}
	if err := r.Insert(context.Background(), rows); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if ch.lastTable != Table {
		t.Fatalf("table = %q", ch.lastTable)
	}
}

func TestInsert_WrapsSeamError(t *testing.T) {
	ch := &fakeCH{insertErr: errors.New("boom")}
	r := NewCH(ch)

	err := r.Insert(context.Background(), [][]any{{"evt-1", "2025-08-14", int64(1), int64(7), "galley"}})
	if err == nil {
		t.Fatal("want error")
	}
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}

func TestTotals_ScansAndPassesBounds(t *testing.T) {
	ch := &fakeCH{rows: [][]any{{int64(7), int64(420), int64(42), int64(462)}}}
	r := NewCH(ch)

	out, err := r.Totals(context.Background(), 1, "2025-08-01", "2025-08-31", 0, 20)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(out) != 1 || out[0].SubmissionID != 7 || out[0].Total != 462 {
		t.Fatalf("out = %+v", out)
	}
	if !strings.Contains(ch.lastSQL, "group by submission_id") {
		t.Fatalf("sql = %s", ch.lastSQL)
	}
	if ch.lastArgs[0] != int64(1) || ch.lastArgs[3] != 20 || ch.lastArgs[4] != 0 {
		t.Fatalf("args = %v", ch.lastArgs)
	}
}

func TestTimeseries_ScopesToSubmission(t *testing.T) {
	ch := &fakeCH{rows: [][]any{{"2025-08-14", int64(12), int64(3)}}}
	r := NewCH(ch)

	out, err := r.Timeseries(context.Background(), 1, 7, "2025-08-01", "2025-08-31")
	if err != nil {
		t.Fatalf("timeseries: %v", err)
	}
	if out[0].Day != "2025-08-14" || out[0].AbstractViews != 12 {
		t.Fatalf("out = %+v", out)
	}
	// submission id appears twice, once for the zero check and once to match
	if ch.lastArgs[1] != int64(7) || ch.lastArgs[2] != int64(7) {
		t.Fatalf("args = %v", ch.lastArgs)
	}
}
