// Package repo provides clickhouse access for usage stats
package repo

import (
	"context"

	perr "pressroom/internal/platform/errors"
	"pressroom/internal/platform/store"
)

// Table is the clickhouse table usage events land in
// columns: event_id String, event_date Date, context_id Int64,
// submission_id Int64, event_type String
const Table = "usage_events"

// Repo is the persistence surface for usage stats
type Repo interface {
	Insert(ctx context.Context, rows [][]any) error
	Totals(ctx context.Context, contextID int64, start, end string, offset, limit int) ([]TotalsRow, error)
	Timeseries(ctx context.Context, contextID, submissionID int64, start, end string) ([]TimeseriesRow, error)
}

// TotalsRow represents per submission usage sums
type TotalsRow struct {
	SubmissionID    int64
	AbstractViews   int64
	GalleyDownloads int64
	Total           int64
}

// TimeseriesRow represents per day usage sums
type TimeseriesRow struct {
	Day             string
	AbstractViews   int64
	GalleyDownloads int64
}

// NewCH wires the clickhouse seam to the repo
func NewCH(c store.Clickhouse) Repo { return &queries{ch: c} }

type queries struct{ ch store.Clickhouse }

func (r *queries) Insert(ctx context.Context, rows [][]any) error {
	if err := r.ch.Insert(ctx, Table, rows); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "usage event insert failed")
	}
	return nil
}

func (r *queries) Totals(ctx context.Context, contextID int64, start, end string, offset, limit int) ([]TotalsRow, error) {
	const sql = `
select submission_id,
       countIf(event_type = 'abstract') as abstract_views,
       countIf(event_type = 'galley') as galley_downloads,
       count() as total
from usage_events
where context_id = ?
  and event_date between toDate(?) and toDate(?)
group by submission_id
order by total desc, submission_id asc
limit ? offset ?
`
	rows, err := r.ch.Query(ctx, sql, contextID, start, end, limit, offset)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "usage totals query failed")
	}
	defer rows.Close()

	var out []TotalsRow
	for rows.Next() {
		var rr TotalsRow
		if err := rows.Scan(&rr.SubmissionID, &rr.AbstractViews, &rr.GalleyDownloads, &rr.Total); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "usage totals scan failed")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Timeseries(ctx context.Context, contextID, submissionID int64, start, end string) ([]TimeseriesRow, error) {
	const sql = `
select toString(event_date) as day,
       countIf(event_type = 'abstract') as abstract_views,
       countIf(event_type = 'galley') as galley_downloads
from usage_events
where context_id = ?
  and (? = 0 or submission_id = ?)
  and event_date between toDate(?) and toDate(?)
group by event_date
order by event_date asc
`
	rows, err := r.ch.Query(ctx, sql, contextID, submissionID, submissionID, start, end)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "usage timeseries query failed")
	}
	defer rows.Close()

	var out []TimeseriesRow
	for rows.Next() {
		var rr TimeseriesRow
		if err := rows.Scan(&rr.Day, &rr.AbstractViews, &rr.GalleyDownloads); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "usage timeseries scan failed")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
