// Package service contains usage stats workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"pressroom/internal/modkit/querykit"
	"pressroom/internal/platform/store"
	"pressroom/internal/services/stats/domain"
	"pressroom/internal/services/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	repo repo.Repo
}

// New constructs a stats service bound to the clickhouse seam
func New(ch store.Clickhouse) *Svc {
	if ch == nil {
		panic("stats.Service requires a non nil Clickhouse")
	}
	return NewWithRepo(repo.NewCH(ch))
}

// NewWithRepo constructs a stats service on any Repo implementation
func NewWithRepo(r repo.Repo) *Svc {
	if r == nil {
		panic("stats.Service requires a non nil Repo")
	}
	return &Svc{repo: r}
}

// Record appends a batch of usage events
// each event gets a fresh id so downstream dedupe can key on it
func (s *Svc) Record(ctx context.Context, in domain.RecordInput) error {
	rows := make([][]any, 0, len(in.Events))
	for _, ev := range in.Events {
		rows = append(rows, []any{uuid.NewString(), ev.Date, ev.ContextID, ev.SubmissionID, ev.Type})
	}
	return s.repo.Insert(ctx, rows)
}

// TotalsBySubmission returns per submission usage in a window,
// busiest submissions first
func (s *Svc) TotalsBySubmission(ctx context.Context, in domain.TotalsInput) ([]domain.TotalsRow, error) {
	offset, limit := pageBounds(in.Offset, in.Count)
	rows, err := s.repo.Totals(ctx, in.ContextID, in.Range.Start, in.Range.End, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TotalsRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.TotalsRow{
			SubmissionID:    r.SubmissionID,
			AbstractViews:   r.AbstractViews,
			GalleyDownloads: r.GalleyDownloads,
			Total:           r.Total,
		})
	}
	return out, nil
}

// Timeseries returns per day usage for a journal or one submission
func (s *Svc) Timeseries(ctx context.Context, in domain.TimeseriesInput) ([]domain.TimeseriesRow, error) {
	rows, err := s.repo.Timeseries(ctx, in.ContextID, in.SubmissionID, in.Range.Start, in.Range.End)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TimeseriesRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.TimeseriesRow{
			Day:             r.Day,
			AbstractViews:   r.AbstractViews,
			GalleyDownloads: r.GalleyDownloads,
		})
	}
	return out, nil
}

// pageBounds applies the same defaults and ceilings list endpoints use
func pageBounds(offset, count int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	switch {
	case count <= 0:
		count = querykit.DefaultPageSize
	case count > querykit.MaxPageSize:
		count = querykit.MaxPageSize
	}
	return offset, count
}
