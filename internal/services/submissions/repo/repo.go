// Package repo provides postgres access for submissions
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pressroom/internal/modkit/querykit"
	"pressroom/internal/modkit/repokit"
	perr "pressroom/internal/platform/errors"
	"pressroom/internal/services/submissions/domain"
)

// Repo is the persistence surface for submissions
// Execute runs a composed query and returns the page plus the total count
// computed from the same filters minus pagination
type Repo interface {
	Base() querykit.Composed
	Execute(ctx context.Context, q querykit.Composed) ([]*domain.Submission, int, error)
	Get(ctx context.Context, id int64) (*domain.Submission, error)
}

type (
	// PG is a binder that binds the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// columns must match the scan order in scanPage
var columns = []string{
	"s.submission_id", "s.context_id", "s.section_id", "s.issue_id",
	"s.title", "s.abstract", "s.locale", "s.stage_id", "s.status",
	"s.date_submitted", "s.last_modified",
}

// Base starts the scoped submission query excluding soft deleted rows
// the assignedTo filter joins stage_assignments which can fan out rows,
// so counting is always over distinct submission ids
func (r *queries) Base() querykit.Composed {
	return querykit.NewComposed(domain.EntityType, "submissions s", columns...).
		Where("s.deleted_at IS NULL").
		CountOver("DISTINCT s.submission_id")
}

func (r *queries) Execute(ctx context.Context, q querykit.Composed) ([]*domain.Submission, int, error) {
	countSQL, countArgs := q.CountSQL()
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "submission count failed")
	}

	subs, err := r.scanPage(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if err := r.loadAuthorIDs(ctx, subs); err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *queries) scanPage(ctx context.Context, q querykit.Composed) ([]*domain.Submission, error) {
	sql, args := q.SelectSQL()
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "submission list failed")
	}
	defer rows.Close()

	var out []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(
			&s.ID, &s.ContextID, &s.SectionID, &s.IssueID,
			&s.Title, &s.Abstract, &s.Locale, &s.StageID, &s.Status,
			&s.DateSubmitted, &s.LastModified,
		); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "submission scan failed")
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// loadAuthorIDs batch loads contributor ids for a page in display order
// soft deleted authors keep their slot so representations can show a null
// where a contributor used to be
func (r *queries) loadAuthorIDs(ctx context.Context, subs []*domain.Submission) error {
	if len(subs) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(subs))
	byID := make(map[int64]*domain.Submission, len(subs))
	for _, s := range subs {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	const sql = `
select a.submission_id, a.author_id
from authors a
where a.submission_id = ANY($1)
order by a.submission_id, a.seq
`
	rows, err := r.q.Query(ctx, sql, ids)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "author id load failed")
	}
	defer rows.Close()

	for rows.Next() {
		var subID, authorID int64
		if err := rows.Scan(&subID, &authorID); err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "author id scan failed")
		}
		if s := byID[subID]; s != nil {
			s.AuthorIDs = append(s.AuthorIDs, authorID)
		}
	}
	return rows.Err()
}

func (r *queries) Get(ctx context.Context, id int64) (*domain.Submission, error) {
	const sql = `
select s.submission_id, s.context_id, s.section_id, s.issue_id,
       s.title, s.abstract, s.locale, s.stage_id, s.status,
       s.date_submitted, s.last_modified
from submissions s
where s.submission_id = $1 and s.deleted_at is null
`
	var s domain.Submission
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&s.ID, &s.ContextID, &s.SectionID, &s.IssueID,
		&s.Title, &s.Abstract, &s.Locale, &s.StageID, &s.Status,
		&s.DateSubmitted, &s.LastModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perr.NotFoundf("submission %d not found", id)
		}
		return nil, perr.FromPostgresf(err, "submission %d lookup failed", id)
	}
	if err := r.loadAuthorIDs(ctx, []*domain.Submission{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}
