// Package repo provides postgres access for issues
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pressroom/internal/modkit/querykit"
	"pressroom/internal/modkit/repokit"
	perr "pressroom/internal/platform/errors"
	"pressroom/internal/services/issues/domain"
)

// Repo is the persistence surface for issues
type Repo interface {
	Base() querykit.Composed
	Execute(ctx context.Context, q querykit.Composed) ([]*domain.Issue, int, error)
	Get(ctx context.Context, id int64) (*domain.Issue, error)
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

// columns must match the scan order in Execute
var columns = []string{
	"i.issue_id", "i.context_id", "i.volume", "i.number", "i.year",
	"i.title", "i.published", "i.date_published",
}

// Base starts the scoped issue query excluding soft deleted rows
func (r *queries) Base() querykit.Composed {
	return querykit.NewComposed(domain.EntityType, "issues i", columns...).
		Where("i.deleted_at IS NULL")
}

func (r *queries) Execute(ctx context.Context, q querykit.Composed) ([]*domain.Issue, int, error) {
	countSQL, countArgs := q.CountSQL()
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "issue count failed")
	}

	sql, args := q.SelectSQL()
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "issue list failed")
	}
	defer rows.Close()

	var out []*domain.Issue
	for rows.Next() {
		var i domain.Issue
		if err := rows.Scan(
			&i.ID, &i.ContextID, &i.Volume, &i.Number, &i.Year,
			&i.Title, &i.Published, &i.DatePublished,
		); err != nil {
			return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "issue scan failed")
		}
		out = append(out, &i)
	}
	return out, total, rows.Err()
}

func (r *queries) Get(ctx context.Context, id int64) (*domain.Issue, error) {
	const sql = `
select i.issue_id, i.context_id, i.volume, i.number, i.year,
       i.title, i.published, i.date_published
from issues i
where i.issue_id = $1 and i.deleted_at is null
`
	var i domain.Issue
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&i.ID, &i.ContextID, &i.Volume, &i.Number, &i.Year,
		&i.Title, &i.Published, &i.DatePublished,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perr.NotFoundf("issue %d not found", id)
		}
		return nil, perr.FromPostgresf(err, "issue %d lookup failed", id)
	}
	return &i, nil
}
