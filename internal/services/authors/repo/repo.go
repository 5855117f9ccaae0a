// Package repo provides postgres access for authors
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pressroom/internal/modkit/querykit"
	"pressroom/internal/modkit/repokit"
	perr "pressroom/internal/platform/errors"
	"pressroom/internal/services/authors/domain"
)

// Repo is the persistence surface for authors
// Execute runs a composed query and returns the page plus the total count
// computed from the same filters minus pagination
type Repo interface {
	Base() querykit.Composed
	Execute(ctx context.Context, q querykit.Composed) ([]*domain.Author, int, error)
	Get(ctx context.Context, id int64) (*domain.Author, error)
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
	"a.author_id", "a.submission_id", "a.given_name", "a.family_name",
	"a.email", "a.affiliation", "a.orcid", "a.seq",
}

// Base starts the scoped author query excluding soft deleted rows
func (r *queries) Base() querykit.Composed {
	return querykit.NewComposed(domain.EntityType, "authors a", columns...).
		Where("a.deleted_at IS NULL")
}

func (r *queries) Execute(ctx context.Context, q querykit.Composed) ([]*domain.Author, int, error) {
	countSQL, countArgs := q.CountSQL()
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "author count failed")
	}

	sql, args := q.SelectSQL()
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "author list failed")
	}
	defer rows.Close()

	var out []*domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(
			&a.ID, &a.SubmissionID, &a.GivenName, &a.FamilyName,
			&a.Email, &a.Affiliation, &a.ORCID, &a.Seq,
		); err != nil {
			return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "author scan failed")
		}
		out = append(out, &a)
	}
	return out, total, rows.Err()
}

func (r *queries) Get(ctx context.Context, id int64) (*domain.Author, error) {
	const sql = `
select a.author_id, a.submission_id, a.given_name, a.family_name,
       a.email, a.affiliation, a.orcid, a.seq
from authors a
where a.author_id = $1 and a.deleted_at is null
`
	var a domain.Author
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&a.ID, &a.SubmissionID, &a.GivenName, &a.FamilyName,
		&a.Email, &a.Affiliation, &a.ORCID, &a.Seq,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perr.NotFoundf("author %d not found", id)
		}
		return nil, perr.FromPostgresf(err, "author %d lookup failed", id)
	}
	return &a, nil
}
