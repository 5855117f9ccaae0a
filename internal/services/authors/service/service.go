// Package service contains author workflows
package service

import (
	"context"

	"pressroom/internal/core/normalize"
	"pressroom/internal/modkit/hookkit"
	"pressroom/internal/modkit/propkit"
	"pressroom/internal/modkit/querykit"
	"pressroom/internal/modkit/repokit"
	"pressroom/internal/services/authors/domain"
	"pressroom/internal/services/authors/repo"
)

// Service defines the author service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the author service
type Svc struct {
	repo       repo.Repo
	builder    *querykit.Builder
	serializer *propkit.Serializer
	norm       *normalize.Normalizer
	hooks      *hookkit.Registry
}

// New constructs an author service bound to a live Queryer
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], hooks *hookkit.Registry) *Svc {
	if db == nil {
		panic("authors.Service requires a non nil TxRunner")
	}
	return NewWithRepo(binder.Bind(db), hooks)
}

// NewWithRepo constructs an author service on any Repo implementation
// tests inject an in memory repo through here
func NewWithRepo(r repo.Repo, hooks *hookkit.Registry) *Svc {
	if r == nil {
		panic("authors.Service requires a non nil Repo")
	}
	s := &Svc{repo: r, norm: normalize.New()}
	s.builder = querykit.New(domain.EntityType, r.Base,
		querykit.WithFilter("submissionIds", filterSubmissionIDs),
		querykit.WithFilter("searchPhrase", s.filterSearchPhrase),
		querykit.WithOrder("familyName", "a.family_name"),
		querykit.WithOrder("seq", "a.seq"),
		querykit.WithOrder("id", "a.author_id"),
		querykit.WithDefaultOrder("a.author_id ASC"),
		querykit.WithHooks(hooks),
	)
	s.serializer = propkit.NewSerializer(newSchema(), hooks)
	s.hooks = hooks
	return s
}

func filterSubmissionIDs(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
	ids, _ := v.([]int64)
	if len(ids) == 0 {
		return q, nil
	}
	return q.Where("a.submission_id = ANY(?)", ids), nil
}

func (s *Svc) filterSearchPhrase(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
	phrase, _ := v.(string)
	phrase = s.norm.Normalize(phrase)
	if phrase == "" {
		return q, nil
	}
	like := "%" + phrase + "%"
	return q.Where("(a.given_name ILIKE ? OR a.family_name ILIKE ?)", like, like), nil
}

// List returns one page of authors plus the total matching count
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]*domain.Author, int, error) {
	spec := querykit.Spec{
		Filters: map[string]any{},
		Offset:  in.Offset,
		Count:   in.Count,
		OrderBy: in.OrderBy,
		Desc:    in.OrderDesc,
		Strict:  in.Strict,
	}
	if len(in.SubmissionIDs) > 0 {
		spec.Filters["submissionIds"] = in.SubmissionIDs
	}
	if in.SearchPhrase != "" {
		spec.Filters["searchPhrase"] = in.SearchPhrase
	}

	q, err := s.builder.Build(ctx, spec)
	if err != nil {
		return nil, 0, err
	}
	q, err = queryObjectHook(ctx, s.hooks, q)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.Execute(ctx, q)
}

// Get returns a single author by id
func (s *Svc) Get(ctx context.Context, id int64) (*domain.Author, error) {
	return s.repo.Get(ctx, id)
}

// Summary serializes a at the summary tier
func (s *Svc) Summary(ctx context.Context, a *domain.Author) (*propkit.Object, error) {
	return s.serializer.Serialize(ctx, a, propkit.TierSummary)
}

// Full serializes a at the full tier
func (s *Svc) Full(ctx context.Context, a *domain.Author) (*propkit.Object, error) {
	return s.serializer.Serialize(ctx, a, propkit.TierFull)
}

// Schema exposes the property schema for constants merging
func (s *Svc) Schema() *propkit.Schema { return s.serializer.Schema() }

func queryObjectHook(ctx context.Context, hooks *hookkit.Registry, q querykit.Composed) (querykit.Composed, error) {
	if hooks == nil {
		return q, nil
	}
	payload := &querykit.QueryPayload{EntityType: domain.EntityType, Query: q}
	if _, err := hooks.Invoke(ctx, hookkit.Name(domain.EntityType, hookkit.PointListQuery), payload); err != nil {
		return querykit.Composed{}, err
	}
	return payload.Query, nil
}
