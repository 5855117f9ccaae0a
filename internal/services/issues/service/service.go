// Package service contains issue workflows
package service

import (
	"context"
	"time"

	"pressroom/internal/modkit/hookkit"
	"pressroom/internal/modkit/propkit"
	"pressroom/internal/modkit/querykit"
	"pressroom/internal/modkit/repokit"
	"pressroom/internal/services/issues/domain"
	"pressroom/internal/services/issues/repo"
)

// Service defines the issue service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the issue service
type Svc struct {
	repo       repo.Repo
	builder    *querykit.Builder
	serializer *propkit.Serializer
	hooks      *hookkit.Registry
}

// New constructs an issue service bound to a live Queryer
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], hooks *hookkit.Registry) *Svc {
	if db == nil {
		panic("issues.Service requires a non nil TxRunner")
	}
	return NewWithRepo(binder.Bind(db), hooks)
}

// NewWithRepo constructs an issue service on any Repo implementation
func NewWithRepo(r repo.Repo, hooks *hookkit.Registry) *Svc {
	if r == nil {
		panic("issues.Service requires a non nil Repo")
	}
	s := &Svc{repo: r, hooks: hooks}
	s.builder = querykit.New(domain.EntityType, r.Base,
		querykit.WithFilter("contextId", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Where("i.context_id = ?", v), nil
		}),
		querykit.WithFilter("isPublished", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Where("i.published = ?", v), nil
		}),
		querykit.WithFilter("volume", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Where("i.volume = ?", v), nil
		}),
		querykit.WithFilter("years", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			years, _ := v.([]int)
			if len(years) == 0 {
				return q, nil
			}
			return q.Where("i.year = ANY(?)", years), nil
		}),
		querykit.WithOrder("datePublished", "i.date_published"),
		querykit.WithOrder("year", "i.year"),
		querykit.WithOrder("id", "i.issue_id"),
		querykit.WithDefaultOrder("i.date_published DESC", "i.issue_id ASC"),
		querykit.WithHooks(hooks),
	)
	s.serializer = propkit.NewSerializer(newSchema(), hooks)
	return s
}

// List returns one page of issues plus the total matching count
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]*domain.Issue, int, error) {
	spec := querykit.Spec{
		Filters: map[string]any{"contextId": in.ContextID},
		Offset:  in.Offset,
		Count:   in.Count,
		OrderBy: in.OrderBy,
		Desc:    in.OrderDesc,
		Strict:  in.Strict,
	}
	if in.IsPublished != nil {
		spec.Filters["isPublished"] = *in.IsPublished
	}
	if in.Volume != nil {
		spec.Filters["volume"] = *in.Volume
	}
	if len(in.Years) > 0 {
		spec.Filters["years"] = in.Years
	}

	q, err := s.builder.Build(ctx, spec)
	if err != nil {
		return nil, 0, err
	}
	if s.hooks != nil {
		payload := &querykit.QueryPayload{EntityType: domain.EntityType, Query: q}
		if _, err := s.hooks.Invoke(ctx, hookkit.Name(domain.EntityType, hookkit.PointListQuery), payload); err != nil {
			return nil, 0, err
		}
		q = payload.Query
	}
	return s.repo.Execute(ctx, q)
}

// Get returns a single issue by id
func (s *Svc) Get(ctx context.Context, id int64) (*domain.Issue, error) {
	return s.repo.Get(ctx, id)
}

// Summary serializes i at the summary tier
func (s *Svc) Summary(ctx context.Context, i *domain.Issue) (*propkit.Object, error) {
	return s.serializer.Serialize(ctx, i, propkit.TierSummary)
}

// Full serializes i at the full tier
func (s *Svc) Full(ctx context.Context, i *domain.Issue) (*propkit.Object, error) {
	return s.serializer.Serialize(ctx, i, propkit.TierFull)
}

// Schema exposes the property schema for constants merging
func (s *Svc) Schema() *propkit.Schema { return s.serializer.Schema() }

func newSchema() *propkit.Schema {
	return propkit.NewSchema(domain.EntityType).
		Summary("id", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int64(issue(e).ID), nil
		}).
		Summary("identification", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(issue(e).Identification()), nil
		}).
		Summary("datePublished", func(_ context.Context, e any) (propkit.Value, error) {
			return timeValue(issue(e).DatePublished), nil
		}).
		Full("volume", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int(issue(e).Volume), nil
		}).
		Full("number", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(issue(e).Number), nil
		}).
		Full("year", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int(issue(e).Year), nil
		}).
		Full("title", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.StringPtr(issue(e).Title), nil
		}).
		Full("published", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Bool(issue(e).Published), nil
		})
}

func issue(e any) *domain.Issue { return e.(*domain.Issue) }

func timeValue(t *time.Time) propkit.Value {
	if t == nil {
		return propkit.Null()
	}
	return propkit.String(t.UTC().Format(time.RFC3339))
}
