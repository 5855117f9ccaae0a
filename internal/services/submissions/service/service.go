// Package service contains submission workflows
//
// the submission service is the composition point of the system: lists are
// built through querykit, rows execute against the repo boundary, and
// representations resolve related authors and issues through their own
// services so a nested author looks identical to one fetched directly
package service

import (
	"context"
	"fmt"

	"pressroom/internal/core/normalize"
	"pressroom/internal/modkit/hookkit"
	"pressroom/internal/modkit/propkit"
	"pressroom/internal/modkit/querykit"
	"pressroom/internal/modkit/repokit"
	"pressroom/internal/services/submissions/domain"
	"pressroom/internal/services/submissions/repo"
)

// Service defines the submission service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the submission service
type Svc struct {
	repo       repo.Repo
	builder    *querykit.Builder
	serializer *propkit.Serializer
	norm       *normalize.Normalizer
	hooks      *hookkit.Registry
}

// New constructs a submission service bound to a live Queryer
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], hooks *hookkit.Registry) *Svc {
	if db == nil {
		panic("submissions.Service requires a non nil TxRunner")
	}
	return NewWithRepo(binder.Bind(db), hooks)
}

// NewWithRepo constructs a submission service on any Repo implementation
// tests inject an in memory repo through here
func NewWithRepo(r repo.Repo, hooks *hookkit.Registry) *Svc {
	if r == nil {
		panic("submissions.Service requires a non nil Repo")
	}
	s := &Svc{repo: r, norm: normalize.New(), hooks: hooks}

	// declaration order below is the filter precedence order
	s.builder = querykit.New(domain.EntityType, r.Base,
		querykit.WithFilter("contextId", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Where("s.context_id = ?", v), nil
		}),
		querykit.WithFilter("status", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Where("s.status = ?", v), nil
		}),
		querykit.WithFilter("stageIds", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Where("s.stage_id = ANY(?)", v), nil
		}),
		querykit.WithFilter("sectionIds", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Where("s.section_id = ANY(?)", v), nil
		}),
		querykit.WithFilter("assignedTo", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Join("JOIN stage_assignments sa ON sa.submission_id = s.submission_id").
				Where("sa.user_id = ?", v), nil
		}),
		querykit.WithFilter("isIncomplete", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			if incomplete, _ := v.(bool); incomplete {
				return q.Where("s.submission_progress > 0"), nil
			}
			return q, nil
		}),
		querykit.WithFilter("daysInactive", func(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
			return q.Where("s.last_modified < NOW() - make_interval(days => ?)", v), nil
		}),
		querykit.WithFilter("searchPhrase", s.filterSearchPhrase),
		querykit.WithOrder("dateSubmitted", "s.date_submitted"),
		querykit.WithOrder("lastModified", "s.last_modified"),
		querykit.WithOrder("title", "s.title"),
		querykit.WithOrder("id", "s.submission_id"),
		querykit.WithDefaultOrder("s.submission_id ASC"),
		querykit.WithHooks(hooks),
	)
	s.serializer = propkit.NewSerializer(newSchema(), hooks)
	return s
}

func (s *Svc) filterSearchPhrase(_ context.Context, q querykit.Composed, v any) (querykit.Composed, error) {
	phrase, _ := v.(string)
	phrase = s.norm.Normalize(phrase)
	if phrase == "" {
		return q, nil
	}
	like := "%" + phrase + "%"
	return q.Where("(s.title ILIKE ? OR s.abstract ILIKE ?)", like, like), nil
}

// List returns one page of submissions in a journal plus the total
// matching count for pagination UI
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]*domain.Submission, int, error) {
	spec := querykit.Spec{
		Filters: map[string]any{"contextId": in.ContextID},
		Offset:  in.Offset,
		Count:   in.Count,
		OrderBy: in.OrderBy,
		Desc:    in.OrderDesc,
		Strict:  in.Strict,
	}
	if in.Status != nil {
		spec.Filters["status"] = *in.Status
	}
	if len(in.StageIDs) > 0 {
		spec.Filters["stageIds"] = in.StageIDs
	}
	if len(in.SectionIDs) > 0 {
		spec.Filters["sectionIds"] = in.SectionIDs
	}
	if in.AssignedTo != nil {
		spec.Filters["assignedTo"] = *in.AssignedTo
	}
	if in.IsIncomplete {
		spec.Filters["isIncomplete"] = true
	}
	if in.DaysInactive != nil {
		spec.Filters["daysInactive"] = *in.DaysInactive
	}
	if in.SearchPhrase != "" {
		spec.Filters["searchPhrase"] = in.SearchPhrase
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

// Get returns a single submission by id
func (s *Svc) Get(ctx context.Context, id int64) (*domain.Submission, error) {
	return s.repo.Get(ctx, id)
}

// Summary serializes sub at the summary tier
func (s *Svc) Summary(ctx context.Context, sub *domain.Submission) (*propkit.Object, error) {
	return s.serializer.Serialize(ctx, sub, propkit.TierSummary)
}

// Full serializes sub at the full tier
func (s *Svc) Full(ctx context.Context, sub *domain.Submission) (*propkit.Object, error) {
	return s.serializer.Serialize(ctx, sub, propkit.TierFull)
}

// Schema exposes the property schema for constants merging
func (s *Svc) Schema() *propkit.Schema { return s.serializer.Schema() }

// WorkflowURL renders the editorial workflow path for a submission
func WorkflowURL(sub *domain.Submission) string {
	return fmt.Sprintf("/workflow/index/%d/%d", sub.ID, sub.StageID)
}
