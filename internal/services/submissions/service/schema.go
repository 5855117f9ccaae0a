package service

import (
	"context"
	"time"

	"pressroom/internal/modkit/module"
	"pressroom/internal/modkit/propkit"
	perr "pressroom/internal/platform/errors"
	authordomain "pressroom/internal/services/authors/domain"
	issuedomain "pressroom/internal/services/issues/domain"
	"pressroom/internal/services/submissions/domain"
)

// newSchema declares the submission property tiers
//
// related authors and issues are resolved through their sibling service
// ports rather than re-queried here, so a nested author carries exactly
// the summary representation the author endpoints produce, hook added
// properties included. a deleted author keeps its position in the
// contributor list as an explicit null so client side ordering survives
func newSchema() *propkit.Schema {
	return propkit.NewSchema(domain.EntityType).
		Constant("STATUS_QUEUED", propkit.Int(domain.StatusQueued)).
		Constant("STATUS_PUBLISHED", propkit.Int(domain.StatusPublished)).
		Constant("STATUS_DECLINED", propkit.Int(domain.StatusDeclined)).
		Constant("STATUS_SCHEDULED", propkit.Int(domain.StatusScheduled)).
		Constant("WORKFLOW_STAGE_ID_SUBMISSION", propkit.Int(domain.StageSubmission)).
		Constant("WORKFLOW_STAGE_ID_INTERNAL_REVIEW", propkit.Int(domain.StageInternalReview)).
		Constant("WORKFLOW_STAGE_ID_EXTERNAL_REVIEW", propkit.Int(domain.StageExternalReview)).
		Constant("WORKFLOW_STAGE_ID_EDITING", propkit.Int(domain.StageEditing)).
		Constant("WORKFLOW_STAGE_ID_PRODUCTION", propkit.Int(domain.StageProduction)).
		Summary("id", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int64(submission(e).ID), nil
		}).
		Summary("title", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(submission(e).Title), nil
		}).
		Summary("abstract", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.StringPtr(submission(e).Abstract), nil
		}).
		Summary("status", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int(submission(e).Status), nil
		}).
		Summary("stageId", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int(submission(e).StageID), nil
		}).
		Summary("dateSubmitted", func(_ context.Context, e any) (propkit.Value, error) {
			return timeValue(submission(e).DateSubmitted), nil
		}).
		Summary("urlWorkflow", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(WorkflowURL(submission(e))), nil
		}).
		Full("sectionId", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int64(submission(e).SectionID), nil
		}).
		Full("locale", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(submission(e).Locale), nil
		}).
		Full("lastModified", func(_ context.Context, e any) (propkit.Value, error) {
			return timeValue(submission(e).LastModified), nil
		}).
		Full("authors", authorsGetter).
		Full("issue", issueGetter)
}

// authorsGetter resolves each contributor id through the author service
// a missing author emits a null element in place; any other failure is
// surfaced to the serializer which degrades the whole property to null
func authorsGetter(ctx context.Context, e any) (propkit.Value, error) {
	sub := submission(e)
	port, ok := module.PortsAs[authordomain.ServicePort]("authors")
	if !ok {
		return propkit.Null(), perr.Internalf("submissions: authors port not registered")
	}
	vals := make([]propkit.Value, 0, len(sub.AuthorIDs))
	for _, id := range sub.AuthorIDs {
		a, err := port.Get(ctx, id)
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				vals = append(vals, propkit.Null())
				continue
			}
			return propkit.Null(), err
		}
		obj, err := port.Summary(ctx, a)
		if err != nil {
			return propkit.Null(), err
		}
		vals = append(vals, propkit.Nested(obj))
	}
	return propkit.Array(vals...), nil
}

// issueGetter resolves the scheduled issue as a nested summary
// an unscheduled submission serializes issue as null
func issueGetter(ctx context.Context, e any) (propkit.Value, error) {
	sub := submission(e)
	if sub.IssueID == nil {
		return propkit.Null(), nil
	}
	port, ok := module.PortsAs[issuedomain.ServicePort]("issues")
	if !ok {
		return propkit.Null(), perr.Internalf("submissions: issues port not registered")
	}
	iss, err := port.Get(ctx, *sub.IssueID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return propkit.Null(), nil
		}
		return propkit.Null(), err
	}
	obj, err := port.Summary(ctx, iss)
	if err != nil {
		return propkit.Null(), err
	}
	return propkit.Nested(obj), nil
}

func timeValue(t time.Time) propkit.Value {
	if t.IsZero() {
		return propkit.Null()
	}
	return propkit.String(t.UTC().Format(time.RFC3339))
}

func submission(e any) *domain.Submission { return e.(*domain.Submission) }
