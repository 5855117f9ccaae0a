package domain

import (
	"context"

	"pressroom/internal/modkit/propkit"
)

// ServicePort is the submission service surface the API layer and sibling
// modules compose against
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]*Submission, int, error)
	Get(ctx context.Context, id int64) (*Submission, error)
	Summary(ctx context.Context, s *Submission) (*propkit.Object, error)
	Full(ctx context.Context, s *Submission) (*propkit.Object, error)
	Schema() *propkit.Schema
}
