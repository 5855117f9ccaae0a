package domain

import (
	"context"

	"pressroom/internal/modkit/propkit"
)

// ServicePort is the issue service surface other modules compose against
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]*Issue, int, error)
	Get(ctx context.Context, id int64) (*Issue, error)
	Summary(ctx context.Context, i *Issue) (*propkit.Object, error)
	Full(ctx context.Context, i *Issue) (*propkit.Object, error)
	Schema() *propkit.Schema
}
