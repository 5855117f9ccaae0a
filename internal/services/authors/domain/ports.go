package domain

import (
	"context"

	"pressroom/internal/modkit/propkit"
)

// ServicePort is the author service surface other modules compose against
// sibling services resolve it through the module registry so an author's
// representation is identical on every path that reaches it
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]*Author, int, error)
	Get(ctx context.Context, id int64) (*Author, error)
	Summary(ctx context.Context, a *Author) (*propkit.Object, error)
	Full(ctx context.Context, a *Author) (*propkit.Object, error)
	Schema() *propkit.Schema
}
