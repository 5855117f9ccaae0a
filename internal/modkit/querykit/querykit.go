// Package querykit composes filtered paginated queries for one entity type
// from sparse caller supplied parameter sets
//
// filters apply in a fixed declared precedence order regardless of input
// order so query shape stays deterministic, and a hook point lets external
// collaborators append predicates after base scoping is in place
package querykit

import (
	"context"
	"sort"

	"pressroom/internal/modkit/hookkit"
	perr "pressroom/internal/platform/errors"
	"pressroom/internal/platform/logger"
)

// Pagination bounds applied to every list query
const (
	// DefaultPageSize is used when a spec asks for no or a non positive count
	DefaultPageSize = 20

	// MaxPageSize bounds worst case serialization cost per request
	MaxPageSize = 100
)

// Spec carries caller supplied filters pagination and ordering
// unrecognized filter keys are dropped with a diagnostic unless Strict is set
type Spec struct {
	Filters map[string]any
	Offset  int
	Count   int
	OrderBy string
	Desc    bool
	Strict  bool
}

// ApplyFunc folds one recognized filter value onto a composed query
type ApplyFunc func(ctx context.Context, q Composed, value any) (Composed, error)

// filterDef pairs a recognized key with its clause builder
type filterDef struct {
	key   string
	apply ApplyFunc
}

// BuildPayload is the mutable payload for the list::queryBuilder hook
// listeners run after built in filters so they can assume base scoping
type BuildPayload struct {
	EntityType string
	Query      Composed
	Spec       Spec
}

// QueryPayload is the mutable payload for the list::queryObject hook
// invoked by services on the fully composed query just before execution
type QueryPayload struct {
	EntityType string
	Query      Composed
}

// Builder composes queries for one entity type
type Builder struct {
	entityType   string
	base         func() Composed
	filters      []filterDef
	orders       map[string]string
	defaultOrder []string
	hooks        *hookkit.Registry
	strictPages  bool
}

// Option mutates builder construction
type Option func(*Builder)

// WithFilter declares a recognized filter key
// declaration order is the precedence order clauses apply in
func WithFilter(key string, apply ApplyFunc) Option {
	return func(b *Builder) { b.filters = append(b.filters, filterDef{key: key, apply: apply}) }
}

// WithOrder maps a caller facing order key to its ORDER BY expression
func WithOrder(key, expr string) Option {
	return func(b *Builder) { b.orders[key] = expr }
}

// WithDefaultOrder sets the fallback ordering, normally entity id ascending
func WithDefaultOrder(exprs ...string) Option {
	return func(b *Builder) { b.defaultOrder = exprs }
}

// WithHooks attaches the extension registry consulted on every Build
func WithHooks(reg *hookkit.Registry) Option {
	return func(b *Builder) { b.hooks = reg }
}

// WithStrictPagination rejects out of bounds pagination instead of clamping
func WithStrictPagination() Option {
	return func(b *Builder) { b.strictPages = true }
}

// New constructs a Builder for entityType
// base returns the scoped starting query including mandatory filters
// such as excluding soft deleted rows
func New(entityType string, base func() Composed, opts ...Option) *Builder {
	b := &Builder{
		entityType: entityType,
		base:       base,
		orders:     map[string]string{},
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build folds spec onto the base query and returns the composed result
//
// unrecognized keys are dropped (logged) in the default mode and rejected in
// strict mode; pagination is clamped to [0, MaxPageSize] unless strict
// pagination was configured; an unknown order key falls back to the default
func (b *Builder) Build(ctx context.Context, spec Spec) (Composed, error) {
	q := b.base()

	recognized := map[string]bool{}
	for _, f := range b.filters {
		v, ok := spec.Filters[f.key]
		if !ok {
			continue
		}
		recognized[f.key] = true
		nq, err := f.apply(ctx, q, v)
		if err != nil {
			return Composed{}, perr.WithField(err, f.key)
		}
		q = nq
	}

	if err := b.checkUnrecognized(ctx, spec, recognized); err != nil {
		return Composed{}, err
	}

	q = q.OrderBy(b.orderExprs(ctx, spec)...)

	offset, count, err := b.pageBounds(spec)
	if err != nil {
		return Composed{}, err
	}
	q = q.Page(offset, count)

	if b.hooks != nil {
		payload := &BuildPayload{EntityType: b.entityType, Query: q, Spec: spec}
		if _, err := b.hooks.Invoke(ctx, hookkit.Name(b.entityType, hookkit.PointListBuilder), payload); err != nil {
			return Composed{}, err
		}
		q = payload.Query
	}
	return q, nil
}

func (b *Builder) checkUnrecognized(ctx context.Context, spec Spec, recognized map[string]bool) error {
	var unknown []string
	for k := range spec.Filters {
		if !recognized[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	if spec.Strict {
		return perr.UnrecognizedFilterf("unrecognized filter %q for %s", unknown[0], b.entityType)
	}
	logger.C(ctx).Debug().
		Str("entity_type", b.entityType).
		Strs("filters", unknown).
		Msg("dropping unrecognized filters")
	return nil
}

func (b *Builder) orderExprs(ctx context.Context, spec Spec) []string {
	if spec.OrderBy != "" {
		if expr, ok := b.orders[spec.OrderBy]; ok {
			if spec.Desc {
				return []string{expr + " DESC"}
			}
			return []string{expr + " ASC"}
		}
		logger.C(ctx).Debug().
			Str("entity_type", b.entityType).
			Str("order_by", spec.OrderBy).
			Msg("unknown order field, using default")
	}
	return b.defaultOrder
}

func (b *Builder) pageBounds(spec Spec) (offset, count int, err error) {
	offset, count = spec.Offset, spec.Count
	if b.strictPages {
		if offset < 0 {
			return 0, 0, perr.InvalidPaginationf("offset %d out of range", offset)
		}
		if count < 0 || count > MaxPageSize {
			return 0, 0, perr.InvalidPaginationf("count %d out of range", count)
		}
	}
	if offset < 0 {
		offset = 0
	}
	if count <= 0 {
		count = DefaultPageSize
	}
	if count > MaxPageSize {
		count = MaxPageSize
	}
	return offset, count, nil
}
