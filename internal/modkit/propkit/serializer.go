package propkit

import (
	"context"

	"pressroom/internal/modkit/hookkit"
	"pressroom/internal/platform/logger"
)

// PropsPayload is the mutable payload for getProperties hooks
// listeners add or overwrite keys on Props; hook keys land after the built
// in set so overriding a built in is intentional, documented behavior
type PropsPayload struct {
	EntityType string
	Entity     any
	Tier       Tier
	Props      *Object
}

// Serializer produces tiered representations of one entity type
//
// output is assembled fresh per call and never cached because hook
// contributed properties may depend on request scoped context
type Serializer struct {
	schema *Schema
	hooks  *hookkit.Registry
}

// NewSerializer binds a schema to the hook registry
// hooks may be nil when no extension points are wanted (tests)
func NewSerializer(schema *Schema, hooks *hookkit.Registry) *Serializer {
	if schema == nil {
		panic("propkit: nil schema")
	}
	return &Serializer{schema: schema, hooks: hooks}
}

// Schema exposes the bound schema for constants merging
func (sz *Serializer) Schema() *Schema { return sz.schema }

// Serialize assembles the representation of entity at tier
//
// getter failures degrade to null for that property rather than failing
// the whole representation; property enrichment hooks run best effort
func (sz *Serializer) Serialize(ctx context.Context, entity any, tier Tier) (*Object, error) {
	out := NewObject()
	for _, p := range sz.schema.props {
		if tier == TierSummary && !p.summary {
			continue
		}
		v, err := p.getter(ctx, entity)
		if err != nil {
			logger.C(ctx).Warn().Err(err).
				Str("entity_type", sz.schema.entityType).
				Str("property", p.name).
				Msg("property getter failed, degrading to null")
			v = Null()
		}
		out.Set(p.name, v)
	}

	if sz.hooks != nil {
		payload := &PropsPayload{EntityType: sz.schema.entityType, Entity: entity, Tier: tier, Props: out}
		sz.hooks.InvokeBestEffort(ctx, hookkit.Name(sz.schema.entityType, hookkit.PointPropValues), payload)
		point := hookkit.PointPropSummary
		if tier == TierFull {
			point = hookkit.PointPropFull
		}
		sz.hooks.InvokeBestEffort(ctx, hookkit.Name(sz.schema.entityType, point), payload)
	}
	return out, nil
}
