package propkit

import (
	"context"
	"fmt"
)

// Tier is the requested level of representation detail
type Tier int

const (
	// TierSummary is the compact list item representation
	TierSummary Tier = iota

	// TierFull is the complete single item representation
	TierFull
)

// String renders the tier for logs
func (t Tier) String() string {
	if t == TierFull {
		return "full"
	}
	return "summary"
}

// Getter resolves one property value for an entity
// getters that resolve a related entity should return Null when the
// relation is missing rather than an error
type Getter func(ctx context.Context, entity any) (Value, error)

type property struct {
	name    string
	getter  Getter
	summary bool
}

// Schema declares the available properties of one entity type and which
// tier each belongs to
//
// summary properties serialize in both tiers so summary output is a subset
// of full output by construction; full-only properties serialize only at
// TierFull. Built once at registration, immutable afterwards.
type Schema struct {
	entityType string
	props      []property
	names      map[string]bool
	constants  *Object
}

// NewSchema starts a schema for entityType
func NewSchema(entityType string) *Schema {
	return &Schema{
		entityType: entityType,
		names:      map[string]bool{},
		constants:  NewObject(),
	}
}

// EntityType reports which entity type the schema describes
func (s *Schema) EntityType() string { return s.entityType }

// Summary declares a property serialized in both summary and full tiers
// declaring the same name twice is a programmer error and panics
func (s *Schema) Summary(name string, g Getter) *Schema {
	s.add(name, g, true)
	return s
}

// Full declares a property serialized only at the full tier
func (s *Schema) Full(name string, g Getter) *Schema {
	s.add(name, g, false)
	return s
}

func (s *Schema) add(name string, g Getter, summary bool) {
	if s.names[name] {
		panic(fmt.Sprintf("propkit: duplicate property %q on %s", name, s.entityType))
	}
	if g == nil {
		panic(fmt.Sprintf("propkit: nil getter for %q on %s", name, s.entityType))
	}
	s.names[name] = true
	s.props = append(s.props, property{name: name, getter: g, summary: summary})
}

// Constant declares a request independent constant exposed through the
// _constants channel, eg a status enumeration for client consumption
func (s *Schema) Constant(name string, v Value) *Schema {
	s.constants.Set(name, v)
	return s
}

// Constants returns a copy of the constant table
func (s *Schema) Constants() *Object { return s.constants.Clone() }

// PropertyNames returns the declared names for tier in declaration order
func (s *Schema) PropertyNames(tier Tier) []string {
	var names []string
	for _, p := range s.props {
		if tier == TierSummary && !p.summary {
			continue
		}
		names = append(names, p.name)
	}
	return names
}

// ConstantsKey is the payload key carrying the constant tables
// merged once per top level payload, not per list item
const ConstantsKey = "_constants"

// MergeConstants sets the _constants key on a top level payload from the
// given schemas' tables; later schemas win on name collisions
func MergeConstants(payload *Object, schemas ...*Schema) *Object {
	merged := NewObject()
	for _, s := range schemas {
		for _, k := range s.constants.Keys() {
			v, _ := s.constants.Get(k)
			merged.Set(k, v)
		}
	}
	payload.Set(ConstantsKey, Nested(merged))
	return payload
}
