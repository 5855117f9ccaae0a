package service

import (
	"context"

	"pressroom/internal/modkit/propkit"
	"pressroom/internal/services/authors/domain"
)

// newSchema declares the author property tiers
// summary properties are what list views and nested representations carry,
// full adds contact and ordering detail for single item endpoints
func newSchema() *propkit.Schema {
	return propkit.NewSchema(domain.EntityType).
		Summary("id", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int64(author(e).ID), nil
		}).
		Summary("fullName", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(author(e).FullName()), nil
		}).
		Summary("affiliation", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.StringPtr(author(e).Affiliation), nil
		}).
		Summary("orcid", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.StringPtr(author(e).ORCID), nil
		}).
		Full("givenName", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(author(e).GivenName), nil
		}).
		Full("familyName", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(author(e).FamilyName), nil
		}).
		Full("email", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.String(author(e).Email), nil
		}).
		Full("seq", func(_ context.Context, e any) (propkit.Value, error) {
			return propkit.Int(author(e).Seq), nil
		})
}

func author(e any) *domain.Author { return e.(*domain.Author) }
