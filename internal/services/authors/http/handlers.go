// Package http provides HTTP transport for the authors API
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pressroom/internal/modkit/httpkit"
	"pressroom/internal/modkit/propkit"
	perr "pressroom/internal/platform/errors"
	"pressroom/internal/services/authors/domain"
	svc "pressroom/internal/services/authors/service"
)

// Register mounts author endpoints on the given router
// list uses POST with a JSON body for composable query shapes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// @Summary List authors
// @Tags Authors
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /authors/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	authors, total, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	items := make([]propkit.Value, 0, len(authors))
	for _, a := range authors {
		o, err := h.svc.Summary(r.Context(), a)
		if err != nil {
			return nil, err
		}
		items = append(items, propkit.Nested(o))
	}
	payload := propkit.NewObject().
		Set("items", propkit.Array(items...)).
		Set("itemsMax", propkit.Int(total))
	propkit.MergeConstants(payload, h.svc.Schema())
	return payload, nil
}

// @Summary Get a single author at the full tier
// @Tags Authors
// @Produce json
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /authors/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, perr.InvalidArgf("invalid author id")
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	payload, err := h.svc.Full(r.Context(), a)
	if err != nil {
		return nil, err
	}
	propkit.MergeConstants(payload, h.svc.Schema())
	return payload, nil
}
