// Package http provides HTTP transport for the submissions API
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pressroom/internal/modkit/httpkit"
	"pressroom/internal/modkit/module"
	"pressroom/internal/modkit/propkit"
	perr "pressroom/internal/platform/errors"
	authordomain "pressroom/internal/services/authors/domain"
	issuedomain "pressroom/internal/services/issues/domain"
	"pressroom/internal/services/submissions/domain"
	svc "pressroom/internal/services/submissions/service"
)

// Register mounts submission endpoints on the given router
// list uses POST with a JSON body for composable query shapes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// @Summary List submissions in a journal
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /submissions/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	subs, total, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	items := make([]propkit.Value, 0, len(subs))
	for _, sub := range subs {
		o, err := h.svc.Summary(r.Context(), sub)
		if err != nil {
			return nil, err
		}
		items = append(items, propkit.Nested(o))
	}
	payload := propkit.NewObject().
		Set("items", propkit.Array(items...)).
		Set("itemsMax", propkit.Int(total))
	propkit.MergeConstants(payload, h.schemas()...)
	return payload, nil
}

// @Summary Get a single submission at the full tier
// @Tags Submissions
// @Produce json
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /submissions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, perr.InvalidArgf("invalid submission id")
	}
	sub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	payload, err := h.svc.Full(r.Context(), sub)
	if err != nil {
		return nil, err
	}
	propkit.MergeConstants(payload, h.schemas()...)
	return payload, nil
}

// schemas collects the submission schema plus the schemas of nested
// representations so clients can decode related constants in one place
func (h *handlers) schemas() []*propkit.Schema {
	out := []*propkit.Schema{h.svc.Schema()}
	if p, ok := module.PortsAs[authordomain.ServicePort]("authors"); ok {
		out = append(out, p.Schema())
	}
	if p, ok := module.PortsAs[issuedomain.ServicePort]("issues"); ok {
		out = append(out, p.Schema())
	}
	return out
}
