// Package http provides HTTP transport for the issues API
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pressroom/internal/modkit/httpkit"
	"pressroom/internal/modkit/propkit"
	perr "pressroom/internal/platform/errors"
	"pressroom/internal/services/issues/domain"
	svc "pressroom/internal/services/issues/service"
)

// Register mounts issue endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// @Summary List issues of a journal
// @Tags Issues
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /issues/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	issues, total, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	items := make([]propkit.Value, 0, len(issues))
	for _, i := range issues {
		o, err := h.svc.Summary(r.Context(), i)
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

// @Summary Get a single issue at the full tier
// @Tags Issues
// @Produce json
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /issues/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, perr.InvalidArgf("invalid issue id")
	}
	i, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	payload, err := h.svc.Full(r.Context(), i)
	if err != nil {
		return nil, err
	}
	propkit.MergeConstants(payload, h.svc.Schema())
	return payload, nil
}
