// Package http provides HTTP transport for usage stats
package http

import (
	stdhttp "net/http"

	"pressroom/internal/modkit/httpkit"
	"pressroom/internal/services/stats/domain"
	svc "pressroom/internal/services/stats/service"
)

// Register mounts usage stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.RecordInput](r, "/events", h.record)
	httpkit.PostJSON[domain.TotalsInput](r, "/totals", h.totals)
	httpkit.PostJSON[domain.TimeseriesInput](r, "/timeseries", h.timeseries)
}

type handlers struct{ svc svc.Service }

// @Summary Record usage events
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.RecordInput true "Events"
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /stats/events [post]
func (h *handlers) record(r *stdhttp.Request, in domain.RecordInput) (any, error) {
	if err := h.svc.Record(r.Context(), in); err != nil {
		return nil, err
	}
	return map[string]any{"recorded": len(in.Events)}, nil
}

// @Summary Usage totals per submission
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.TotalsInput true "Query"
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /stats/totals [post]
func (h *handlers) totals(r *stdhttp.Request, in domain.TotalsInput) (any, error) {
	rows, err := h.svc.TotalsBySubmission(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return map[string]any{"items": rows, "itemsMax": len(rows)}, nil
}

// @Summary Usage per day
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.TimeseriesInput true "Query"
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /stats/timeseries [post]
func (h *handlers) timeseries(r *stdhttp.Request, in domain.TimeseriesInput) (any, error) {
	rows, err := h.svc.Timeseries(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return map[string]any{"items": rows}, nil
}
