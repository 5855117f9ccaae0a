package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Record(ctx context.Context, in RecordInput) error
	TotalsBySubmission(ctx context.Context, in TotalsInput) ([]TotalsRow, error)
	Timeseries(ctx context.Context, in TimeseriesInput) ([]TimeseriesRow, error)
}
