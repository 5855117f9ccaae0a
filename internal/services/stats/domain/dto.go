// Package domain holds DTOs for usage stats http and service contracts
package domain

// Dates are ISO dates, inclusive on both ends

// TimeRange defines a start and end date for queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2025-08-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2025-08-31"`
}

// EventTypeAbstract and EventTypeGalley are the recorded event kinds
const (
	EventTypeAbstract = "abstract"
	EventTypeGalley   = "galley"
)

// Event is a single usage event to record
type Event struct {
	ContextID    int64  `json:"contextId" validate:"required,min=1"`
	SubmissionID int64  `json:"submissionId" validate:"required,min=1"`
	Type         string `json:"type" validate:"required,oneof=abstract galley"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02" example:"2025-08-14"`
}

// RecordInput carries a batch of usage events
type RecordInput struct {
	Events []Event `json:"events" validate:"required,min=1,max=1000,dive"`
}

// TotalsInput buckets usage per submission over a window
type TotalsInput struct {
	ContextID int64     `json:"contextId" validate:"required,min=1"`
	Range     TimeRange `json:"range"`
	Offset    int       `json:"offset,omitempty" validate:"omitempty,min=0"`
	Count     int       `json:"count,omitempty" validate:"omitempty,min=0"`
}

// TotalsRow represents one submission's usage in the window
type TotalsRow struct {
	SubmissionID    int64 `json:"submissionId" example:"7"`
	AbstractViews   int64 `json:"abstractViews" example:"420"`
	GalleyDownloads int64 `json:"galleyDownloads" example:"42"`
	Total           int64 `json:"total" example:"462"`
}

// TimeseriesInput buckets usage per day
// SubmissionID zero means the whole journal
type TimeseriesInput struct {
	ContextID    int64     `json:"contextId" validate:"required,min=1"`
	SubmissionID int64     `json:"submissionId,omitempty" validate:"omitempty,min=1"`
	Range        TimeRange `json:"range"`
}

// TimeseriesRow represents one day of usage
type TimeseriesRow struct {
	Day             string `json:"day" example:"2025-08-14"`
	AbstractViews   int64  `json:"abstractViews" example:"12"`
	GalleyDownloads int64  `json:"galleyDownloads" example:"3"`
}
