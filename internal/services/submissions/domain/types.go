// Package domain defines submission types and ports
package domain

import "time"

// EntityType is the wire stable type name used in hook names
const EntityType = "Submission"

// Submission statuses
// values are wire stable and exposed to clients through _constants
const (
	StatusQueued    = 1
	StatusPublished = 3
	StatusDeclined  = 4
	StatusScheduled = 5
)

// Workflow stages a submission moves through
const (
	StageSubmission     = 1
	StageInternalReview = 2
	StageExternalReview = 3
	StageEditing        = 4
	StageProduction     = 5
)

// Submission is a manuscript moving through the editorial workflow
// AuthorIDs keeps contributor order; a dangling id (deleted author)
// serializes as a null slot rather than being dropped
type Submission struct {
	ID            int64
	ContextID     int64
	SectionID     int64
	IssueID       *int64
	Title         string
	Abstract      *string
	Locale        string
	StageID       int
	Status        int
	AuthorIDs     []int64
	DateSubmitted time.Time
	LastModified  time.Time
}

// ListInput carries caller supplied filters for submission lists
// zero valued optional fields are simply not applied
type ListInput struct {
	ContextID    int64   `json:"contextId" validate:"required,min=1"`
	Status       *int    `json:"status" validate:"omitempty,oneof=1 3 4 5"`
	StageIDs     []int   `json:"stageIds" validate:"omitempty,dive,min=1,max=5"`
	SectionIDs   []int64 `json:"sectionIds" validate:"omitempty,dive,min=1"`
	AssignedTo   *int64  `json:"assignedTo" validate:"omitempty,min=1"`
	IsIncomplete bool    `json:"isIncomplete"`
	DaysInactive *int    `json:"daysInactive" validate:"omitempty,min=1"`
	SearchPhrase string  `json:"searchPhrase" validate:"omitempty,max=200"`
	OrderBy      string  `json:"orderBy" validate:"omitempty,oneof=dateSubmitted lastModified title id"`
	OrderDesc    bool    `json:"orderDesc"`
	Offset       int     `json:"offset" validate:"omitempty,min=0"`
	Count        int     `json:"count" validate:"omitempty,min=0"`
	Strict       bool    `json:"strict"`
}
