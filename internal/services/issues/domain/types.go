// Package domain defines issue types and ports
package domain

import (
	"fmt"
	"time"
)

// EntityType is the wire stable type name used in hook names
const EntityType = "Issue"

// Issue is a published or forthcoming journal issue
type Issue struct {
	ID            int64
	ContextID     int64
	Volume        int
	Number        string
	Year          int
	Title         *string
	Published     bool
	DatePublished *time.Time
}

// Identification renders the citation style issue label, eg
// "Vol. 12 No. 3 (2024): Special Issue"
func (i *Issue) Identification() string {
	s := fmt.Sprintf("Vol. %d No. %s (%d)", i.Volume, i.Number, i.Year)
	if i.Title != nil && *i.Title != "" {
		s += ": " + *i.Title
	}
	return s
}

// ListInput carries caller supplied filters for issue lists
type ListInput struct {
	ContextID   int64  `json:"contextId" validate:"required,min=1"`
	IsPublished *bool  `json:"isPublished"`
	Volume      *int   `json:"volume" validate:"omitempty,min=1"`
	Years       []int  `json:"years" validate:"omitempty,dive,min=1000,max=9999"`
	OrderBy     string `json:"orderBy" validate:"omitempty,oneof=datePublished year id"`
	OrderDesc   bool   `json:"orderDesc"`
	Offset      int    `json:"offset" validate:"omitempty,min=0"`
	Count       int    `json:"count" validate:"omitempty,min=0"`
	Strict      bool   `json:"strict"`
}
