// Package domain defines author types and ports
package domain

// EntityType is the wire stable type name used in hook names
const EntityType = "Author"

// Author is a contributor attached to a submission
type Author struct {
	ID           int64
	SubmissionID int64
	GivenName    string
	FamilyName   string
	Email        string
	Affiliation  *string
	ORCID        *string
	Seq          int
}

// FullName renders the display name the way list views expect it
func (a *Author) FullName() string {
	if a.FamilyName == "" {
		return a.GivenName
	}
	return a.GivenName + " " + a.FamilyName
}

// ListInput carries caller supplied filters for author lists
type ListInput struct {
	SubmissionIDs []int64 `json:"submissionIds" validate:"omitempty,dive,min=1"`
	SearchPhrase  string  `json:"searchPhrase" validate:"omitempty,max=200"`
	OrderBy       string  `json:"orderBy" validate:"omitempty,oneof=familyName seq id"`
	OrderDesc     bool    `json:"orderDesc"`
	Offset        int     `json:"offset" validate:"omitempty,min=0"`
	Count         int     `json:"count" validate:"omitempty,min=0"`
	Strict        bool    `json:"strict"`
}
