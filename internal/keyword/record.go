// Package keyword holds the flat keyword record model and the mutation rules
// for the working collection.
package keyword

import "fmt"

// Role is the structural tier a keyword is tagged into.
type Role string

const (
	RoleNone       Role = ""
	RolePrimary    Role = "primary"
	RoleSection    Role = "section"
	RoleSubSection Role = "subsection"
)

// ParseRole accepts the canonical role names plus the heading-style aliases
// used by spreadsheet exports (h1/h2/h3).
func ParseRole(s string) (Role, error) {
	switch s {
	case "primary", "h1", "H1":
		return RolePrimary, nil
	case "section", "h2", "H2":
		return RoleSection, nil
	case "subsection", "h3", "H3":
		return RoleSubSection, nil
	case "none", "":
		return RoleNone, nil
	}
	return RoleNone, fmt.Errorf("unknown role %q (expected primary, section, subsection or none)", s)
}

// Record is one flat keyword row. ID is unique within a collection and
// immutable once assigned. Order defines the rank within the record's role
// group; after a removal or reorder it is re-packed to a contiguous 0-based
// sequence, which the hierarchy builder relies on. ParentID references a
// section record's ID and is only meaningful for subsections.
type Record struct {
	ID           int     `json:"id"`
	Text         string  `json:"text"`
	SearchVolume int     `json:"search_volume"`
	Intent       string  `json:"intent,omitempty"`
	Difficulty   float64 `json:"difficulty"`
	CostPerClick float64 `json:"cost_per_click"`
	Role         Role    `json:"role"`
	Order        int     `json:"order"`
	ParentID     *int    `json:"parent_id,omitempty"`
}
