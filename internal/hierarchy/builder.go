// Package hierarchy converts the flat tagged collection into the nested
// document body.
package hierarchy

import (
	"sort"

	"seogen/internal/document"
	"seogen/internal/keyword"
)

// Build partitions records by role and nests them into a document body.
// Only explicitly tagged records become content structure: untagged records
// are excluded, and a subsection whose parent id matches no section is
// dropped silently. Each partition is sorted by Order ascending; the sort is
// stable so equal orders keep their original relative sequence.
//
// Subsections are attached by scanning sections outer and subsections inner,
// filtering on parent-id equality, so a subsection's position under its
// parent follows its own global Order.
func Build(records []keyword.Record) document.Body {
	body := document.NewBody()

	primaries := partition(records, keyword.RolePrimary)
	sections := partition(records, keyword.RoleSection)
	subs := partition(records, keyword.RoleSubSection)

	for _, r := range primaries {
		body.PrimaryKeywords = append(body.PrimaryKeywords, document.Keyword{Text: r.Text})
	}

	for _, sec := range sections {
		entry := document.Section{
			Text:        sec.Text,
			Paragraphs:  []string{},
			Bullets:     []string{},
			SubSections: []document.SubSection{},
		}
		for _, sub := range subs {
			if sub.ParentID == nil || *sub.ParentID != sec.ID {
				continue
			}
			entry.SubSections = append(entry.SubSections, document.SubSection{
				Text:       sub.Text,
				Paragraphs: []string{},
				Bullets:    []string{},
			})
		}
		body.Sections = append(body.Sections, entry)
	}

	return body
}

func partition(records []keyword.Record, role keyword.Role) []keyword.Record {
	out := make([]keyword.Record, 0, len(records))
	for _, r := range records {
		if r.Role == role {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
