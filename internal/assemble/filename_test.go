package assemble

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"seogen/internal/keyword"
)

var fixedTime = time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)

func TestOutputFilename_UsesHandleWhenPresent(t *testing.T) {
	got := OutputFilename("nail-art", nil, fixedTime)
	assert.Equal(t, "nail-art_filled_20260831_143005.json", got)
}

func TestOutputFilename_DerivesFromFirstPrimaryKeyword(t *testing.T) {
	records := []keyword.Record{
		{ID: 0, Text: "later primary", Role: keyword.RolePrimary, Order: 1},
		{ID: 1, Text: "Acrylic Nails!", Role: keyword.RolePrimary, Order: 0},
		{ID: 2, Text: "section", Role: keyword.RoleSection, Order: 0},
	}

	got := OutputFilename("", records, fixedTime)
	assert.Equal(t, "acrylic_nails_filled_20260831_143005.json", got)
}

func TestOutputFilename_FallsBackWithoutPrimary(t *testing.T) {
	got := OutputFilename("", []keyword.Record{{Text: "x", Role: keyword.RoleNone}}, fixedTime)
	assert.Equal(t, "keyword_content_filled_20260831_143005.json", got)
}

func TestExportFilename(t *testing.T) {
	records := []keyword.Record{
		{ID: 0, Text: "Gel Nails & Tips", Role: keyword.RolePrimary, Order: 0},
	}
	assert.Equal(t, "gel_nails_tips_hierarchy.json", ExportFilename(records))
}
