package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seogen/internal/keyword"
)

func TestLoad_ParsesSemicolonExport(t *testing.T) {
	csv := "Keyword ; Volume ;Keyword Difficulty;CPC (CAD);Intent\n" +
		"acrylic nails;1200;35.5;1.20;Commercial\n" +
		"gel nails;800;20;0.80;Informational\n"

	records, err := Load(strings.NewReader(csv), ';')
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 0, records[0].ID)
	assert.Equal(t, "acrylic nails", records[0].Text)
	assert.Equal(t, 1200, records[0].SearchVolume)
	assert.Equal(t, 35.5, records[0].Difficulty)
	assert.Equal(t, 1.20, records[0].CostPerClick)
	assert.Equal(t, "Commercial", records[0].Intent)
	assert.Equal(t, keyword.RoleNone, records[0].Role)
	assert.Equal(t, 0, records[0].Order)
	assert.Equal(t, 1, records[1].Order)
}

func TestLoad_DropsRowsWithBadVolume(t *testing.T) {
	csv := "Keyword;Volume\n" +
		"good;500\n" +
		"bad;n/a\n" +
		"missing;\n" +
		"floaty;250.0\n"

	records, err := Load(strings.NewReader(csv), ';')
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "good", records[0].Text)
	assert.Equal(t, 250, records[1].SearchVolume)
}

func TestLoad_DeduplicatesKeepingFirst(t *testing.T) {
	csv := "Keyword;Volume\n" +
		"nails;900\n" +
		"nails;100\n"

	records, err := Load(strings.NewReader(csv), ';')
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 900, records[0].SearchVolume)
}

func TestLoad_DefaultsOptionalColumns(t *testing.T) {
	csv := "Keyword;Volume\nnails;900\n"

	records, err := Load(strings.NewReader(csv), ';')
	require.NoError(t, err)
	assert.Zero(t, records[0].Difficulty)
	assert.Zero(t, records[0].CostPerClick)
	assert.Empty(t, records[0].Intent)
}

func TestLoad_MissingRequiredColumnFails(t *testing.T) {
	_, err := Load(strings.NewReader("Keyword;CPC\nnails;1.0\n"), ';')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Volume")
}

func TestLoad_NoUsableRowsFails(t *testing.T) {
	_, err := Load(strings.NewReader("Keyword;Volume\nonly;bad\n"), ';')
	assert.Error(t, err)
}
