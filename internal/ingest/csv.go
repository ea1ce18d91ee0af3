// Package ingest loads keyword research exports into a flat collection.
// The expected format is a delimited CSV with a keyword column, a numeric
// volume column and optional difficulty, CPC and intent columns.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"seogen/internal/keyword"
)

type columns struct {
	keyword    int
	volume     int
	difficulty int
	cpc        int
	intent     int
}

// LoadFile reads a CSV export from disk.
func LoadFile(path string, delimiter rune) ([]keyword.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, delimiter)
}

// Load parses the export. Header names are trimmed before matching. Rows
// with a missing or non-numeric volume are dropped, duplicate keyword text
// is de-duplicated keeping the first occurrence, and missing difficulty/CPC
// values default to zero. Records come out untagged with order = position.
func Load(r io.Reader, delimiter rune) ([]keyword.Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]keyword.Record, 0)
	seen := make(map[string]bool)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		text := strings.TrimSpace(field(row, cols.keyword))
		if text == "" || seen[text] {
			continue
		}

		volume, ok := parseVolume(field(row, cols.volume))
		if !ok {
			continue
		}

		seen[text] = true
		records = append(records, keyword.Record{
			ID:           len(records),
			Text:         text,
			SearchVolume: volume,
			Intent:       strings.TrimSpace(field(row, cols.intent)),
			Difficulty:   parseFloatOrZero(field(row, cols.difficulty)),
			CostPerClick: parseFloatOrZero(field(row, cols.cpc)),
			Role:         keyword.RoleNone,
			Order:        len(records),
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no usable keyword rows found")
	}
	return records, nil
}

func mapColumns(header []string) (columns, error) {
	cols := columns{keyword: -1, volume: -1, difficulty: -1, cpc: -1, intent: -1}
	for i, name := range header {
		switch n := strings.ToLower(strings.TrimSpace(name)); {
		case n == "keyword":
			cols.keyword = i
		case n == "volume":
			cols.volume = i
		case strings.Contains(n, "difficulty"):
			cols.difficulty = i
		case strings.HasPrefix(n, "cpc"):
			cols.cpc = i
		case n == "intent":
			cols.intent = i
		}
	}
	if cols.keyword < 0 {
		return cols, fmt.Errorf("missing required column: Keyword")
	}
	if cols.volume < 0 {
		return cols, fmt.Errorf("missing required column: Volume")
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseVolume accepts integers and float-formatted integers ("1200.0"),
// which some export tools emit.
func parseVolume(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int(f), true
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
