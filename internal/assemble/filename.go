package assemble

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"seogen/internal/keyword"
)

var (
	nonFilenameChars = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns    = regexp.MustCompile(`[-\s]+`)
)

// OutputFilename names a generated document: the validated handle when
// present, else the first primary keyword cleaned for the filesystem, plus a
// generation timestamp. Timestamped names avoid collisions, which is the
// only guarantee around whole-file overwrites.
func OutputFilename(handle string, records []keyword.Record, now time.Time) string {
	base := handle
	if base == "" {
		base = filenameBase(records)
	}
	return base + "_filled_" + now.Format("20060102_150405") + ".json"
}

// ExportFilename names a hierarchy-only export (no generated content).
func ExportFilename(records []keyword.Record) string {
	return filenameBase(records) + "_hierarchy.json"
}

func filenameBase(records []keyword.Record) string {
	primaries := make([]keyword.Record, 0)
	for _, r := range records {
		if r.Role == keyword.RolePrimary {
			primaries = append(primaries, r)
		}
	}
	if len(primaries) == 0 {
		return "keyword_content"
	}
	sort.SliceStable(primaries, func(i, j int) bool { return primaries[i].Order < primaries[j].Order })

	clean := nonFilenameChars.ReplaceAllString(primaries[0].Text, "")
	clean = separatorRuns.ReplaceAllString(clean, "_")
	clean = strings.ToLower(strings.Trim(clean, "_"))
	if clean == "" {
		return "keyword_content"
	}
	return clean
}
