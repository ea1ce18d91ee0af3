package assemble

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"seogen/internal/document"
)

// Statics are the fields the generation service must never author; they are
// attached to the document after the service call returns.
type Statics struct {
	Hero       *document.Hero
	Images     []document.Image
	Identifier *document.Identifier
}

// Attach merges the statics into the document. Images with no alt text get
// a default: a slug derived from the identifier handle (suffixed with a
// 1-based index when there are multiple images), or the URL's trailing path
// segment when no handle exists.
func Attach(doc *document.Document, s Statics) {
	doc.Hero = s.Hero
	doc.Identifier = s.Identifier

	if len(s.Images) == 0 {
		return
	}

	handle := ""
	if s.Identifier != nil {
		handle = s.Identifier.Handle
	}

	images := make([]document.Image, 0, len(s.Images))
	for i, img := range s.Images {
		if img.AltText == "" {
			img.AltText = defaultAltText(img.URL, handle, i, len(s.Images))
		}
		images = append(images, img)
	}
	doc.Images = images
}

func defaultAltText(rawURL, handle string, index, total int) string {
	if handle != "" {
		if total > 1 {
			return fmt.Sprintf("%s-%d", handle, index+1)
		}
		return handle
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return strings.TrimSuffix(u.Host, "/")
	}
	return base
}
