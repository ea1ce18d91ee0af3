package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seogen/internal/document"
)

func TestAttach_SetsHeroAndIdentifier(t *testing.T) {
	doc := &document.Document{Body: document.NewBody()}
	hero := &document.Hero{Tagline: "Shine on", CTAText: "Book now", CTALink: "/book"}
	ident := &document.Identifier{Handle: "nail-art", Tags: "nail art"}

	Attach(doc, Statics{Hero: hero, Identifier: ident})

	assert.Equal(t, hero, doc.Hero)
	assert.Equal(t, ident, doc.Identifier)
	assert.Nil(t, doc.Images)
}

func TestAttach_SingleImageAltDefaultsToHandle(t *testing.T) {
	doc := &document.Document{Body: document.NewBody()}

	Attach(doc, Statics{
		Identifier: &document.Identifier{Handle: "nail-art"},
		Images:     []document.Image{{URL: "https://cdn.example.com/img/123.jpg"}},
	})

	require.Len(t, doc.Images, 1)
	assert.Equal(t, "nail-art", doc.Images[0].AltText)
}

func TestAttach_MultipleImagesGetIndexedSlugs(t *testing.T) {
	doc := &document.Document{Body: document.NewBody()}

	Attach(doc, Statics{
		Identifier: &document.Identifier{Handle: "nail-art"},
		Images: []document.Image{
			{URL: "https://cdn.example.com/a.jpg"},
			{URL: "https://cdn.example.com/b.jpg"},
		},
	})

	require.Len(t, doc.Images, 2)
	assert.Equal(t, "nail-art-1", doc.Images[0].AltText)
	assert.Equal(t, "nail-art-2", doc.Images[1].AltText)
}

func TestAttach_NoHandleFallsBackToURLSegment(t *testing.T) {
	doc := &document.Document{Body: document.NewBody()}

	Attach(doc, Statics{
		Images: []document.Image{{URL: "https://cdn.example.com/photos/acrylic-set.jpg"}},
	})

	require.Len(t, doc.Images, 1)
	assert.Equal(t, "acrylic-set.jpg", doc.Images[0].AltText)
}

func TestAttach_ExplicitAltTextIsKept(t *testing.T) {
	doc := &document.Document{Body: document.NewBody()}

	Attach(doc, Statics{
		Identifier: &document.Identifier{Handle: "nail-art"},
		Images:     []document.Image{{URL: "https://x/y.jpg", AltText: "hand painted nails"}},
	})

	assert.Equal(t, "hand painted nails", doc.Images[0].AltText)
}
