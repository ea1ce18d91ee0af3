// Package document defines the nested article shape exchanged with the
// generation service and persisted for downstream publishing. Field order in
// the struct definitions is significant: consumers rely on the serialized key
// order hero, head, body, images, script, identifier.
package document

import (
	"encoding/json"

	"seogen/internal/faq"
)

type Document struct {
	Hero       *Hero       `json:"hero,omitempty"`
	Head       Head        `json:"head"`
	Body       Body        `json:"body"`
	Images     []Image     `json:"images,omitempty"`
	Script     *Script     `json:"script,omitempty"`
	Identifier *Identifier `json:"identifier,omitempty"`
}

type Head struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
}

type Body struct {
	PrimaryKeywords []Keyword `json:"primary_keywords"`
	Sections        []Section `json:"sections"`
	FAQs            []string  `json:"faqs_html"`
}

type Keyword struct {
	Text string `json:"text"`
}

type Section struct {
	Text        string       `json:"text"`
	Paragraphs  []string     `json:"paragraphs"`
	Bullets     []string     `json:"bullets"`
	SubSections []SubSection `json:"sub_sections"`
}

type SubSection struct {
	Text       string   `json:"text"`
	Paragraphs []string `json:"paragraphs"`
	Bullets    []string `json:"bullets"`
}

type Hero struct {
	Tagline string `json:"tagline"`
	CTAText string `json:"cta_text"`
	CTALink string `json:"cta_link"`
	Image   string `json:"image,omitempty"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
}

type Script struct {
	FAQSchema *faq.Schema `json:"faq_schema"`
}

type Identifier struct {
	Handle string `json:"handle,omitempty"`
	Tags   string `json:"tags,omitempty"`
}

// NewBody returns a body whose slices are allocated, so that the serialized
// form carries explicit empty arrays rather than nulls. The generation
// service is instructed to fill those arrays in place.
func NewBody() Body {
	return Body{
		PrimaryKeywords: []Keyword{},
		Sections:        []Section{},
		FAQs:            []string{},
	}
}

// Encode serializes the document with two-space indentation and a trailing
// newline, the format written to disk and embedded into prompts.
func (d *Document) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Decode parses a serialized document. It is strict JSON only; recovering
// damaged service output is the repair package's job.
func Decode(b []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
