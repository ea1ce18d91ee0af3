// Package faq turns generated FAQ markup fragments into schema.org FAQPage
// structured data. Extraction is deliberately regex-based and best-effort:
// the fragments come from an LLM and are only expected to contain one <h2>
// and one <p> each.
package faq

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// Schema is the JSON-LD FAQPage wrapper emitted under script.faq_schema.
type Schema struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

var (
	questionRe = regexp.MustCompile(`(?is)<h2[^>]*>(.*?)</h2>`)
	answerRe   = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	tagRe      = regexp.MustCompile(`(?s)<[^>]+>`)
)

// Extract parses question/answer pairs out of the fragments, preserving
// input order. Fragments missing either tag, or whose question or answer is
// empty after markup stripping, are skipped with a warning. Zero usable
// fragments yield an empty (but well-formed) schema, not an error.
func Extract(fragments []string) Schema {
	schema := Schema{
		Context:    "https://schema.org",
		Type:       "FAQPage",
		MainEntity: []Question{},
	}

	for i, frag := range fragments {
		q := questionRe.FindStringSubmatch(frag)
		a := answerRe.FindStringSubmatch(frag)
		if q == nil || a == nil {
			log.Warn().Int("fragment", i).Msg("FAQ fragment missing <h2> or <p> tag, skipping")
			continue
		}

		question := strings.TrimSpace(tagRe.ReplaceAllString(q[1], ""))
		answer := strings.TrimSpace(tagRe.ReplaceAllString(a[1], ""))
		if question == "" || answer == "" {
			log.Warn().Int("fragment", i).Msg("FAQ fragment empty after markup stripping, skipping")
			continue
		}

		schema.MainEntity = append(schema.MainEntity, Question{
			Type: "Question",
			Name: question,
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: answer,
			},
		})
	}

	return schema
}
