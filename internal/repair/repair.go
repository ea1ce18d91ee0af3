// Package repair recovers a parseable document from raw generation-service
// output. The service is instructed to return bare JSON but in practice
// wraps it in prose, markdown fences or leaves trailing commas behind; this
// package handles exactly those observed damage patterns, nothing more.
package repair

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"seogen/internal/document"
)

// ErrNoStructuredOutput indicates that no parseable JSON object could be
// recovered from the raw text by any repair step.
var ErrNoStructuredOutput = errors.New("no valid structured output found")

//go:embed document.schema.json
var documentSchemaJSON string

var (
	schemaOnce     sync.Once
	documentSchema *jsonschema.Schema
	schemaErr      error
)

var (
	commaBeforeClose = regexp.MustCompile(`,\s*([}\]])`)
	commaBeforeQuote = regexp.MustCompile(`,\s*("\s*)$`)
)

// RecoverJSON applies the syntactic recovery ladder to raw text and returns
// the first variant that parses as a JSON value. Steps, each short-circuiting
// on success:
//
//  1. strict parse of the full text
//  2. greedy first-'{' to last-'}' span extraction
//  3. text-level repairs on the span, then reparse
//  4. one final attempt on the unrepaired span
//
// On total failure the raw text is logged for diagnosis and
// ErrNoStructuredOutput is returned.
func RecoverJSON(raw string) (string, error) {
	if parsesAsJSON(raw) {
		return raw, nil
	}

	span, ok := extractBraceSpan(raw)
	if !ok {
		log.Error().Str("raw_response", raw).Msg("generation output contains no JSON object")
		return "", ErrNoStructuredOutput
	}
	if parsesAsJSON(span) {
		return span, nil
	}

	repaired := applyTextRepairs(span)
	if parsesAsJSON(repaired) {
		return repaired, nil
	}
	if parsesAsJSON(span) {
		return span, nil
	}

	log.Error().Str("raw_response", raw).Msg("generation output unrecoverable after all repair attempts")
	return "", ErrNoStructuredOutput
}

// RepairAndParse recovers the JSON payload, decodes it into a document and
// re-validates it against the article schema.
func RepairAndParse(raw string) (*document.Document, error) {
	recovered, err := RecoverJSON(raw)
	if err != nil {
		return nil, err
	}

	doc, err := document.Decode([]byte(recovered))
	if err != nil {
		log.Error().Str("raw_response", raw).Err(err).Msg("recovered JSON does not decode as a document")
		return nil, fmt.Errorf("output not valid: %w", err)
	}

	if err := validateSchema([]byte(recovered)); err != nil {
		log.Error().Str("raw_response", raw).Err(err).Msg("recovered document failed schema validation")
		return nil, fmt.Errorf("output not valid: %w", err)
	}
	return doc, nil
}

func parsesAsJSON(s string) bool {
	var v any
	return json.Unmarshal([]byte(s), &v) == nil
}

// extractBraceSpan returns the greedy substring from the first '{' to the
// last '}'.
func extractBraceSpan(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

func applyTextRepairs(s string) string {
	s = commaBeforeClose.ReplaceAllString(s, "$1")
	s = commaBeforeQuote.ReplaceAllString(s, "$1")
	if idx := strings.LastIndex(s, "}"); idx >= 0 && idx < len(s)-1 {
		s = s[:idx+1]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), `"`)
	return s
}

func validateSchema(payload []byte) error {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("document.schema.json", strings.NewReader(documentSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		documentSchema, schemaErr = compiler.Compile("document.schema.json")
	})
	if schemaErr != nil {
		return fmt.Errorf("failed to compile document schema: %w", schemaErr)
	}

	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return err
	}
	return documentSchema.Validate(v)
}
