// Package pipeline orchestrates one content-generation run: snapshot the
// collection, assemble the request document and prompt, call the generation
// service, repair and validate the reply, attach the static fields and
// persist the result.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"seogen/internal/assemble"
	"seogen/internal/document"
	"seogen/internal/faq"
	"seogen/internal/generation"
	"seogen/internal/hierarchy"
	"seogen/internal/identifier"
	"seogen/internal/keyword"
	"seogen/internal/repair"
)

type Options struct {
	Handle    string
	Tags      string
	Hero      *document.Hero
	Images    []document.Image
	OutputDir string
	Policy    assemble.FAQPolicy
}

// Summary reports what a run produced. It stays inspectable even when
// persisting the file failed.
type Summary struct {
	Title           string
	MetaDescription string
	Sections        int
	FAQs            int
	Filename        string
	Elapsed         time.Duration
}

type Generation struct {
	gen generation.Generator
	pb  assemble.PromptBuilder
	now func() time.Time
}

func NewGeneration(gen generation.Generator) *Generation {
	return &Generation{gen: gen, now: time.Now}
}

func (p *Generation) Run(ctx context.Context, records []keyword.Record, opts Options) (*Summary, error) {
	start := p.now()

	if len(records) == 0 {
		return nil, keyword.ErrNoCollection
	}

	// Validation aborts before any external call is made.
	ident, err := p.identifierStage(opts)
	if err != nil {
		return nil, err
	}

	request := &document.Document{Body: hierarchy.Build(records)}
	prompt, err := p.pb.BuildContentPrompt(request, opts.Policy)
	if err != nil {
		return nil, err
	}

	raw, err := p.generateStage(ctx, prompt)
	if err != nil {
		return nil, err
	}

	doc, err := repair.RepairAndParse(raw)
	if err != nil {
		return nil, err
	}

	doc = p.enforceFAQPolicy(ctx, prompt, doc, opts.Policy)

	assemble.Attach(doc, assemble.Statics{
		Hero:       opts.Hero,
		Images:     opts.Images,
		Identifier: ident,
	})

	if schema := faq.Extract(doc.Body.FAQs); len(schema.MainEntity) > 0 {
		doc.Script = &document.Script{FAQSchema: &schema}
	}

	handle := ""
	if ident != nil {
		handle = ident.Handle
	}
	filename := assemble.OutputFilename(handle, records, p.now())

	summary := &Summary{
		Title:           doc.Head.Title,
		MetaDescription: doc.Head.MetaDescription,
		Sections:        len(doc.Body.Sections),
		FAQs:            len(doc.Body.FAQs),
		Filename:        filename,
		Elapsed:         p.now().Sub(start),
	}

	if err := persist(doc, opts.OutputDir, filename); err != nil {
		return summary, err
	}
	return summary, nil
}

func (p *Generation) identifierStage(opts Options) (*document.Identifier, error) {
	if opts.Handle == "" && opts.Tags == "" {
		return nil, nil
	}

	handle := ""
	if opts.Handle != "" {
		h, err := identifier.ValidateHandle(opts.Handle)
		if err != nil {
			return nil, err
		}
		handle = h
	}

	tags, err := identifier.ValidateTags(opts.Tags, handle)
	if err != nil {
		return nil, err
	}
	return &document.Identifier{Handle: handle, Tags: tags}, nil
}

// generateStage calls the service, retrying exactly once on transport
// failure or timeout.
func (p *Generation) generateStage(ctx context.Context, prompt string) (string, error) {
	raw, err := p.gen.Generate(ctx, prompt)
	if err == nil {
		return raw, nil
	}
	log.Warn().Err(err).Msg("generation call failed, retrying once")

	raw, err = p.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to call generation service: %w", err)
	}
	return raw, nil
}

// enforceFAQPolicy issues at most one regeneration when the FAQ count is
// deficient. A regeneration that parses replaces the original even if still
// short; one that fails keeps the deficient original. Partial success beats
// total failure here.
func (p *Generation) enforceFAQPolicy(ctx context.Context, prompt string, doc *document.Document, policy assemble.FAQPolicy) *document.Document {
	count := len(doc.Body.FAQs)
	if !policy.Deficient(count) {
		return doc
	}

	log.Info().Int("got", count).Int("min", policy.Min).Msg("FAQ count below policy, regenerating once")
	retryPrompt := p.pb.BuildRetryPrompt(prompt, count, policy)

	raw, err := p.gen.Generate(ctx, retryPrompt)
	if err != nil {
		log.Warn().Err(err).Msg("FAQ regeneration call failed, keeping original result")
		return doc
	}

	regenerated, err := repair.RepairAndParse(raw)
	if err != nil {
		log.Warn().Err(err).Msg("FAQ regeneration did not parse, keeping original result")
		return doc
	}
	return regenerated
}

// persist re-serializes and re-parses the document as a last defensive
// check; malformed output must never reach disk.
func persist(doc *document.Document, dir, filename string) error {
	b, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("failed to serialize final document: %w", err)
	}
	if _, err := document.Decode(b); err != nil {
		return fmt.Errorf("final document failed validation, refusing to persist: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
