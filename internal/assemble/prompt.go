// Package assemble builds the request document and prompt handed to the
// generation service, and re-attaches the fields the service must never
// author.
package assemble

import (
	"fmt"
	"strings"

	"seogen/internal/document"
)

// FAQPolicy is the configurable FAQ count band. The required count has
// changed repeatedly, so it is policy rather than a constant: Exact demands
// exactly Max FAQs, otherwise the band is Min..Max with Max preferred.
type FAQPolicy struct {
	Min   int
	Max   int
	Exact bool
}

// Deficient reports whether a generated FAQ count falls below the policy.
func (p FAQPolicy) Deficient(count int) bool {
	return count < p.Min
}

func (p FAQPolicy) instruction() string {
	if p.Exact || p.Min == p.Max {
		return fmt.Sprintf("Create exactly %d FAQs", p.Max)
	}
	return fmt.Sprintf("Create between %d and %d FAQs (preferably %d)", p.Min, p.Max, p.Max)
}

// PromptBuilder constructs the content-generation prompts.
type PromptBuilder struct{}

// BuildContentPrompt serializes the request document and wraps it in the
// instruction block: title and meta description limits, paragraph and bullet
// fill rules, the FAQ count policy and the JSON-only reply contract.
func (pb *PromptBuilder) BuildContentPrompt(doc *document.Document, policy FAQPolicy) (string, error) {
	payload, err := doc.Encode()
	if err != nil {
		return "", fmt.Errorf("failed to serialize request document: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are an expert content writer and SEO specialist. You will receive a JSON structure for an article and need to fill it with high-quality, SEO-optimized content.\n")
	sb.WriteString("\nCURRENT JSON STRUCTURE:\n")
	sb.Write(payload)
	sb.WriteString("\nYour tasks:\n\n")
	sb.WriteString("1. **Title**: Create an SEO-friendly title tag (max 60 characters) for the \"head.title\" field\n")
	sb.WriteString("2. **Meta Description**: Create an SEO-friendly meta description (150-160 characters) for the \"head.meta_description\" field\n")
	sb.WriteString("3. **Content**: Fill in all empty \"paragraphs\" arrays with one or more 50-80 word paragraphs\n")
	sb.WriteString("4. **Bullet Points**: Fill in all empty \"bullets\" arrays with 3-5 relevant bullet points\n")
	fmt.Fprintf(&sb, "5. **FAQs**: %s in the \"body.faqs_html\" array, each in HTML format with:\n", policy.instruction())
	sb.WriteString("   - Question in <h2> tags\n")
	sb.WriteString("   - Answer in <p> tags\n")
	sb.WriteString("\nCRITICAL REQUIREMENTS:\n")
	sb.WriteString("- Keep the exact JSON structure - do not rename any keys\n")
	sb.WriteString("- Write engaging, informative content based on the topic\n")
	sb.WriteString("- Include relevant keywords naturally in the content\n")
	sb.WriteString("- FAQs should cover common questions about the topic\n")
	sb.WriteString("\nIMPORTANT: Return ONLY valid JSON. Do not include any explanations, markdown formatting, or text outside the JSON structure. The response must be parseable as valid JSON.\n")
	return sb.String(), nil
}

// BuildRetryPrompt appends a reminder to the original prompt naming the
// deficient FAQ count. Issued at most once per generation run.
func (pb *PromptBuilder) BuildRetryPrompt(base string, gotFAQs int, policy FAQPolicy) string {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\nREMINDER: Your previous response contained only ")
	fmt.Fprintf(&sb, "%d FAQs in \"body.faqs_html\". ", gotFAQs)
	fmt.Fprintf(&sb, "%s. This requirement is not optional.\n", policy.instruction())
	return sb.String()
}
