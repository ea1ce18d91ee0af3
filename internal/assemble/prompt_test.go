package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seogen/internal/document"
)

func TestBuildContentPrompt_CarriesDocumentAndConstraints(t *testing.T) {
	doc := &document.Document{Body: document.NewBody()}
	doc.Body.PrimaryKeywords = append(doc.Body.PrimaryKeywords, document.Keyword{Text: "acrylic nails"})

	var pb PromptBuilder
	prompt, err := pb.BuildContentPrompt(doc, FAQPolicy{Min: 15, Max: 20})
	require.NoError(t, err)

	assert.Contains(t, prompt, `"acrylic nails"`)
	assert.Contains(t, prompt, "max 60 characters")
	assert.Contains(t, prompt, "150-160 characters")
	assert.Contains(t, prompt, "50-80 word paragraphs")
	assert.Contains(t, prompt, "3-5 relevant bullet points")
	assert.Contains(t, prompt, "Question in <h2> tags")
	assert.Contains(t, prompt, "Answer in <p> tags")
	assert.Contains(t, prompt, "do not rename any keys")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestBuildContentPrompt_BandPolicyPrefersMax(t *testing.T) {
	var pb PromptBuilder
	prompt, err := pb.BuildContentPrompt(&document.Document{Body: document.NewBody()}, FAQPolicy{Min: 15, Max: 20})
	require.NoError(t, err)
	assert.Contains(t, prompt, "between 15 and 20 FAQs (preferably 20)")
}

func TestBuildContentPrompt_ExactPolicy(t *testing.T) {
	var pb PromptBuilder
	prompt, err := pb.BuildContentPrompt(&document.Document{Body: document.NewBody()}, FAQPolicy{Min: 20, Max: 20, Exact: true})
	require.NoError(t, err)
	assert.Contains(t, prompt, "exactly 20 FAQs")
}

func TestBuildRetryPrompt_NamesDeficitAndKeepsBase(t *testing.T) {
	var pb PromptBuilder
	retry := pb.BuildRetryPrompt("BASE PROMPT", 3, FAQPolicy{Min: 15, Max: 20})

	assert.Contains(t, retry, "BASE PROMPT")
	assert.Contains(t, retry, "only 3 FAQs")
	assert.Contains(t, retry, "between 15 and 20")
}

func TestFAQPolicy_Deficient(t *testing.T) {
	p := FAQPolicy{Min: 15, Max: 20}
	assert.True(t, p.Deficient(14))
	assert.False(t, p.Deficient(15))
	assert.False(t, p.Deficient(25))
}
