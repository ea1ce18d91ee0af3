// Package identifier validates the human-entered handle and tag list that
// get attached to the final document.
package identifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ValidateHandle normalizes and validates a URL-safe handle. The input is
// trimmed and lowercased, then internal whitespace runs collapse to single
// hyphens. The result must contain only [a-z0-9-], must not start or end
// with a hyphen and must not contain a double hyphen.
func ValidateHandle(raw string) (string, error) {
	handle := strings.TrimSpace(raw)
	if handle == "" {
		return "", fmt.Errorf("handle must not be empty")
	}

	handle = strings.ToLower(handle)
	handle = whitespaceRun.ReplaceAllString(handle, "-")

	for _, r := range handle {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return "", fmt.Errorf("handle contains invalid character %q, only lowercase letters, digits and hyphens are allowed", r)
		}
	}
	if strings.HasPrefix(handle, "-") || strings.HasSuffix(handle, "-") {
		return "", fmt.Errorf("handle must not start or end with a hyphen")
	}
	if strings.Contains(handle, "--") {
		return "", fmt.Errorf("handle must not contain consecutive hyphens")
	}
	return handle, nil
}

// ValidateTags normalizes a comma-separated tag list. When a handle is
// supplied it is the single source of truth: the tag is derived from it by
// replacing hyphens with spaces and the explicit tag text is ignored.
// Otherwise the raw list is split on commas, trimmed, empty tokens dropped
// and the survivors rejoined with ", ". Tokens may contain only letters,
// digits and whitespace.
func ValidateTags(raw, handle string) (string, error) {
	if handle != "" {
		return strings.ReplaceAll(handle, "-", " "), nil
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("tags must not be empty")
	}

	tokens := make([]string, 0)
	for _, part := range strings.Split(trimmed, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		for _, r := range token {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
				return "", fmt.Errorf("tag %q contains invalid character %q", token, r)
			}
		}
		tokens = append(tokens, token)
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("tags must contain at least one non-empty entry")
	}
	return strings.Join(tokens, ", "), nil
}
