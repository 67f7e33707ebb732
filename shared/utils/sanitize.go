package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const maxSanitizePasses = 8

// TextSanitizer strips every HTML element from user text. Entities are
// unescaped after each pass, so markup that arrived entity-escaped is
// stripped on the next pass. The result is stable under Text.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *TextSanitizer) Text(text string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
		if next == text {
			return next
		}
		text = next
	}
	// nested escaping deeper than the pass limit stays escaped
	return strings.TrimSpace(s.policy.Sanitize(text))
}
