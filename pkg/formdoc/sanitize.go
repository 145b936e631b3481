package formdoc

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	hintPolicyOnce sync.Once
	hintPolicy     *bluemonday.Policy
)

// sanitizeHint strips HTML markup from human-facing hint strings before they
// reach the model. Plain text, the common case, passes through untouched so
// markdown punctuation is not entity-escaped.
func sanitizeHint(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.ContainsRune(trimmed, '<') {
		return trimmed
	}
	cleaned := hintSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(cleaned)
}

func hintSanitizer() *bluemonday.Policy {
	hintPolicyOnce.Do(func() {
		hintPolicy = bluemonday.StrictPolicy()
	})
	return hintPolicy
}
