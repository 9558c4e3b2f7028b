package detect

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// StripTags reduces a title to its plain text: markup is removed and
// entities decoded, so synthesised labels never carry embedded tags.
func StripTags(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := tagStripper().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func tagStripper() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}
