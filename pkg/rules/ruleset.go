// Package rules holds the tunable parameters of the annotation pass. The
// compiled-in defaults reproduce the shipped behaviour; deployments can
// override individual lists from a YAML or JSON document without code
// changes.
package rules

import (
	"fmt"
	"strings"
)

// Ruleset parameterises the detector, annotator, and role resolver.
// Construct with Default and override fields, or load overrides with Load.
type Ruleset struct {
	// SuspiciousPhrases are the low-information link phrases matched
	// case-insensitively and exactly against candidate field values.
	SuspiciousPhrases []string `yaml:"suspicious_phrases"`

	// CandidateFields are the settings keys probed for link text, in
	// priority order. The first populated key decides; order is a
	// deliberate tie-break.
	CandidateFields []string `yaml:"candidate_fields"`

	// LabelFallbacks maps widget types to the label used when the widget
	// carries no usable title text.
	LabelFallbacks map[string]string `yaml:"label_fallbacks"`

	// LabelPrefix is prepended to the stripped title when synthesising a
	// contextual label for a suspicious link.
	LabelPrefix string `yaml:"label_prefix"`

	// DefaultLabel is the synthesised label when no title is available.
	DefaultLabel string `yaml:"default_label"`

	// RoleConflictMarkers are class substrings signalling an embedded
	// slider behaviour whose internal ARIA semantics conflict with a
	// host-assigned structural role. Matched case-sensitively.
	RoleConflictMarkers []string `yaml:"role_conflict_markers"`
}

// Default returns the compiled-in ruleset.
func Default() Ruleset {
	return Ruleset{
		SuspiciousPhrases: []string{
			"click here", "here", "read more", "more", "details", "link",
		},
		CandidateFields: []string{
			"button", "link_text", "read_more_text", "cta_text", "text",
		},
		LabelFallbacks: map[string]string{
			"image-box": "Image box",
			"icon-box":  "Icon box",
		},
		LabelPrefix:         "Learn more about ",
		DefaultLabel:        "Learn more",
		RoleConflictMarkers: []string{"swiper"},
	}
}

// Normalize trims entries, lowercases suspicious phrases, and removes
// duplicates while preserving order. It returns an error for lists that
// end up holding blank entries, so misconfigured overrides fail loudly at
// construction instead of silently matching everything.
func (r Ruleset) Normalize() (Ruleset, error) {
	phrases, err := normalizeList(r.SuspiciousPhrases, true, "suspicious_phrases")
	if err != nil {
		return Ruleset{}, err
	}
	fields, err := normalizeList(r.CandidateFields, false, "candidate_fields")
	if err != nil {
		return Ruleset{}, err
	}
	markers, err := normalizeList(r.RoleConflictMarkers, false, "role_conflict_markers")
	if err != nil {
		return Ruleset{}, err
	}

	out := r
	out.SuspiciousPhrases = phrases
	out.CandidateFields = fields
	out.RoleConflictMarkers = markers
	out.DefaultLabel = strings.TrimSpace(r.DefaultLabel)
	return out, nil
}

// IsSuspicious reports whether value matches a suspicious phrase after
// trimming and case folding. Matching is exact, never substring.
func (r Ruleset) IsSuspicious(value string) bool {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return false
	}
	for _, phrase := range r.SuspiciousPhrases {
		if strings.ToLower(phrase) == needle {
			return true
		}
	}
	return false
}

// FallbackLabel returns the configured fallback for a widget type.
func (r Ruleset) FallbackLabel(widgetType string) (string, bool) {
	label, ok := r.LabelFallbacks[widgetType]
	return label, ok
}

func normalizeList(values []string, fold bool, name string) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		entry := strings.TrimSpace(value)
		if entry == "" {
			return nil, fmt.Errorf("rules: %s contains a blank entry", name)
		}
		if fold {
			entry = strings.ToLower(entry)
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}
	return out, nil
}
