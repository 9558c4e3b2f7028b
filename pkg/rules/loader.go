package rules

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a ruleset override document from the provided filesystem and
// merges it over the defaults. YAML and JSON documents are both accepted
// (JSON is a YAML subset). A nil filesystem or empty path returns the
// defaults untouched.
func Load(fsys fs.FS, path string) (Ruleset, error) {
	if fsys == nil || strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("rules: read %s: %w", path, err)
	}
	rs, err := Parse(data)
	if err != nil {
		return Ruleset{}, fmt.Errorf("rules: file %s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes an override document and merges it over Default. Fields
// absent from the document keep their default values, so a deployment can
// override just the phrase list without restating everything else.
func Parse(data []byte) (Ruleset, error) {
	var overrides Ruleset
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			return Ruleset{}, fmt.Errorf("rules: parse overrides: %w", err)
		}
	}
	return merge(Default(), overrides).Normalize()
}

func merge(base, overrides Ruleset) Ruleset {
	out := base
	if len(overrides.SuspiciousPhrases) > 0 {
		out.SuspiciousPhrases = overrides.SuspiciousPhrases
	}
	if len(overrides.CandidateFields) > 0 {
		out.CandidateFields = overrides.CandidateFields
	}
	if len(overrides.LabelFallbacks) > 0 {
		merged := make(map[string]string, len(base.LabelFallbacks)+len(overrides.LabelFallbacks))
		for widget, label := range base.LabelFallbacks {
			merged[widget] = label
		}
		for widget, label := range overrides.LabelFallbacks {
			merged[widget] = label
		}
		out.LabelFallbacks = merged
	}
	if strings.TrimSpace(overrides.LabelPrefix) != "" {
		out.LabelPrefix = overrides.LabelPrefix
	}
	if strings.TrimSpace(overrides.DefaultLabel) != "" {
		out.DefaultLabel = overrides.DefaultLabel
	}
	if len(overrides.RoleConflictMarkers) > 0 {
		out.RoleConflictMarkers = overrides.RoleConflictMarkers
	}
	return out
}
