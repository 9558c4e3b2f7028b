// Package detect implements the suspicious-link-text check: it probes the
// settings keys known to carry link text, flags low-information phrases,
// and synthesises a contextual replacement label from the widget title.
package detect

import (
	"github.com/goliatone/go-a11yfix/pkg/diag"
	"github.com/goliatone/go-a11yfix/pkg/model"
	"github.com/goliatone/go-a11yfix/pkg/rules"
)

// Detector evaluates widget settings against the suspicious phrase rules.
// A Detector is stateless between calls and safe for concurrent use.
type Detector struct {
	rules rules.Ruleset
	sink  diag.Sink
}

// Option configures a Detector.
type Option func(*Detector)

// WithRuleset overrides the default ruleset.
func WithRuleset(rs rules.Ruleset) Option {
	return func(d *Detector) {
		d.rules = rs
	}
}

// WithSink routes diagnostics to the provided sink.
func WithSink(sink diag.Sink) Option {
	return func(d *Detector) {
		if sink != nil {
			d.sink = sink
		}
	}
}

// New constructs a Detector with the compiled-in ruleset and a discard
// sink unless overridden.
func New(options ...Option) *Detector {
	det := &Detector{
		rules: rules.Default(),
		sink:  diag.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(det)
		}
	}
	return det
}

// Detect probes the candidate fields in priority order and, on the first
// suspicious value, emits a warning diagnostic and returns a synthesised
// label. The second return is false when no field matches; no diagnostic
// is produced in that case. Given identical settings the result is always
// identical.
func (d *Detector) Detect(settings model.Settings, widgetName string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, field := range d.rules.CandidateFields {
		value := settings.String(field)
		if value == "" || !d.rules.IsSuspicious(value) {
			continue
		}
		diag.SafeEmit(d.sink, model.Warn("suspicious link text", map[string]any{
			"widget": widgetName,
			"field":  field,
			"value":  value,
		}))
		return d.synthesizeLabel(settings), true
	}
	return "", false
}

func (d *Detector) synthesizeLabel(settings model.Settings) string {
	if title := StripTags(settings.String("title")); title != "" {
		return d.rules.LabelPrefix + title
	}
	return d.rules.DefaultLabel
}
