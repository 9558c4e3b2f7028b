// Package annotate decides whether a widget's primary anchors need an
// aria-label and rewrites the markup fragment accordingly. Label rules are
// resolved through a priority registry so hosts can extend or override the
// built-in widget coverage.
package annotate

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-a11yfix/pkg/detect"
	"github.com/goliatone/go-a11yfix/pkg/model"
	"github.com/goliatone/go-a11yfix/pkg/rules"
)

// Rule computes the label for a widget, or reports false when the widget
// should be left unmodified.
type Rule func(widgetType string, settings model.Settings) (string, bool)

type labelRule struct {
	widgetType string
	priority   int
	rule       Rule
	order      int
}

// Annotator applies label rules to rendered widget fragments. Higher
// priority rules win; ties fall back to registration order. A widget type
// with no registered rule always passes through untouched.
type Annotator struct {
	mu       sync.RWMutex
	rules    []labelRule
	ruleset  rules.Ruleset
	detector *detect.Detector
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithRuleset overrides the default ruleset used by the built-in rules.
func WithRuleset(rs rules.Ruleset) Option {
	return func(a *Annotator) {
		a.ruleset = rs
	}
}

// WithDetector supplies the suspicious-text detector the call-to-action
// rule delegates to. Without one, call-to-action widgets pass through.
func WithDetector(det *detect.Detector) Option {
	return func(a *Annotator) {
		a.detector = det
	}
}

// New constructs an Annotator with the built-in label rules registered.
func New(options ...Option) *Annotator {
	ann := &Annotator{ruleset: rules.Default()}
	for _, opt := range options {
		if opt != nil {
			opt(ann)
		}
	}
	ann.registerBuiltins()
	return ann
}

// Register adds a label rule for a widget type with the provided priority.
// Higher priority values take precedence over the built-ins.
func (a *Annotator) Register(widgetType string, priority int, rule Rule) {
	if a == nil || rule == nil {
		return
	}
	trimmed := strings.TrimSpace(widgetType)
	if trimmed == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.rules = append(a.rules, labelRule{
		widgetType: trimmed,
		priority:   priority,
		rule:       rule,
		order:      len(a.rules),
	})
}

// Annotate returns the fragment with aria-label added to qualifying
// anchors. The author-intent guard comes first: a widget whose settings
// carry link.custom_attributes is returned verbatim, since the author may
// already have supplied their own accessibility attributes. Any internal
// defect during label computation or rewrite degrades to returning the
// original markup; annotation never breaks a render.
func (a *Annotator) Annotate(widgetType string, settings model.Settings, markup string) (result string) {
	result = markup
	if a == nil {
		return result
	}
	defer func() {
		if recover() != nil {
			result = markup
		}
	}()

	if settings.Map("link").HasValue("custom_attributes") {
		return markup
	}

	decision := a.Decide(widgetType, settings)
	if !decision.ShouldAnnotate {
		return markup
	}
	return insertAnchorLabel(markup, decision.Label)
}

// Decide evaluates the label rules without touching any markup. Useful for
// hosts that want the decision and the rewrite in separate stages.
func (a *Annotator) Decide(widgetType string, settings model.Settings) model.AnnotationDecision {
	if a == nil {
		return model.AnnotationDecision{}
	}
	rule, ok := a.resolve(widgetType)
	if !ok {
		return model.AnnotationDecision{}
	}
	label, ok := rule(widgetType, settings)
	if !ok || label == "" {
		return model.AnnotationDecision{}
	}
	return model.AnnotationDecision{ShouldAnnotate: true, Label: label}
}

func (a *Annotator) resolve(widgetType string) (Rule, bool) {
	a.mu.RLock()
	matches := make([]labelRule, 0, 2)
	for _, entry := range a.rules {
		if entry.widgetType == widgetType {
			matches = append(matches, entry)
		}
	}
	a.mu.RUnlock()

	if len(matches) == 0 {
		return nil, false
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].priority == matches[j].priority {
			return matches[i].order < matches[j].order
		}
		return matches[i].priority > matches[j].priority
	})
	return matches[0].rule, true
}

func (a *Annotator) registerBuiltins() {
	fallback := func(widgetType string, settings model.Settings) (string, bool) {
		if title := strings.TrimSpace(settings.String("title_text")); title != "" {
			return title, true
		}
		label, ok := a.ruleset.FallbackLabel(widgetType)
		return label, ok
	}
	a.Register(model.WidgetImageBox, 10, fallback)
	a.Register(model.WidgetIconBox, 10, fallback)

	a.Register(model.WidgetCallToAction, 10, func(widgetType string, settings model.Settings) (string, bool) {
		if a.detector == nil {
			return "", false
		}
		return a.detector.Detect(settings, widgetType)
	})
}
