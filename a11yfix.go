// Package a11yfix is an automated accessibility-annotation pass for
// rendered widget markup. Given a widget's type, settings, and HTML
// fragment it repairs two WCAG defect classes without human intervention:
// missing or ambiguous link labelling (an aria-label is synthesised and
// inserted, never overriding explicit author attributes), and conflicting
// structural roles on slider/carousel containers (the host-assigned role
// is dropped when an embedded slider supplies its own ARIA semantics).
//
// The root package re-exports the common types and wires the component
// packages together; hosts wanting finer control can use pkg/annotate,
// pkg/detect, pkg/roles, and pkg/pipeline directly.
package a11yfix

import (
	"context"

	"github.com/goliatone/go-a11yfix/pkg/diag"
	"github.com/goliatone/go-a11yfix/pkg/model"
	"github.com/goliatone/go-a11yfix/pkg/pipeline"
	"github.com/goliatone/go-a11yfix/pkg/rules"
)

// Settings aliases the widget settings map consumed by the annotator.
type Settings = model.Settings

// Attributes aliases the container attribute set consumed by the resolver.
type Attributes = model.Attributes

// WidgetRenderContext aliases the per-render input bundle.
type WidgetRenderContext = model.WidgetRenderContext

// Diagnostic aliases the structured record emitted on the side channel.
type Diagnostic = model.Diagnostic

// Ruleset aliases the tunable rule parameters.
type Ruleset = rules.Ruleset

// Option aliases pipeline construction options.
type Option = pipeline.Option

// New constructs an annotation pipeline.
func New(options ...Option) *pipeline.Pipeline {
	return pipeline.New(options...)
}

// WithRuleset overrides the compiled-in rule parameters.
func WithRuleset(rs Ruleset) Option {
	return pipeline.WithRuleset(rs)
}

// WithSink routes component diagnostics to the provided sink.
func WithSink(sink diag.Sink) Option {
	return pipeline.WithSink(sink)
}

// AnnotateWidget runs the per-render hook once: detector (where the widget
// type delegates to it) then annotator. It is the simplest entry point for
// hosts that do not hold a pipeline.
func AnnotateWidget(ctx context.Context, widgetType string, settings Settings, markup string, options ...Option) (string, error) {
	return New(options...).ProcessWidget(ctx, WidgetRenderContext{
		WidgetType: widgetType,
		Settings:   settings,
		Markup:     markup,
	})
}

// ResolveContainerRole runs the container-attribute hook once.
func ResolveContainerRole(ctx context.Context, attrs Attributes, options ...Option) (Attributes, error) {
	return New(options...).ProcessContainer(ctx, attrs)
}
