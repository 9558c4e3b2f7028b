// Package pipeline composes the annotation components in the call order a
// host rendering pipeline would use: suspicious-text detection feeding the
// label annotator per widget render, and role conflict resolution per
// container attribute computation.
package pipeline

import (
	"context"

	"github.com/goliatone/go-a11yfix/pkg/annotate"
	"github.com/goliatone/go-a11yfix/pkg/detect"
	"github.com/goliatone/go-a11yfix/pkg/diag"
	"github.com/goliatone/go-a11yfix/pkg/model"
	"github.com/goliatone/go-a11yfix/pkg/roles"
	"github.com/goliatone/go-a11yfix/pkg/rules"
)

// Pipeline wires a detector, annotator, and resolver behind the two host
// hooks. Every diagnostic the components emit is teed into an internal
// collector so batch audits can report findings as values.
type Pipeline struct {
	annotator *annotate.Annotator
	resolver  *roles.Resolver
	collector *diag.Collector
}

type config struct {
	ruleset   rules.Ruleset
	sink      diag.Sink
	annotator *annotate.Annotator
	detector  *detect.Detector
	resolver  *roles.Resolver
}

// Option configures pipeline construction.
type Option func(*config)

// WithRuleset overrides the ruleset used when building the default
// components.
func WithRuleset(rs rules.Ruleset) Option {
	return func(cfg *config) {
		cfg.ruleset = rs
	}
}

// WithSink routes component diagnostics to the provided sink in addition
// to the pipeline's internal collector.
func WithSink(sink diag.Sink) Option {
	return func(cfg *config) {
		if sink != nil {
			cfg.sink = sink
		}
	}
}

// WithAnnotator injects a pre-built annotator. The annotator keeps
// whatever detector and sink it was constructed with.
func WithAnnotator(ann *annotate.Annotator) Option {
	return func(cfg *config) {
		cfg.annotator = ann
	}
}

// WithDetector injects a pre-built detector used when the pipeline builds
// its own annotator.
func WithDetector(det *detect.Detector) Option {
	return func(cfg *config) {
		cfg.detector = det
	}
}

// WithResolver injects a pre-built role conflict resolver.
func WithResolver(res *roles.Resolver) Option {
	return func(cfg *config) {
		cfg.resolver = res
	}
}

// New constructs a Pipeline. Without options it runs the compiled-in
// ruleset and discards diagnostics apart from the internal collector.
func New(options ...Option) *Pipeline {
	cfg := &config{
		ruleset: rules.Default(),
		sink:    diag.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	collector := diag.NewCollector()
	sink := diag.Tee(cfg.sink, collector)

	detector := cfg.detector
	if detector == nil {
		detector = detect.New(
			detect.WithRuleset(cfg.ruleset),
			detect.WithSink(sink),
		)
	}
	annotator := cfg.annotator
	if annotator == nil {
		annotator = annotate.New(
			annotate.WithRuleset(cfg.ruleset),
			annotate.WithDetector(detector),
		)
	}
	resolver := cfg.resolver
	if resolver == nil {
		resolver = roles.New(
			roles.WithRuleset(cfg.ruleset),
			roles.WithSink(sink),
		)
	}

	return &Pipeline{
		annotator: annotator,
		resolver:  resolver,
		collector: collector,
	}
}

// ProcessWidget runs the per-render label annotation hook. It never fails
// a render: the only error returned is context cancellation, and even then
// the input markup comes back untouched.
func (p *Pipeline) ProcessWidget(ctx context.Context, wctx model.WidgetRenderContext) (string, error) {
	if p == nil {
		return wctx.Markup, nil
	}
	if err := ctx.Err(); err != nil {
		return wctx.Markup, err
	}
	return p.annotator.Annotate(wctx.WidgetType, wctx.Settings, wctx.Markup), nil
}

// ProcessContainer runs the container-attribute hook.
func (p *Pipeline) ProcessContainer(ctx context.Context, attrs model.Attributes) (model.Attributes, error) {
	if p == nil {
		return attrs, nil
	}
	if err := ctx.Err(); err != nil {
		return attrs, err
	}
	return p.resolver.Resolve(attrs), nil
}

// Diagnostics returns everything the components emitted through this
// pipeline so far.
func (p *Pipeline) Diagnostics() []model.Diagnostic {
	if p == nil {
		return nil
	}
	return p.collector.Records()
}

// ResetDiagnostics clears the internal collector.
func (p *Pipeline) ResetDiagnostics() {
	if p == nil {
		return
	}
	p.collector.Reset()
}
