// Package roles resolves ARIA role conflicts on loop/container wrapper
// elements. A slider behaviour module attaches its own internal ARIA
// semantics to the container; a structural role computed separately by the
// host must not coexist with that implicit role model, so the host-assigned
// role is dropped rather than reconciled.
package roles

import (
	"strings"

	"github.com/goliatone/go-a11yfix/pkg/diag"
	"github.com/goliatone/go-a11yfix/pkg/model"
	"github.com/goliatone/go-a11yfix/pkg/rules"
)

// Resolver strips a host-assigned role from containers whose class list
// carries a slider marker. Stateless between calls and safe for concurrent
// use.
type Resolver struct {
	rules rules.Ruleset
	sink  diag.Sink
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRuleset overrides the default marker substrings.
func WithRuleset(rs rules.Ruleset) Option {
	return func(r *Resolver) {
		r.rules = rs
	}
}

// WithSink routes diagnostic snapshots to the provided sink.
func WithSink(sink diag.Sink) Option {
	return func(r *Resolver) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// New constructs a Resolver with the compiled-in ruleset and a discard
// sink unless overridden.
func New(options ...Option) *Resolver {
	res := &Resolver{
		rules: rules.Default(),
		sink:  diag.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(res)
		}
	}
	return res
}

// Resolve returns the attribute set with the role entry removed when the
// class list carries a slider marker. The input map is never mutated; when
// no change applies, the input is returned as-is. A snapshot diagnostic is
// emitted on entry and another after the decision, unconditionally, so a
// host can audit before/after states.
func (r *Resolver) Resolve(attrs model.Attributes) model.Attributes {
	if r == nil {
		return attrs
	}
	diag.SafeEmit(r.sink, model.Info("container attributes before role check", map[string]any{
		"attributes": attrs.Clone(),
	}))

	out := attrs
	if r.hasConflict(attrs) {
		out = attrs.Clone()
		delete(out, model.AttrRole)
	}

	diag.SafeEmit(r.sink, model.Info("container attributes after role check", map[string]any{
		"attributes": out.Clone(),
		"changed":    len(out) != len(attrs),
	}))
	return out
}

func (r *Resolver) hasConflict(attrs model.Attributes) bool {
	if _, ok := attrs[model.AttrRole]; !ok {
		return false
	}
	classes, ok := attrs.Classes()
	if !ok {
		return false
	}
	for _, class := range classes {
		for _, marker := range r.rules.RoleConflictMarkers {
			if strings.Contains(class, marker) {
				return true
			}
		}
	}
	return false
}
