package pipeline

import (
	"context"

	"github.com/goliatone/go-a11yfix/pkg/model"
)

// WidgetAudit pairs a widget render with its annotated output.
type WidgetAudit struct {
	WidgetType string
	Input      string
	Output     string
	Changed    bool
}

// ContainerAudit pairs a container attribute set with its resolved output.
type ContainerAudit struct {
	Input   model.Attributes
	Output  model.Attributes
	Changed bool
}

// AuditResult is the outcome of a batch run: per-item before/after pairs
// plus every diagnostic emitted while processing the batch.
type AuditResult struct {
	Widgets     []WidgetAudit
	Containers  []ContainerAudit
	Diagnostics []model.Diagnostic
}

// Audit processes a batch of widget renders and container attribute sets
// and returns the collected outcomes. The internal collector is reset at
// entry so the returned diagnostics cover exactly this batch. Cancellation
// is checked between items; items already processed stay in the result
// alongside the error.
func (p *Pipeline) Audit(ctx context.Context, widgets []model.WidgetRenderContext, containers []model.Attributes) (AuditResult, error) {
	result := AuditResult{}
	if p == nil {
		return result, nil
	}
	p.ResetDiagnostics()

	for _, wctx := range widgets {
		output, err := p.ProcessWidget(ctx, wctx)
		if err != nil {
			result.Diagnostics = p.Diagnostics()
			return result, err
		}
		result.Widgets = append(result.Widgets, WidgetAudit{
			WidgetType: wctx.WidgetType,
			Input:      wctx.Markup,
			Output:     output,
			Changed:    output != wctx.Markup,
		})
	}

	for _, attrs := range containers {
		output, err := p.ProcessContainer(ctx, attrs)
		if err != nil {
			result.Diagnostics = p.Diagnostics()
			return result, err
		}
		_, hadRole := attrs[model.AttrRole]
		_, hasRole := output[model.AttrRole]
		result.Containers = append(result.Containers, ContainerAudit{
			Input:   attrs,
			Output:  output,
			Changed: hadRole != hasRole,
		})
	}

	result.Diagnostics = p.Diagnostics()
	return result, nil
}
