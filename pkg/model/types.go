package model

// Built-in widget type identifiers with label rules registered out of the
// box.
const (
	WidgetImageBox     = "image-box"
	WidgetIconBox      = "icon-box"
	WidgetCallToAction = "call-to-action"
)

// WidgetRenderContext carries everything the host knows about a single
// widget render: its type, its author-supplied settings, and the markup
// fragment the host already produced for it.
type WidgetRenderContext struct {
	WidgetType string
	Settings   Settings
	Markup     string
}

// AnnotationDecision is the derived outcome of evaluating a widget against
// the label rules. It is never persisted.
type AnnotationDecision struct {
	ShouldAnnotate bool
	Label          string
}
