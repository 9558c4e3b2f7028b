// Package report renders an HTML audit report from a batch annotation run.
// The template is pongo2-backed and embedded, so the CLI can write a report
// with no external assets.
package report

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-a11yfix/pkg/pipeline"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Finding is a diagnostic flattened for template consumption.
type Finding struct {
	Level   string
	Message string
	Details string
}

// Report is the data handed to the audit template.
type Report struct {
	Title     string
	Generated time.Time
	Findings  []Finding
	Widgets   []pipeline.WidgetAudit
}

// FromAudit builds a Report from a batch result.
func FromAudit(title string, result pipeline.AuditResult) Report {
	findings := make([]Finding, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		findings = append(findings, Finding{
			Level:   string(d.Level),
			Message: d.Message,
			Details: formatFields(d.Fields),
		})
	}
	return Report{
		Title:     title,
		Generated: time.Now(),
		Findings:  findings,
		Widgets:   result.Widgets,
	}
}

// Renderer renders audit reports from the embedded template.
type Renderer struct {
	once     sync.Once
	template *pongo2.Template
	err      error
}

// NewRenderer constructs a Renderer. Template compilation is deferred to
// the first Render call.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the HTML report.
func (r *Renderer) Render(rep Report) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report: renderer is nil")
	}
	r.once.Do(func() {
		data, err := embeddedTemplates.ReadFile("templates/audit.tpl")
		if err != nil {
			r.err = fmt.Errorf("report: read template: %w", err)
			return
		}
		tmpl, err := pongo2.FromBytes(data)
		if err != nil {
			r.err = fmt.Errorf("report: compile template: %w", err)
			return
		}
		r.template = tmpl
	})
	if r.err != nil {
		return "", r.err
	}

	out, err := r.template.Execute(pongo2.Context{
		"title":     rep.Title,
		"generated": rep.Generated.Format(time.RFC3339),
		"findings":  rep.Findings,
		"widgets":   rep.Widgets,
	})
	if err != nil {
		return "", fmt.Errorf("report: execute template: %w", err)
	}
	return out, nil
}

// formatFields renders diagnostic fields as a stable key=value list so
// report output is deterministic for identical inputs.
func formatFields(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, fields[key]))
	}
	return strings.Join(parts, " ")
}
