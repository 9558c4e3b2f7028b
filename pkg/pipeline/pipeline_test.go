package pipeline

import (
	"context"
	"testing"

	"github.com/goliatone/go-a11yfix/pkg/diag"
	"github.com/goliatone/go-a11yfix/pkg/model"
	"github.com/goliatone/go-a11yfix/pkg/rules"
)

func TestProcessWidget_DetectorFeedsAnnotator(t *testing.T) {
	pipe := New()
	ctx := context.Background()

	out, err := pipe.ProcessWidget(ctx, model.WidgetRenderContext{
		WidgetType: model.WidgetCallToAction,
		Settings: model.Settings{
			"button": "read more",
			"title":  "Pricing",
		},
		Markup: `<a href="/p">read more</a>`,
	})
	if err != nil {
		t.Fatalf("process widget: %v", err)
	}

	want := `<a aria-label="Learn more about Pricing" href="/p">read more</a>`
	if out != want {
		t.Fatalf("output:\n got %q\nwant %q", out, want)
	}

	records := pipe.Diagnostics()
	if len(records) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(records))
	}
	if records[0].Level != model.LevelWarn {
		t.Fatalf("diagnostic level = %q, want warn", records[0].Level)
	}
}

func TestProcessWidget_NeverFailsTheRender(t *testing.T) {
	pipe := New()
	ctx := context.Background()

	cases := []struct {
		name string
		wctx model.WidgetRenderContext
	}{
		{
			name: "unknown widget type",
			wctx: model.WidgetRenderContext{WidgetType: "pricing-table", Markup: "<a>x</a>"},
		},
		{
			name: "nil settings",
			wctx: model.WidgetRenderContext{WidgetType: model.WidgetCallToAction, Markup: "<a>x</a>"},
		},
		{
			name: "empty markup",
			wctx: model.WidgetRenderContext{WidgetType: model.WidgetImageBox},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := pipe.ProcessWidget(ctx, tc.wctx)
			if err != nil {
				t.Fatalf("process widget: %v", err)
			}
			if out != tc.wctx.Markup {
				t.Fatalf("expected pass-through, got %q", out)
			}
		})
	}
}

func TestProcessWidget_CancelledContext(t *testing.T) {
	pipe := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wctx := model.WidgetRenderContext{
		WidgetType: model.WidgetImageBox,
		Settings:   model.Settings{"title_text": "X"},
		Markup:     `<a href="/x">go</a>`,
	}
	out, err := pipe.ProcessWidget(ctx, wctx)
	if err == nil {
		t.Fatal("expected context error")
	}
	if out != wctx.Markup {
		t.Fatalf("cancelled call must return input markup, got %q", out)
	}
}

func TestProcessContainer(t *testing.T) {
	pipe := New()
	ctx := context.Background()

	out, err := pipe.ProcessContainer(ctx, model.Attributes{
		"class": []string{"swiper-wrapper"},
		"role":  "list",
	})
	if err != nil {
		t.Fatalf("process container: %v", err)
	}
	if _, ok := out[model.AttrRole]; ok {
		t.Fatal("expected role to be removed")
	}
}

func TestPipeline_ExternalSinkReceivesDiagnostics(t *testing.T) {
	external := diag.NewCollector()
	pipe := New(WithSink(external))

	_, err := pipe.ProcessWidget(context.Background(), model.WidgetRenderContext{
		WidgetType: model.WidgetCallToAction,
		Settings:   model.Settings{"button": "more"},
		Markup:     `<a href="/x">more</a>`,
	})
	if err != nil {
		t.Fatalf("process widget: %v", err)
	}

	if len(external.Records()) != 1 {
		t.Fatalf("external sink should mirror the collector, got %d records", len(external.Records()))
	}
	if len(pipe.Diagnostics()) != 1 {
		t.Fatalf("internal collector should also record, got %d", len(pipe.Diagnostics()))
	}
}

func TestPipeline_CustomRuleset(t *testing.T) {
	rs := rules.Default()
	rs.SuspiciousPhrases = []string{"tap here"}
	pipe := New(WithRuleset(rs))

	out, err := pipe.ProcessWidget(context.Background(), model.WidgetRenderContext{
		WidgetType: model.WidgetCallToAction,
		Settings:   model.Settings{"button": "Tap Here"},
		Markup:     `<a href="/x">Tap Here</a>`,
	})
	if err != nil {
		t.Fatalf("process widget: %v", err)
	}
	want := `<a aria-label="Learn more" href="/x">Tap Here</a>`
	if out != want {
		t.Fatalf("custom phrase:\n got %q\nwant %q", out, want)
	}

	// The stock phrase list no longer applies.
	out, err = pipe.ProcessWidget(context.Background(), model.WidgetRenderContext{
		WidgetType: model.WidgetCallToAction,
		Settings:   model.Settings{"button": "read more"},
		Markup:     `<a href="/x">read more</a>`,
	})
	if err != nil {
		t.Fatalf("process widget: %v", err)
	}
	if out != `<a href="/x">read more</a>` {
		t.Fatalf("expected pass-through for replaced phrase list, got %q", out)
	}
}

func TestAudit(t *testing.T) {
	pipe := New()

	widgets := []model.WidgetRenderContext{
		{
			WidgetType: model.WidgetImageBox,
			Settings:   model.Settings{"title_text": ""},
			Markup:     `<a href="/x"><img/></a>`,
		},
		{
			WidgetType: "pricing-table",
			Markup:     `<a href="/y">y</a>`,
		},
	}
	containers := []model.Attributes{
		{"class": []string{"swiper-slide"}, "role": "list"},
		{"class": []string{"loop-item"}, "role": "list"},
	}

	result, err := pipe.Audit(context.Background(), widgets, containers)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}

	if len(result.Widgets) != 2 {
		t.Fatalf("expected 2 widget audits, got %d", len(result.Widgets))
	}
	if !result.Widgets[0].Changed {
		t.Fatal("image-box should have been annotated")
	}
	if result.Widgets[1].Changed {
		t.Fatal("unknown widget should pass through")
	}

	if len(result.Containers) != 2 {
		t.Fatalf("expected 2 container audits, got %d", len(result.Containers))
	}
	if !result.Containers[0].Changed {
		t.Fatal("swiper container should lose its role")
	}
	if result.Containers[1].Changed {
		t.Fatal("plain container should pass through")
	}

	// Four role-resolver snapshots, no detector warnings.
	if len(result.Diagnostics) != 4 {
		t.Fatalf("expected 4 diagnostics, got %d", len(result.Diagnostics))
	}

	// A second audit starts from a clean collector.
	result, err = pipe.Audit(context.Background(), nil, containers[:1])
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if len(result.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics on second audit, got %d", len(result.Diagnostics))
	}
}
