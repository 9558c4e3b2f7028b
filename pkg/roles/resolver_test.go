package roles

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-a11yfix/pkg/diag"
	"github.com/goliatone/go-a11yfix/pkg/model"
	"github.com/goliatone/go-a11yfix/pkg/rules"
)

func TestResolve_RemovesConflictingRole(t *testing.T) {
	res := New()
	attrs := model.Attributes{
		"class": []string{"loop-item", "swiper-slide"},
		"role":  "list",
	}

	out := res.Resolve(attrs)

	if _, ok := out["role"]; ok {
		t.Fatal("role should have been removed")
	}
	classes, _ := out.Classes()
	if diff := cmp.Diff([]string{"loop-item", "swiper-slide"}, classes); diff != "" {
		t.Fatalf("class list must be unchanged (-want +got):\n%s", diff)
	}
	if _, ok := attrs["role"]; !ok {
		t.Fatal("input attribute set must not be mutated")
	}
}

func TestResolve_MarkerIsSubstringMatch(t *testing.T) {
	res := New()
	attrs := model.Attributes{
		"class": []string{"swiper-wrapper-main"},
		"role":  "list",
	}

	if _, ok := res.Resolve(attrs)["role"]; ok {
		t.Fatal("substring marker should trigger role removal")
	}
}

func TestResolve_PassThroughCases(t *testing.T) {
	res := New()

	cases := []struct {
		name  string
		attrs model.Attributes
	}{
		{
			name:  "no marker class",
			attrs: model.Attributes{"class": []string{"loop-item"}, "role": "list"},
		},
		{
			name:  "marker but no role",
			attrs: model.Attributes{"class": []string{"swiper-slide"}},
		},
		{
			name:  "class absent",
			attrs: model.Attributes{"role": "list"},
		},
		{
			name:  "class not a list",
			attrs: model.Attributes{"class": "swiper-slide", "role": "list"},
		},
		{
			name:  "marker case differs",
			attrs: model.Attributes{"class": []string{"Swiper-slide"}, "role": "list"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := res.Resolve(tc.attrs)
			if diff := cmp.Diff(tc.attrs, out); diff != "" {
				t.Fatalf("expected pass-through (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_EmitsBeforeAndAfterSnapshots(t *testing.T) {
	collector := diag.NewCollector()
	res := New(WithSink(collector))

	res.Resolve(model.Attributes{"class": []string{"loop-item"}, "role": "list"})

	records := collector.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 snapshots even without changes, got %d", len(records))
	}
	for _, d := range records {
		if d.Level != model.LevelInfo {
			t.Fatalf("snapshot level = %q, want info", d.Level)
		}
		if _, ok := d.Fields["attributes"]; !ok {
			t.Fatalf("snapshot missing attributes field: %+v", d)
		}
	}
	if changed, ok := records[1].Fields["changed"].(bool); !ok || changed {
		t.Fatalf("after snapshot should report changed=false, got %v", records[1].Fields["changed"])
	}
}

func TestResolve_CustomMarkers(t *testing.T) {
	rs := rules.Default()
	rs.RoleConflictMarkers = []string{"splide"}
	res := New(WithRuleset(rs))

	attrs := model.Attributes{"class": []string{"splide-track"}, "role": "list"}
	if _, ok := res.Resolve(attrs)["role"]; ok {
		t.Fatal("custom marker should trigger role removal")
	}

	def := model.Attributes{"class": []string{"swiper-slide"}, "role": "list"}
	if _, ok := res.Resolve(def)["role"]; !ok {
		t.Fatal("default marker should no longer apply")
	}
}
