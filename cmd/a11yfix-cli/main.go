package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	a11yfix "github.com/goliatone/go-a11yfix"
	"github.com/goliatone/go-a11yfix/pkg/diag"
	"github.com/goliatone/go-a11yfix/pkg/model"
	"github.com/goliatone/go-a11yfix/pkg/report"
	"github.com/goliatone/go-a11yfix/pkg/rules"
)

func main() {
	widgetType := flag.String("widget", "image-box", "widget type of the fragment")
	settingsPath := flag.String("settings", "", "widget settings file (YAML or JSON)")
	inputPath := flag.String("input", "", "markup fragment file (stdin if empty)")
	outputPath := flag.String("output", "", "output file (stdout if empty)")
	attrsPath := flag.String("attrs", "", "container attributes file to role-resolve (YAML or JSON)")
	rulesPath := flag.String("rules", "", "ruleset override file")
	reportPath := flag.String("report", "", "write an HTML audit report to this path")
	verbose := flag.Bool("verbose", false, "log diagnostics to stderr")
	flag.Parse()

	ctx := context.Background()

	ruleset, err := loadRules(*rulesPath)
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}

	options := []a11yfix.Option{a11yfix.WithRuleset(ruleset)}
	if *verbose {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
		defer logger.Sync()
		options = append(options, a11yfix.WithSink(diag.NewZapSink(logger)))
	}
	pipe := a11yfix.New(options...)

	markup, err := readInput(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read fragment: %v", err)
	}

	settings, err := loadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	widgets := []model.WidgetRenderContext{{
		WidgetType: *widgetType,
		Settings:   settings,
		Markup:     markup,
	}}

	var containers []model.Attributes
	if *attrsPath != "" {
		attrs, err := loadAttributes(*attrsPath)
		if err != nil {
			log.Fatalf("Failed to load attributes: %v", err)
		}
		containers = append(containers, attrs)
	}

	result, err := pipe.Audit(ctx, widgets, containers)
	if err != nil {
		log.Fatalf("Failed to process: %v", err)
	}

	if err := writeOutput(*outputPath, result.Widgets[0].Output); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if len(result.Containers) > 0 {
		resolved, err := yaml.Marshal(result.Containers[0].Output)
		if err != nil {
			log.Fatalf("Failed to encode attributes: %v", err)
		}
		fmt.Fprintf(os.Stderr, "resolved attributes:\n%s", resolved)
	}

	if *reportPath != "" {
		rep := report.FromAudit("Accessibility audit", result)
		html, err := report.NewRenderer().Render(rep)
		if err != nil {
			log.Fatalf("Failed to render report: %v", err)
		}
		if err := os.WriteFile(*reportPath, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Fprintf(os.Stderr, "report written to %s\n", *reportPath)
	}
}

func loadRules(path string) (rules.Ruleset, error) {
	if path == "" {
		return rules.Default(), nil
	}
	dir, file := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return rules.Load(os.DirFS(dir), file)
}

func loadSettings(path string) (model.Settings, error) {
	if path == "" {
		return model.Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var settings map[string]any
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return model.Settings(settings), nil
}

func loadAttributes(path string) (model.Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var attrs map[string]any
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return model.Attributes(attrs), nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeOutput(path, markup string) error {
	if path == "" {
		fmt.Println(markup)
		return nil
	}
	return os.WriteFile(path, []byte(markup), 0o644)
}
