package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/corviz/domanalyze/config"
	"github.com/corviz/domanalyze/engine"
	"github.com/corviz/domanalyze/export"
	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/loader"
	"github.com/corviz/domanalyze/urlmodel"
)

var (
	configPath string
	jsonOut    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a package and report its features and warnings",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&configPath, "config", "domanalyze.yaml", "path to the analyzer config file")
	analyzeCmd.Flags().BoolVar(&jsonOut, "json", false, "print the feature export as JSON instead of a warning summary")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	resolver := &urlmodel.Resolver{PackageRoot: urlmodel.Resolved(cfg.PackageRoot), ComponentDir: cfg.ComponentDir}
	analyzer := engine.NewAnalyzer(
		engine.WithLoader(loader.NewFS(cfg.PackageRoot)),
		engine.WithResolver(resolver),
	)

	analysis, err := analyzer.Analyze(context.Background(), urlmodel.PackageRelative(cfg.Entry))
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if jsonOut {
		doc := export.Build(analysis.Root())
		out, err := export.Serialize(doc)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	return printWarnings(cmd, analysis, cfg.MaxWarnings)
}

func printWarnings(cmd *cobra.Command, analysis *engine.Analysis, maxWarnings int) error {
	var urls []urlmodel.Resolved
	for u := range analysis.Documents() {
		urls = append(urls, u)
	}
	sort.Slice(urls, func(i, j int) bool { return urls[i] < urls[j] })

	printed := 0
	for _, u := range urls {
		doc, _ := analysis.Document(u)
		for _, w := range doc.GetWarnings(false) {
			if maxWarnings > 0 && printed >= maxWarnings {
				fmt.Fprintln(cmd.OutOrStdout(), "... warnings truncated")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatWarning(u, w))
			printed++
		}
	}
	if printed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), colorGreen.Sprint("no warnings"))
	}
	return nil
}

var (
	colorRed    = color.New(color.FgRed, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan)
	colorGreen  = color.New(color.FgGreen)
)

func init() {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

func formatWarning(u urlmodel.Resolved, w feature.Warning) string {
	label := severityLabel(w.Severity)
	return fmt.Sprintf("%s %s:%d:%d [%s] %s", label, u, w.Range.Start.Line, w.Range.Start.Column, w.Code, w.Message)
}

func severityLabel(s feature.Severity) string {
	switch s {
	case feature.SeverityError:
		return colorRed.Sprint("error")
	case feature.SeverityWarning:
		return colorYellow.Sprint("warning")
	default:
		return colorCyan.Sprint("info")
	}
}
