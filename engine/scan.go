package engine

import (
	"strconv"
	"strings"

	"github.com/corviz/domanalyze/docsrc"
	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/scanner"
	"github.com/corviz/domanalyze/scanner/script"
	"github.com/corviz/domanalyze/urlmodel"
)

// InlineSource is an inline <script> body discovered while scanning a markup
// document: it needs to be parsed and scanned as its own document, with a
// synthetic URL distinguishing it from its host.
type InlineSource struct {
	URL          urlmodel.Resolved
	Text         string
	ContentStart feature.Position
}

// ScanResult is a single document's scan plus any inline sources it embeds.
type ScanResult struct {
	Document *ScannedDocument
	Inline   []InlineSource
}

// Scanner turns loaded source text into a ScanResult. It is the pluggable
// seam between the Analyzer's orchestration and the concrete C3/C4 pipeline,
// so tests can substitute a fake without driving a real tree-sitter parse.
type Scanner interface {
	Scan(text string, url urlmodel.Resolved, resolveHref func(href string) (urlmodel.Resolved, bool)) (ScanResult, error)
}

// DefaultScanner is the production Scanner: parse via the docsrc registry
// (C3), then run every registered C4 sub-scanner over the resulting AST in
// one traversal.
type DefaultScanner struct {
	Parsers *docsrc.Registry
}

// NewDefaultScanner builds a DefaultScanner backed by the default parser
// registry.
func NewDefaultScanner() *DefaultScanner {
	return &DefaultScanner{Parsers: docsrc.NewRegistry()}
}

func (s *DefaultScanner) Scan(text string, url urlmodel.Resolved, resolveHref func(string) (urlmodel.Resolved, bool)) (ScanResult, error) {
	var parser docsrc.Parser
	var ok bool
	if strings.Contains(string(url), "#inline-script-") {
		// Inline <script> body (see scanHTML): its URL carries the host's
		// extension, so it is dispatched as an untyped script instead.
		parser, ok = s.Parsers.ForScriptType(""), true
	} else {
		parser, ok = s.Parsers.ForURL(url)
	}
	if !ok {
		// Unrecognized extension: treated as an opaque leaf, same as css,
		// rather than a parse failure — a referenced asset that isn't
		// source at all (e.g. an icon) is not an analysis error.
		return ScanResult{Document: &ScannedDocument{URL: url}}, nil
	}

	parsed, ok := parser.Parse(text, url)
	if !ok {
		w := feature.NewWarning(feature.CodeParseError, feature.SeverityError, "failed to parse "+string(url)).
			WithDocument(url).Build()
		return ScanResult{Document: &ScannedDocument{
			URL:      url,
			Parsed:   &docsrc.ParsedDocument{Text: text, URL: url},
			Warnings: []feature.Warning{w},
		}}, nil
	}

	switch parsed.Language {
	case docsrc.LangHTML:
		return s.scanHTML(parsed, []byte(text), url, resolveHref)
	case docsrc.LangJS:
		return ScanResult{Document: s.scanJS(parsed, []byte(text), url)}, nil
	default:
		return ScanResult{Document: &ScannedDocument{URL: url, Parsed: parsed}}, nil
	}
}

func (s *DefaultScanner) scanHTML(parsed *docsrc.ParsedDocument, src []byte, url urlmodel.Resolved, resolveHref func(string) (urlmodel.Resolved, bool)) (ScanResult, error) {
	imports := scanner.NewHTMLImportScanner()
	pseudo := script.NewPseudoElementScanner()
	databind := scanner.NewDatabindingScanner()
	usage := scanner.NewElementUsageScanner()

	visitors := []scanner.HTMLVisitor{imports, pseudo, databind, usage}
	scanner.WalkHTML(parsed.RootNode(), src, visitors)
	imports.ResolveHrefs(resolveHref)

	var features []feature.ScannedFeature
	for _, imp := range imports.Imports {
		features = append(features, imp)
	}
	for _, el := range pseudo.Elements {
		features = append(features, el)
	}
	for _, e := range databind.Expressions {
		features = append(features, e)
	}
	for _, r := range usage.References {
		features = append(features, r)
	}

	var inline []InlineSource
	for i, sc := range imports.Inline {
		inline = append(inline, InlineSource{
			URL:          urlmodel.Resolved(string(url) + "#inline-script-" + strconv.Itoa(i)),
			Text:         sc.Text,
			ContentStart: sc.ContentStart,
		})
	}

	return ScanResult{
		Document: &ScannedDocument{URL: url, Parsed: parsed, Features: features},
		Inline:   inline,
	}, nil
}

func (s *DefaultScanner) scanJS(parsed *docsrc.ParsedDocument, src []byte, url urlmodel.Resolved) *ScannedDocument {
	polymer := script.NewPolymerClassScanner()
	fn := script.NewFunctionScanner()
	ns := script.NewNamespaceScanner()
	pseudo := script.NewPseudoElementScanner()

	visitors := []scanner.JSVisitor{polymer, fn, ns, pseudo}
	scanner.WalkJS(parsed.RootNode(), src, visitors)

	var features []feature.ScannedFeature
	for _, el := range polymer.Finish() {
		features = append(features, el)
	}
	for _, el := range polymer.LegacyElements {
		features = append(features, el)
	}
	for _, cf := range polymer.CoreFeatures {
		features = append(features, cf)
	}
	for _, f := range fn.Functions {
		features = append(features, f)
	}
	for _, m := range fn.Mixins {
		features = append(features, m)
	}
	for _, n := range ns.Namespaces {
		features = append(features, n)
	}
	for _, b := range ns.Behaviors {
		features = append(features, b)
	}
	for _, el := range pseudo.Elements {
		features = append(features, el)
	}

	return &ScannedDocument{URL: url, Parsed: parsed, Features: features}
}
