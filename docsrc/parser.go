package docsrc

import (
	"context"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/corviz/domanalyze/urlmodel"
)

// Parser is implemented by every language parser registered in a Registry.
// Parsers are pure: they never perform I/O and never suspend (§4.3, §5).
type Parser interface {
	Parse(text string, url urlmodel.Resolved) (*ParsedDocument, bool)
}

// HTMLParser parses markup documents with the tree-sitter HTML grammar.
type HTMLParser struct{}

func (HTMLParser) Parse(text string, url urlmodel.Resolved) (*ParsedDocument, bool) {
	return parseWith(html.GetLanguage(), LangHTML, text, url)
}

// ScriptParser parses ECMAScript documents with the tree-sitter JavaScript
// grammar. Used for .js/.mjs files and inline <script> bodies; extracted
// databinding expressions are kept as text and are not re-parsed.
type ScriptParser struct{}

func (ScriptParser) Parse(text string, url urlmodel.Resolved) (*ParsedDocument, bool) {
	return parseWith(javascript.GetLanguage(), LangJS, text, url)
}

// CSSParser produces an opaque ParsedDocument for stylesheets: style content
// is never scanned (Non-goals), so no tree is built.
type CSSParser struct{}

func (CSSParser) Parse(text string, url urlmodel.Resolved) (*ParsedDocument, bool) {
	return &ParsedDocument{Text: text, URL: url, Language: LangCSS}, true
}

func parseWith(lang *sitter.Language, tag Language, text string, url urlmodel.Resolved) (*ParsedDocument, bool) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(text))
	if err != nil {
		return nil, false
	}
	return &ParsedDocument{Text: text, URL: url, Language: tag, Tree: tree}, true
}

// Registry dispatches parse requests by file extension or by an inline
// <script>'s declared type attribute.
type Registry struct {
	byExtension map[string]Parser
}

// NewRegistry builds the default registry: .html/.htm -> markup parser,
// .js/.mjs -> script parser, .css -> opaque style parser.
func NewRegistry() *Registry {
	r := &Registry{byExtension: map[string]Parser{}}
	html := HTMLParser{}
	js := ScriptParser{}
	css := CSSParser{}
	r.byExtension[".html"] = html
	r.byExtension[".htm"] = html
	r.byExtension[".js"] = js
	r.byExtension[".mjs"] = js
	r.byExtension[".css"] = css
	return r
}

// ForURL resolves the parser for a resolved URL's file extension.
func (r *Registry) ForURL(url urlmodel.Resolved) (Parser, bool) {
	ext := strings.ToLower(path.Ext(strings.SplitN(string(url), "?", 2)[0]))
	p, ok := r.byExtension[ext]
	return p, ok
}

// ForScriptType resolves the parser for an inline <script>'s declared type
// attribute (e.g. "application/javascript", "module", or empty for the
// default). Anything not recognized as a module/javascript variant falls
// back to the script parser, matching the scanner's own default behavior
// of treating untyped inline scripts as JavaScript.
func (r *Registry) ForScriptType(scriptType string) Parser {
	switch strings.ToLower(strings.TrimSpace(scriptType)) {
	case "", "text/javascript", "application/javascript", "module":
		return r.byExtension[".js"]
	default:
		return r.byExtension[".js"]
	}
}
