package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/loader"
	"github.com/corviz/domanalyze/urlmodel"
)

const root = urlmodel.Resolved("file:///pkg/")

func newTestAnalyzer(results map[urlmodel.Resolved]ScanResult, contents map[urlmodel.Resolved]string) *Analyzer {
	return NewAnalyzer(
		WithLoader(loader.NewMemory(contents)),
		WithResolver(&urlmodel.Resolver{PackageRoot: root}),
		WithScanner(&fakeScanner{results: results}),
	)
}

type fakeScanner struct {
	results map[urlmodel.Resolved]ScanResult
}

func (f *fakeScanner) Scan(_ string, url urlmodel.Resolved, _ func(string) (urlmodel.Resolved, bool)) (ScanResult, error) {
	if r, ok := f.results[url]; ok {
		return r, nil
	}
	return ScanResult{Document: &ScannedDocument{URL: url}}, nil
}

func scannedImport(kind, href string, target urlmodel.Resolved) *feature.ScannedImport {
	return &feature.ScannedImport{Type: kind, URL: target, Resolved: true}
}

func TestAnalyze_ResolvesNamespaceAcrossImport(t *testing.T) {
	indexURL := urlmodel.Resolved("file:///pkg/index.html")
	aURL := urlmodel.Resolved("file:///pkg/a.html")

	ns := &feature.ScannedNamespace{Name: "Foo"}
	ref := feature.NewScannedReference(feature.KindNamespace, "Foo", feature.SourceRange{})
	elRef := &feature.ScannedElementReference{TagName: "x-foo", Target: ref}

	results := map[urlmodel.Resolved]ScanResult{
		indexURL: {Document: &ScannedDocument{URL: indexURL, Features: []feature.ScannedFeature{
			scannedImport("html-import", "./a.html", aURL),
			elRef,
		}}},
		aURL: {Document: &ScannedDocument{URL: aURL, Features: []feature.ScannedFeature{ns}}},
	}
	contents := map[urlmodel.Resolved]string{indexURL: "", aURL: ""}

	a := newTestAnalyzer(results, contents)
	analysis, err := a.Analyze(context.Background(), urlmodel.PackageRelative("index.html"))
	require.NoError(t, err)

	found := analysis.Root().GetById(feature.KindNamespace, "Foo")
	require.Len(t, found, 1)
	assert.Equal(t, []string{"Foo"}, found[0].Identifiers())

	refs := analysis.Root().GetByKind(feature.KindElementReference)
	require.Len(t, refs, 1)
	elementRef := refs[0].(*feature.ResolvedElementReference)
	assert.True(t, elementRef.Element.Resolved)
	assert.Same(t, found[0], elementRef.Element.Target)
}

func TestAnalyze_DynamicNamespaceNoNameWarns(t *testing.T) {
	indexURL := urlmodel.Resolved("file:///pkg/index.html")
	ns := &feature.ScannedNamespace{NameError: true}
	results := map[urlmodel.Resolved]ScanResult{
		indexURL: {Document: &ScannedDocument{URL: indexURL, Features: []feature.ScannedFeature{ns}}},
	}
	contents := map[urlmodel.Resolved]string{indexURL: ""}

	a := newTestAnalyzer(results, contents)
	analysis, err := a.Analyze(context.Background(), urlmodel.PackageRelative("index.html"))
	require.NoError(t, err)

	warnings := analysis.Root().GetWarnings(false)
	require.Len(t, warnings, 1)
	assert.Equal(t, feature.CodeDynamicNamespaceNoName, warnings[0].Code)
	assert.Empty(t, analysis.Root().GetByKind(feature.KindNamespace))
}

func TestAnalyze_CircularImportsDoNotHang(t *testing.T) {
	aURL := urlmodel.Resolved("file:///pkg/a.html")
	bURL := urlmodel.Resolved("file:///pkg/b.html")

	results := map[urlmodel.Resolved]ScanResult{
		aURL: {Document: &ScannedDocument{URL: aURL, Features: []feature.ScannedFeature{
			scannedImport("html-import", "./b.html", bURL),
		}}},
		bURL: {Document: &ScannedDocument{URL: bURL, Features: []feature.ScannedFeature{
			scannedImport("html-import", "./a.html", aURL),
		}}},
	}
	contents := map[urlmodel.Resolved]string{aURL: "", bURL: ""}

	a := newTestAnalyzer(results, contents)
	done := make(chan struct{})
	var analysis *Analysis
	var err error
	go func() {
		analysis, err = a.Analyze(context.Background(), urlmodel.PackageRelative("a.html"))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Analyze did not return for a cyclic import graph")
	}
	require.NoError(t, err)
	assert.Len(t, analysis.Documents(), 2)
	_, ok := analysis.Document(bURL)
	assert.True(t, ok)
}

func TestAnalyze_CouldNotLoadImportWarns(t *testing.T) {
	indexURL := urlmodel.Resolved("file:///pkg/index.html")
	missingURL := urlmodel.Resolved("file:///pkg/missing.html")

	results := map[urlmodel.Resolved]ScanResult{
		indexURL: {Document: &ScannedDocument{URL: indexURL, Features: []feature.ScannedFeature{
			scannedImport("html-import", "./missing.html", missingURL),
		}}},
	}
	contents := map[urlmodel.Resolved]string{indexURL: ""}

	a := newTestAnalyzer(results, contents)
	analysis, err := a.Analyze(context.Background(), urlmodel.PackageRelative("index.html"))
	require.NoError(t, err)

	warnings := analysis.Root().GetWarnings(false)
	require.Len(t, warnings, 1)
	assert.Equal(t, feature.CodeCouldNotLoad, warnings[0].Code)
}

func TestAnalyze_DocumentContentHashReflectsLoadedText(t *testing.T) {
	indexURL := urlmodel.Resolved("file:///pkg/index.html")
	aURL := urlmodel.Resolved("file:///pkg/a.html")
	results := map[urlmodel.Resolved]ScanResult{
		indexURL: {Document: &ScannedDocument{URL: indexURL, Features: []feature.ScannedFeature{
			scannedImport("html-import", "./a.html", aURL),
		}}},
		aURL: {Document: &ScannedDocument{URL: aURL}},
	}
	contents := map[urlmodel.Resolved]string{indexURL: "<html>one</html>", aURL: "<html>two</html>"}

	a := newTestAnalyzer(results, contents)
	analysis, err := a.Analyze(context.Background(), urlmodel.PackageRelative("index.html"))
	require.NoError(t, err)

	indexDoc, ok := analysis.Document(indexURL)
	require.True(t, ok)
	aDoc, ok := analysis.Document(aURL)
	require.True(t, ok)

	assert.NotZero(t, indexDoc.ContentHash())
	assert.NotEqual(t, indexDoc.ContentHash(), aDoc.ContentHash())

	wantHash, hashErr := feature.ContentHash([]byte("<html>one</html>"))
	require.NoError(t, hashErr)
	assert.Equal(t, wantHash, indexDoc.ContentHash())
}

func TestAnalyze_InlineScriptFeaturesTranslatedToHostCoordinates(t *testing.T) {
	indexURL := urlmodel.Resolved("file:///pkg/index.html")
	inlineURL := urlmodel.Resolved("file:///pkg/index.html#inline-script-0")

	ns := &feature.ScannedNamespace{Name: "Foo"}
	ns.Range = feature.SourceRange{Start: feature.Position{Line: 0, Column: 5}, End: feature.Position{Line: 0, Column: 10}}
	contentStart := feature.Position{Line: 3, Column: 8}

	results := map[urlmodel.Resolved]ScanResult{
		indexURL: {
			Document: &ScannedDocument{URL: indexURL},
			Inline: []InlineSource{
				{URL: inlineURL, Text: "", ContentStart: contentStart},
			},
		},
		inlineURL: {Document: &ScannedDocument{URL: inlineURL, Features: []feature.ScannedFeature{ns}}},
	}
	contents := map[urlmodel.Resolved]string{indexURL: ""}

	a := newTestAnalyzer(results, contents)
	analysis, err := a.Analyze(context.Background(), urlmodel.PackageRelative("index.html"))
	require.NoError(t, err)

	found := analysis.Root().GetById(feature.KindNamespace, "Foo")
	require.Len(t, found, 1)
	assert.Equal(t, feature.Position{Line: 3, Column: 13}, found[0].SourceRange().Start)
	assert.Equal(t, feature.Position{Line: 3, Column: 18}, found[0].SourceRange().End)
}

func TestAnalyzer_FilesChangedInvalidatesCache(t *testing.T) {
	indexURL := urlmodel.Resolved("file:///pkg/index.html")
	results := map[urlmodel.Resolved]ScanResult{
		indexURL: {Document: &ScannedDocument{URL: indexURL}},
	}
	contents := map[urlmodel.Resolved]string{indexURL: ""}
	a := newTestAnalyzer(results, contents)

	_, err := a.Analyze(context.Background(), urlmodel.PackageRelative("index.html"))
	require.NoError(t, err)
	_, ok := a.cache.get(indexURL)
	require.True(t, ok)

	a.FilesChanged([]urlmodel.Resolved{indexURL})
	_, ok = a.cache.get(indexURL)
	assert.False(t, ok)
}
