package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/corviz/domanalyze/feature"
	"github.com/corviz/domanalyze/urlmodel"
)

func TestFormatWarning(t *testing.T) {
	color.NoColor = true
	w := feature.NewWarning(feature.CodeCouldNotResolveReference, feature.SeverityWarning, "no declaration found").
		WithRange(feature.SourceRange{Start: feature.Position{Line: 3, Column: 5}}).
		Build()

	out := formatWarning(urlmodel.Resolved("file:///pkg/index.html"), w)
	assert.Contains(t, out, "file:///pkg/index.html:3:5")
	assert.Contains(t, out, feature.CodeCouldNotResolveReference)
	assert.Contains(t, out, "no declaration found")
}

func TestSeverityLabel(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, "error", severityLabel(feature.SeverityError))
	assert.Equal(t, "warning", severityLabel(feature.SeverityWarning))
	assert.Equal(t, "info", severityLabel(feature.SeverityInfo))
}
