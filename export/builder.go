package export

import (
	"github.com/corviz/domanalyze/engine"
	"github.com/corviz/domanalyze/feature"
)

// Build assembles the exported Document for the given analysis root,
// walking its transitive closure of elements/mixins/namespaces/functions
// (C7), mirroring buildIRGraph's node-per-declaration shape.
func Build(root *engine.Document) *Document {
	doc := &Document{SchemaVersion: SchemaVersion}

	for _, rf := range root.GetByKind(feature.KindNamespace) {
		ns, ok := rf.(*feature.ResolvedNamespace)
		if !ok {
			continue
		}
		doc.Namespaces = append(doc.Namespaces, Namespace{
			Name:        ns.Name,
			Description: ns.Description,
			SourceRange: exportRange(ns.SourceRange()),
		})
	}

	for _, rf := range root.GetByKind(feature.KindElement) {
		el, ok := rf.(*feature.ResolvedElement)
		if !ok {
			continue
		}
		doc.Elements = append(doc.Elements, buildElement(el))
	}

	for _, rf := range root.GetByKind(feature.KindElementMixin) {
		m, ok := rf.(*feature.ResolvedElementMixin)
		if !ok {
			continue
		}
		doc.Mixins = append(doc.Mixins, Mixin{
			Name:        m.Name,
			Description: m.Description,
			SourceRange: exportRange(m.SourceRange()),
		})
	}

	for _, rf := range root.GetByKind(feature.KindFunction) {
		fn, ok := rf.(*feature.ResolvedFunction)
		if !ok {
			continue
		}
		var params []string
		for _, p := range fn.Params {
			params = append(params, p.Name)
		}
		doc.Functions = append(doc.Functions, Function{
			Name:        fn.Name,
			Params:      params,
			Returns:     fn.Returns,
			Description: fn.Description,
			SourceRange: exportRange(fn.SourceRange()),
		})
	}

	return doc
}

func buildElement(el *feature.ResolvedElement) Element {
	out := Element{
		TagName:     el.TagName,
		ClassName:   el.ClassName,
		Description: el.Description,
		SourceRange: exportRange(el.SourceRange()),
	}
	if el.Superclass != nil && el.Superclass.Resolved {
		out.Superclass = el.Superclass.Identifier
	}
	for _, m := range el.Mixins {
		if m.Resolved {
			out.Mixins = append(out.Mixins, m.Identifier)
		}
	}
	for _, a := range el.Attributes {
		out.Attributes = append(out.Attributes, Attribute{Name: a.Name, Description: a.Description})
	}
	return out
}
