package feature

import "github.com/corviz/domanalyze/urlmodel"

// ScannedFeature is the sum-type capability shared by every untyped feature
// a scanner emits during the scanning phase (§3, §4.4).
type ScannedFeature interface {
	SourceRange() SourceRange
	Warnings() []Warning
}

// Resolvable is implemented by ScannedFeature variants that participate in
// resolution: they can turn themselves into a ResolvedFeature given a
// ResolutionContext.
type Resolvable interface {
	ScannedFeature
	Resolve(ctx ResolutionContext) (ResolvedFeature, bool)
}

// ResolutionContext is the minimal view of the in-progress analysis that a
// scanned feature needs in order to resolve itself, without feature needing
// to import the engine package that owns Document and the reference
// resolver (C5/C6).
type ResolutionContext interface {
	// OwnerURL is the resolved URL of the document performing resolution.
	OwnerURL() urlmodel.Resolved
	// ResolveImport looks up (or allocates) the Document shell for a
	// resolved import target.
	ResolveImport(url urlmodel.Resolved) (ResolvedFeature, bool)
	// ResolveReference performs scope-then-global lookup for a scanned
	// reference (C6) and returns the resulting Reference.
	ResolveReference(ref ScannedReference) Reference
	// Warn records a warning against the owning document.
	Warn(w Warning)
}

// scannedBase is embedded by every ScannedFeature variant.
type scannedBase struct {
	Range    SourceRange
	warnings []Warning
}

func (b *scannedBase) SourceRange() SourceRange { return b.Range }
func (b *scannedBase) Warnings() []Warning       { return b.warnings }
func (b *scannedBase) AddWarning(w Warning)       { b.warnings = append(b.warnings, w) }

// Translate shifts the feature's source range by origin, converting it from
// a sub-document's coordinate space (e.g. an inline <script>'s own text)
// into its host document's. Every ScannedFeature variant gets this for free
// through the embedded scannedBase.
func (b *scannedBase) Translate(origin Position) {
	b.Range = TranslateRange(origin, b.Range)
}

// Translatable is implemented by every ScannedFeature (via scannedBase).
type Translatable interface {
	Translate(origin Position)
}

// ScannedReference weakly names a target feature by kind and identifier,
// optionally with an AST path used for scope-based resolution (C6). It is
// not itself resolved into a top-level ResolvedFeature: other variants embed
// one or more ScannedReferences and resolve them via
// ResolutionContext.ResolveReference.
type ScannedReference struct {
	scannedBase
	Kind       Kind
	Identifier string
	// AstPath identifies the enclosing scopes (outermost first) captured at
	// scan time, used for scope-based resolution before falling back to a
	// global (kind, identifier) lookup.
	AstPath []string
}

func NewScannedReference(kind Kind, identifier string, r SourceRange) ScannedReference {
	return ScannedReference{scannedBase: scannedBase{Range: r}, Kind: kind, Identifier: identifier}
}

// ScannedImport represents a <link rel="import">, an external <script src>,
// or an external stylesheet link discovered by the HTML import scanner.
type ScannedImport struct {
	scannedBase
	Type     string // "html-import", "html-script", "html-style"
	URL      urlmodel.Resolved
	Resolved bool
}

func (s *ScannedImport) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	if !s.Resolved {
		return nil, false
	}
	target, ok := ctx.ResolveImport(s.URL)
	if !ok {
		ctx.Warn(NewWarning(CodeCouldNotLoad, SeverityWarning, "could not load import "+string(s.URL)).
			WithRange(s.Range).WithDocument(ctx.OwnerURL()).Build())
		return nil, false
	}
	return &ResolvedImport{
		resolvedBase: resolvedBase{kinds: NewKindSet(KindImport), ids: nil, Range: s.Range},
		Type:         s.Type,
		Target:       target,
	}, true
}

// ScannedElement is a custom element declared via class form (`static get
// is()`) or via `customElements.define(tag, Ctor)` call form.
type ScannedElement struct {
	scannedBase
	TagName            string
	ClassName           string
	Superclass          *ScannedReference
	ExtendsAnnotation   string // explicit @extends value, takes precedence
	Mixins              []ScannedReference
	Attributes          []ScannedAttribute
	Pseudo              bool
	IsPolymer           bool
	Description         string
}

// ScannedAttribute is an entry captured from a static observedAttributes
// array, with its own per-entry doc comment.
type ScannedAttribute struct {
	Name        string
	Description string
	Range       SourceRange
}

func (s *ScannedElement) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	kinds := NewKindSet(KindElement)
	if s.IsPolymer {
		kinds.Add(KindPolymerElement)
	}
	resolved := &ResolvedElement{
		resolvedBase: resolvedBase{kinds: kinds, ids: identifiersFor(s.TagName, s.ClassName), Range: s.Range},
		TagName:      s.TagName,
		ClassName:    s.ClassName,
		Attributes:   s.Attributes,
		Pseudo:       s.Pseudo,
		Description:  s.Description,
	}
	if s.ExtendsAnnotation != "" {
		ref := NewScannedReference(KindElement, s.ExtendsAnnotation, s.Range)
		r := ctx.ResolveReference(ref)
		resolved.Superclass = &r
	} else if s.Superclass != nil {
		r := ctx.ResolveReference(*s.Superclass)
		resolved.Superclass = &r
	}
	for _, m := range s.Mixins {
		resolved.Mixins = append(resolved.Mixins, ctx.ResolveReference(m))
	}
	return resolved, true
}

// ScannedElementMixin is a Polymer mixin-function declaration.
type ScannedElementMixin struct {
	scannedBase
	Name        string
	Description string
}

func (s *ScannedElementMixin) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	return &ResolvedElementMixin{
		resolvedBase: resolvedBase{kinds: NewKindSet(KindElementMixin), ids: identifiersFor(s.Name), Range: s.Range},
		Name:         s.Name,
		Description:  s.Description,
	}, true
}

// ScannedNamespace is an object-literal assignment annotated @namespace.
type ScannedNamespace struct {
	scannedBase
	Name        string
	Description string
	// NameError is set when the assignment target could not be statically
	// named (dynamic subscript without a literal string key).
	NameError bool
}

func (s *ScannedNamespace) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	if s.NameError {
		ctx.Warn(NewWarning(CodeDynamicNamespaceNoName, SeverityError, "Unable to determine name for @namespace").
			WithRange(s.Range).WithDocument(ctx.OwnerURL()).Build())
		return nil, false
	}
	return &ResolvedNamespace{
		resolvedBase: resolvedBase{kinds: NewKindSet(KindNamespace), ids: identifiersFor(s.Name), Range: s.Range},
		Name:         s.Name,
		Description:  s.Description,
	}, true
}

// ScannedFunction is a documented function, object method, or function-
// valued assignment annotated @memberof (and not @mixinFunction).
type ScannedFunction struct {
	scannedBase
	Name        string
	Namespace   string
	Params      []Parameter
	Returns     string
	Description string
}

// Parameter describes one function parameter.
type Parameter struct {
	Name string
	Type string
}

func (s *ScannedFunction) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	full := s.Name
	if s.Namespace != "" {
		full = s.Namespace + "." + s.Name
	}
	return &ResolvedFunction{
		resolvedBase: resolvedBase{kinds: NewKindSet(KindFunction), ids: identifiersFor(full, s.Name), Range: s.Range},
		Name:         full,
		Params:       s.Params,
		Returns:      s.Returns,
		Description:  s.Description,
	}, true
}

// ScannedBehavior is a Polymer behavior object literal.
type ScannedBehavior struct {
	scannedBase
	Name        string
	Description string
}

func (s *ScannedBehavior) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	return &ResolvedBehavior{
		resolvedBase: resolvedBase{kinds: NewKindSet(KindBehavior), ids: identifiersFor(s.Name), Range: s.Range},
		Name:         s.Name,
		Description:  s.Description,
	}, true
}

// ScannedDatabindingExpression is one {{expr}} or [[expr]] occurrence.
type ScannedDatabindingExpression struct {
	scannedBase
	Direction       byte // '{' for two-way, '[' for one-way
	ExpressionText  string
	EventName       string // optional ::eventName suffix, two-way only
	DatabindingInto string // "attribute" or "string-interpolation"
}

func (s *ScannedDatabindingExpression) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	return &ResolvedDatabindingExpression{
		resolvedBase:    resolvedBase{kinds: NewKindSet(KindDatabinding), Range: s.Range},
		Direction:       s.Direction,
		ExpressionText:  s.ExpressionText,
		EventName:       s.EventName,
		DatabindingInto: s.DatabindingInto,
	}, true
}

// ScannedPolymerCoreFeature captures legacy Polymer() call-form registration
// features that don't cleanly fit the class-based element/mixin/behavior
// shapes: a `Polymer({...})` call whose object has no `is` property.
type ScannedPolymerCoreFeature struct {
	scannedBase
	Name        string
	Description string
}

func (s *ScannedPolymerCoreFeature) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	return &ResolvedPolymerCoreFeature{
		resolvedBase: resolvedBase{kinds: NewKindSet(KindPolymerCoreFeature), ids: identifiersFor(s.Name), Range: s.Range},
		Name:         s.Name,
		Description:  s.Description,
	}, true
}

// ScannedElementReference is a usage site of a custom element tag in
// markup (e.g. <x-el> appearing in a template), as distinct from its
// declaration.
type ScannedElementReference struct {
	scannedBase
	TagName string
	Target  ScannedReference
}

func (s *ScannedElementReference) Resolve(ctx ResolutionContext) (ResolvedFeature, bool) {
	ref := ctx.ResolveReference(s.Target)
	return &ResolvedElementReference{
		resolvedBase: resolvedBase{kinds: NewKindSet(KindElementReference), ids: identifiersFor(s.TagName), Range: s.Range},
		TagName:      s.TagName,
		Element:      ref,
	}, true
}

func identifiersFor(ids ...string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
