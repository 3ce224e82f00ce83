package feature

// Kind is a stable string tag used to index features (§ GLOSSARY). A single
// feature may answer to more than one kind: a Polymer element is both
// KindElement and KindPolymerElement.
type Kind string

const (
	KindDocument           Kind = "document"
	KindImport             Kind = "import"
	KindElement            Kind = "element"
	KindPolymerElement     Kind = "polymer-element"
	KindElementMixin       Kind = "element-mixin"
	KindNamespace          Kind = "namespace"
	KindFunction           Kind = "function"
	KindBehavior           Kind = "behavior"
	KindReference          Kind = "reference"
	KindElementReference   Kind = "element-reference"
	KindDatabinding        Kind = "databinding"
	KindPolymerCoreFeature Kind = "polymer-core-feature"
)

// KindSet is an unordered collection of Kind tags with set semantics.
type KindSet map[Kind]struct{}

// NewKindSet builds a KindSet from the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is a member of the set.
func (s KindSet) Has(k Kind) bool {
	_, ok := s[k]
	return ok
}

// Add inserts k into the set.
func (s KindSet) Add(k Kind) {
	s[k] = struct{}{}
}
