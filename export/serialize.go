package export

import "encoding/json"

// Serialize renders doc as pretty-printed JSON. No schema-validation
// library is wired here: the shape is a plain, spec-fixed JSON document
// (spec.md §6), and no repo in the example corpus brings a JSON-schema
// validator — the builder above is what keeps the output shape-correct,
// and stdlib encoding/json is the justified serializer.
func Serialize(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
