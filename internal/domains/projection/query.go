package projection

// Query declares what a page needs from the content repository: one
// document type, an ordering, and the exact field shape to project. Every
// page route owns exactly one Query.
type Query struct {
	Type      string
	Singleton bool
	Order     []OrderClause
	Fields    []Field
}

// OrderClause sorts projected documents by a top-level field. Documents
// missing the field sort after all documents that have it, regardless of
// direction.
type OrderClause struct {
	Field string
	Desc  bool
}

// Field selects one output field. Source defaults to Name when empty.
// Deref expands a stored reference into the referenced document before any
// sub-projection applies. Fields, when set, projects object values (and
// each element of array values) recursively; otherwise the stored value is
// copied through as-is.
type Field struct {
	Name   string
	Source string
	Deref  bool
	Fields []Field
}

func (f Field) source() string {
	if f.Source != "" {
		return f.Source
	}
	return f.Name
}

// F is shorthand for a plain copied-through field.
func F(name string) Field { return Field{Name: name} }

// Obj projects a nested object or array of objects.
func Obj(name string, fields ...Field) Field {
	return Field{Name: name, Fields: fields}
}

// Ref dereferences a stored reference and projects the target document.
func Ref(name string, fields ...Field) Field {
	return Field{Name: name, Deref: true, Fields: fields}
}
