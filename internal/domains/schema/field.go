package schema

// FieldType enumerates the semantic field primitives a document descriptor
// can be built from. These mirror what the authoring studio can edit.
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeText      FieldType = "text"
	TypeDate      FieldType = "date" // ISO 8601 date, "2006-01-02"
	TypeNumber    FieldType = "number"
	TypeBoolean   FieldType = "boolean"
	TypeURL       FieldType = "url"
	TypeImage     FieldType = "image"     // {"assetKey": "...", "alt": "..."}
	TypeFile      FieldType = "file"      // {"assetKey": "..."}
	TypeObject    FieldType = "object"    // nested fields
	TypeArray     FieldType = "array"     // ordered list of Of
	TypeReference FieldType = "reference" // {"_ref": "<document id>"}
)

// Field describes a single field of a document type: its name, semantic
// type, validation rule and nesting. Validation rules apply at authoring
// time only; the render path never rejects stored content.
type Field struct {
	Name     string
	Title    string
	Type     FieldType
	Required bool

	// Numeric bounds (TypeNumber).
	Min *float64
	Max *float64

	// Count bounds (TypeArray).
	MinCount *int
	MaxCount *int

	// Element descriptor (TypeArray).
	Of *Field

	// Member descriptors (TypeObject).
	Fields []Field

	// Target document type (TypeReference).
	To string
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Convenience constructors keep the descriptor declarations compact.

func str(name, title string) Field  { return Field{Name: name, Title: title, Type: TypeString} }
func text(name, title string) Field { return Field{Name: name, Title: title, Type: TypeText} }
func date(name, title string) Field { return Field{Name: name, Title: title, Type: TypeDate} }
func urlField(name, title string) Field {
	return Field{Name: name, Title: title, Type: TypeURL}
}
func img(name, title string) Field  { return Field{Name: name, Title: title, Type: TypeImage} }
func file(name, title string) Field { return Field{Name: name, Title: title, Type: TypeFile} }

func number(name, title string, min, max *float64) Field {
	return Field{Name: name, Title: title, Type: TypeNumber, Min: min, Max: max}
}

func boolean(name, title string) Field {
	return Field{Name: name, Title: title, Type: TypeBoolean}
}

func object(name, title string, fields ...Field) Field {
	return Field{Name: name, Title: title, Type: TypeObject, Fields: fields}
}

func array(name, title string, of Field) Field {
	return Field{Name: name, Title: title, Type: TypeArray, Of: &of}
}

func reference(name, title, to string) Field {
	return Field{Name: name, Title: title, Type: TypeReference, To: to}
}

func required(f Field) Field {
	f.Required = true
	return f
}

func maxItems(f Field, n int) Field {
	f.MaxCount = intPtr(n)
	return f
}
