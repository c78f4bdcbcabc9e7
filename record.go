package statedict

// Record is the capability a fixed-field value implements to participate in
// conversion under the shared RecordTag. It is the structural analogue of a
// named tuple: an immutable value with a fixed, ordered set of named fields.
//
// Implementations must treat WithFields as a constructor: it returns a new
// instance of the same concrete type with every field replaced by the entry of
// the same name, leaving the receiver untouched.
type Record interface {
	// Fields returns the field names in their canonical order.
	Fields() []string
	// Field returns the value of the named field.
	Field(name string) any
	// WithFields builds a new instance of the same concrete type from a
	// complete field-name -> value mapping.
	WithFields(fields map[string]any) (Record, error)
}
