package schema

// StructSchema is the parsed form of one struct definition: an ordered list
// of fields plus the struct-level flag options that apply to all of them.
type StructSchema struct {
	Name   string      // Struct name (e.g., "Config")
	Prefix string      // Prefix prepended to every flag name, may be empty
	Fields []FieldSpec // Fields in declaration order
}

// FieldSpec describes a single field of a struct schema.
type FieldSpec struct {
	Name string       // Field name, snake_case identifier (e.g., "to_stderr")
	Type TypeDesc     // Declared type, possibly Optional<T>
	Doc  string       // Doc comment text; first paragraph becomes help text
	Opts FieldOptions // Field-level flag options
}

// FieldOptions holds the per-field flag options. Each option defaults to
// "absent" independently.
type FieldOptions struct {
	Skip        bool      // Do not generate a flag for this field
	Default     *Literal  // Default value for the flag, nil if not set
	Type        *TypeDesc // Override type for the flag, nil if not set
	Visibility  string    // "exported" or "unexported", "" means unexported
	Placeholder string    // Placeholder shown in help output, "" if not set
}

// Visibility descriptors accepted in field option blocks.
const (
	VisibilityExported   = "exported"
	VisibilityUnexported = "unexported"
)
