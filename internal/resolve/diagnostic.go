package resolve

import "fmt"

// Diagnostic is a validation error tied to the schema element that caused
// it: struct, field, and the offending option where one applies.
type Diagnostic struct {
	Struct string
	Field  string // empty for struct-level diagnostics
	Option string // empty when no single option is at fault
	Msg    string
}

func (d *Diagnostic) Error() string {
	s := "struct " + d.Struct
	if d.Field != "" {
		s += ", field " + d.Field
	}
	if d.Option != "" {
		s += fmt.Sprintf(", option %q", d.Option)
	}
	return s + ": " + d.Msg
}
