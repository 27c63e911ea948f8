package schema

import (
	"fmt"
	"strings"
)

// TypeDesc is a semantic type descriptor: a scalar type name, optionally
// wrapped in Optional<...>.
type TypeDesc struct {
	Name     string // Canonical type name (e.g., "uint32", "string")
	Optional bool   // True if the declared type was Optional<Name>
}

// Kind classifies a type descriptor by the literal kind its values take.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindOther // unrecognized type name, e.g. a custom type from an override
)

// aliases maps accepted spellings of scalar type names to their canonical
// form. IDL-generated schemas tend to use the short forms.
var aliases = map[string]string{
	"str":   "string",
	"u8":    "uint8",
	"u16":   "uint16",
	"u32":   "uint32",
	"u64":   "uint64",
	"i8":    "int8",
	"i16":   "int16",
	"i32":   "int32",
	"i64":   "int64",
	"f32":   "float32",
	"f64":   "float64",
	"isize": "int",
	"usize": "uint",
}

var scalarKinds = map[string]Kind{
	"string":  KindString,
	"bool":    KindBool,
	"int":     KindInt,
	"int8":    KindInt,
	"int16":   KindInt,
	"int32":   KindInt,
	"int64":   KindInt,
	"uint":    KindInt,
	"uint8":   KindInt,
	"uint16":  KindInt,
	"uint32":  KindInt,
	"uint64":  KindInt,
	"float32": KindFloat,
	"float64": KindFloat,
}

// ParseTypeDesc parses a type descriptor string such as "bool", "u32" or
// "Optional<u32>". Optional may not be nested.
func ParseTypeDesc(s string) (TypeDesc, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeDesc{}, fmt.Errorf("empty type descriptor")
	}

	var td TypeDesc
	inner := s
	for _, wrapper := range []string{"Optional<", "Option<"} {
		if strings.HasPrefix(s, wrapper) {
			if !strings.HasSuffix(s, ">") {
				return TypeDesc{}, fmt.Errorf("unterminated %s...> in type descriptor %q", wrapper, s)
			}
			inner = strings.TrimSpace(s[len(wrapper) : len(s)-1])
			td.Optional = true
			break
		}
	}

	if td.Optional && (strings.Contains(inner, "<") || strings.Contains(inner, ">")) {
		return TypeDesc{}, fmt.Errorf("nested Optional in type descriptor %q is not supported", s)
	}
	if inner == "" {
		return TypeDesc{}, fmt.Errorf("missing inner type in type descriptor %q", s)
	}

	if canonical, ok := aliases[inner]; ok {
		inner = canonical
	}
	td.Name = inner
	return td, nil
}

// String renders the descriptor back in canonical form.
func (t TypeDesc) String() string {
	if t.Optional {
		return "Optional<" + t.Name + ">"
	}
	return t.Name
}

// Kind returns the literal kind for values of this type. The Optional
// wrapper does not affect the kind.
func (t TypeDesc) Kind() Kind {
	if k, ok := scalarKinds[t.Name]; ok {
		return k
	}
	return KindOther
}

// Unwrap returns the inner type for an Optional descriptor, or the
// descriptor itself if it is not Optional.
func (t TypeDesc) Unwrap() TypeDesc {
	return TypeDesc{Name: t.Name}
}

// Zero returns the natural zero-value literal for this type: empty string,
// zero, or false. Unrecognized types zero to the empty string, since their
// flag values are parsed from strings.
func (t TypeDesc) Zero() Literal {
	switch t.Kind() {
	case KindBool:
		return Literal{Kind: LitBool, Raw: "false"}
	case KindInt:
		return Literal{Kind: LitInt, Raw: "0"}
	case KindFloat:
		return Literal{Kind: LitFloat, Raw: "0"}
	default:
		return Literal{Kind: LitString, Raw: `""`}
	}
}
