package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LitKind is the structural kind of a literal value.
type LitKind int

const (
	LitString LitKind = iota
	LitBool
	LitInt
	LitFloat
)

func (k LitKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	case LitInt:
		return "integer"
	case LitFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Literal is a typed literal value carried through from the schema document
// to the emitted flag declaration. Raw holds the Go source form of the
// value (quoted for strings), so it can be spliced into generated code
// verbatim.
type Literal struct {
	Kind LitKind
	Raw  string
}

// parseLiteral classifies a JSON value as a literal. Arrays, objects and
// null are not literals and are rejected.
func parseLiteral(raw json.RawMessage) (Literal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return Literal{}, fmt.Errorf("empty literal")
	}
	switch s[0] {
	case '"':
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return Literal{}, fmt.Errorf("malformed string literal %s", s)
		}
		return Literal{Kind: LitString, Raw: strconv.Quote(v)}, nil
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return Literal{}, fmt.Errorf("malformed literal %s", s)
		}
		return Literal{Kind: LitBool, Raw: s}, nil
	case '[', '{':
		return Literal{}, fmt.Errorf("expected a scalar literal, got %c...", s[0])
	case 'n':
		return Literal{}, fmt.Errorf("null is not a literal value")
	default:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return Literal{}, fmt.Errorf("malformed literal %s", s)
		}
		if strings.ContainsAny(s, ".eE") {
			return Literal{Kind: LitFloat, Raw: s}, nil
		}
		return Literal{Kind: LitInt, Raw: s}, nil
	}
}

// StringValue returns the unquoted value of a string literal.
func (l Literal) StringValue() (string, error) {
	if l.Kind != LitString {
		return "", fmt.Errorf("literal %s is not a string", l.Raw)
	}
	return strconv.Unquote(l.Raw)
}

// BoolValue returns the value of a bool literal.
func (l Literal) BoolValue() (bool, error) {
	if l.Kind != LitBool {
		return false, fmt.Errorf("literal %s is not a bool", l.Raw)
	}
	return strconv.ParseBool(l.Raw)
}

// IntValue returns the value of an integer literal.
func (l Literal) IntValue() (int64, error) {
	if l.Kind != LitInt {
		return 0, fmt.Errorf("literal %s is not an integer", l.Raw)
	}
	return strconv.ParseInt(l.Raw, 10, 64)
}

// UintValue returns the value of a non-negative integer literal.
func (l Literal) UintValue() (uint64, error) {
	if l.Kind != LitInt {
		return 0, fmt.Errorf("literal %s is not an integer", l.Raw)
	}
	return strconv.ParseUint(l.Raw, 10, 64)
}

// FloatValue returns the value of an integer or float literal.
func (l Literal) FloatValue() (float64, error) {
	if l.Kind != LitInt && l.Kind != LitFloat {
		return 0, fmt.Errorf("literal %s is not a number", l.Raw)
	}
	return strconv.ParseFloat(l.Raw, 64)
}
