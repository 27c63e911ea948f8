package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"sigs.k8s.io/yaml"
)

// Document wire format:
//
//	{
//	  "struct": "Config",
//	  "flags": {"prefix": "log-"},
//	  "fields": [
//	    {
//	      "name": "to_stderr",
//	      "type": "bool",
//	      "doc": "True if log messages should also be sent to STDERR",
//	      "flags": {"default": true}
//	    }
//	  ]
//	}
//
// The struct-level and field-level "flags" blocks accept exactly the option
// keys listed in structKeywords and fieldKeywords. Anything else is a fatal
// parse error: there is no partial emission from a malformed schema.

type schemaDoc struct {
	Struct string                     `json:"struct"`
	Flags  map[string]json.RawMessage `json:"flags"`
	Fields []fieldDoc                 `json:"fields"`
}

type fieldDoc struct {
	Name  string                     `json:"name"`
	Type  string                     `json:"type"`
	Doc   string                     `json:"doc"`
	Flags map[string]json.RawMessage `json:"flags"`
}

var structKeywords = map[string]bool{
	"prefix": true,
}

var fieldKeywords = map[string]bool{
	"skip":        true,
	"default":     true,
	"type":        true,
	"visibility":  true,
	"placeholder": true,
}

// Parse reads a JSON schema document into a StructSchema. Parsing is
// strict: unknown document keys, unknown option keys, and option values of
// the wrong literal kind abort with an error immediately.
func Parse(data []byte) (*StructSchema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc schemaDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: malformed document: %w", err)
	}
	if doc.Struct == "" {
		return nil, fmt.Errorf("schema: missing struct name")
	}
	if !isIdentifier(doc.Struct) {
		return nil, fmt.Errorf("schema: struct name %q is not an identifier", doc.Struct)
	}

	s := &StructSchema{Name: doc.Struct}

	prefix, err := parseStructBlock(doc.Flags)
	if err != nil {
		return nil, fmt.Errorf("schema: struct %s: %w", doc.Struct, err)
	}
	s.Prefix = prefix

	seen := make(map[string]bool, len(doc.Fields))
	for _, fd := range doc.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("schema: struct %s: field with missing name", doc.Struct)
		}
		if !isIdentifier(fd.Name) {
			return nil, fmt.Errorf("schema: struct %s: field name %q is not an identifier", doc.Struct, fd.Name)
		}
		if seen[fd.Name] {
			return nil, fmt.Errorf("schema: struct %s: duplicate field %q", doc.Struct, fd.Name)
		}
		seen[fd.Name] = true

		td, err := ParseTypeDesc(fd.Type)
		if err != nil {
			return nil, fmt.Errorf("schema: struct %s, field %s: %w", doc.Struct, fd.Name, err)
		}

		opts, err := parseFieldBlock(fd.Flags)
		if err != nil {
			return nil, fmt.Errorf("schema: struct %s, field %s: %w", doc.Struct, fd.Name, err)
		}

		s.Fields = append(s.Fields, FieldSpec{
			Name: fd.Name,
			Type: td,
			Doc:  fd.Doc,
			Opts: opts,
		})
	}

	return s, nil
}

// ParseYAML converts a YAML schema document to JSON and parses it with the
// same strict rules as Parse.
func ParseYAML(data []byte) (*StructSchema, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("schema: malformed YAML document: %w", err)
	}
	return Parse(jsonData)
}

// parseStructBlock reads a struct-level option block: {prefix}.
func parseStructBlock(block map[string]json.RawMessage) (prefix string, err error) {
	for _, key := range sortedKeys(block) {
		raw := block[key]
		if !structKeywords[key] {
			return "", fmt.Errorf("unknown struct option %q", key)
		}
		switch key {
		case "prefix":
			lit, err := parseLiteral(raw)
			if err != nil {
				return "", fmt.Errorf("option \"prefix\": %w", err)
			}
			if lit.Kind != LitString {
				return "", fmt.Errorf("option \"prefix\" expects a string, got %s", lit.Kind)
			}
			prefix, _ = lit.StringValue()
			if prefix == "" {
				return "", fmt.Errorf("option \"prefix\" expects a non-empty string")
			}
		}
	}
	return prefix, nil
}

// parseFieldBlock reads a field-level option block:
// {skip, default, type, visibility, placeholder}.
func parseFieldBlock(block map[string]json.RawMessage) (FieldOptions, error) {
	var opts FieldOptions
	for _, key := range sortedKeys(block) {
		raw := block[key]
		if !fieldKeywords[key] {
			return opts, fmt.Errorf("unknown option %q", key)
		}
		switch key {
		case "skip":
			lit, err := parseLiteral(raw)
			if err != nil || lit.Kind != LitBool {
				return opts, fmt.Errorf("option \"skip\" expects true or false, got %s", string(raw))
			}
			opts.Skip, _ = lit.BoolValue()
		case "default":
			lit, err := parseLiteral(raw)
			if err != nil {
				return opts, fmt.Errorf("option \"default\": %w", err)
			}
			opts.Default = &lit
		case "type":
			name, err := stringOption(key, raw)
			if err != nil {
				return opts, err
			}
			td, err := ParseTypeDesc(name)
			if err != nil {
				return opts, fmt.Errorf("option \"type\": %w", err)
			}
			opts.Type = &td
		case "visibility":
			v, err := stringOption(key, raw)
			if err != nil {
				return opts, err
			}
			opts.Visibility = v
		case "placeholder":
			v, err := stringOption(key, raw)
			if err != nil {
				return opts, err
			}
			opts.Placeholder = v
		}
	}
	return opts, nil
}

// stringOption parses an option value that must be a non-empty string.
func stringOption(key string, raw json.RawMessage) (string, error) {
	lit, err := parseLiteral(raw)
	if err != nil {
		return "", fmt.Errorf("option %q: %w", key, err)
	}
	if lit.Kind != LitString {
		return "", fmt.Errorf("option %q expects a string, got %s", key, lit.Kind)
	}
	v, _ := lit.StringValue()
	if v == "" {
		return "", fmt.Errorf("option %q expects a non-empty string", key)
	}
	return v, nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isIdentifier reports whether s is a plain identifier: a letter or
// underscore followed by letters, digits and underscores.
func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}
