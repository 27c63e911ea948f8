package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SidecarOptions carries flag options for a schema whose field shape comes
// from elsewhere (a compiled IDL descriptor). It plays the role the
// original annotations play on hand-written schemas: a struct-level prefix
// plus option blocks keyed by field name.
type SidecarOptions struct {
	Prefix string
	Fields map[string]FieldOptions
}

type sidecarDoc struct {
	Flags  map[string]json.RawMessage            `json:"flags"`
	Fields map[string]map[string]json.RawMessage `json:"fields"`
}

// ParseSidecar reads a sidecar options document. Option blocks follow the
// same strict grammar as the inline "flags" blocks in a schema document.
func ParseSidecar(data []byte) (*SidecarOptions, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc sidecarDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: malformed options document: %w", err)
	}

	out := &SidecarOptions{Fields: make(map[string]FieldOptions, len(doc.Fields))}

	prefix, err := parseStructBlock(doc.Flags)
	if err != nil {
		return nil, fmt.Errorf("schema: options: %w", err)
	}
	out.Prefix = prefix

	for name, block := range doc.Fields {
		if !isIdentifier(name) {
			return nil, fmt.Errorf("schema: options: field name %q is not an identifier", name)
		}
		opts, err := parseFieldBlock(block)
		if err != nil {
			return nil, fmt.Errorf("schema: options: field %s: %w", name, err)
		}
		out.Fields[name] = opts
	}

	return out, nil
}
