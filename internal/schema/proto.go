package schema

import (
	"fmt"
	"sort"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// FromDescriptorSet builds a StructSchema from a serialized
// FileDescriptorSet (the output of protoc --descriptor_set_out). The
// message's scalar fields become schema fields; proto3 explicit-presence
// fields (the `optional` keyword) become Optional<T>; leading comments
// become doc text. Flag options are supplied through the sidecar, since a
// compiled descriptor has nowhere to carry them. opts may be nil.
func FromDescriptorSet(data []byte, message string, opts *SidecarOptions) (*StructSchema, error) {
	var fds descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &fds); err != nil {
		return nil, fmt.Errorf("schema: malformed descriptor set: %w", err)
	}

	files, err := protodesc.NewFiles(&fds)
	if err != nil {
		return nil, fmt.Errorf("schema: invalid descriptor set: %w", err)
	}

	desc, err := files.FindDescriptorByName(protoreflect.FullName(message))
	if err != nil {
		return nil, fmt.Errorf("schema: message %q not found in descriptor set", message)
	}
	md, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("schema: %q is not a message", message)
	}

	s := &StructSchema{Name: string(md.Name())}
	if opts != nil {
		s.Prefix = opts.Prefix
	}

	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		name := string(fd.Name())

		td, err := typeDescForField(fd)
		if err != nil {
			return nil, fmt.Errorf("schema: struct %s, field %s: %w", s.Name, name, err)
		}

		spec := FieldSpec{
			Name: name,
			Type: td,
			Doc:  leadingComments(fd),
		}
		if opts != nil {
			if fo, ok := opts.Fields[name]; ok {
				spec.Opts = fo
			}
		}
		s.Fields = append(s.Fields, spec)
	}

	if opts != nil {
		if err := checkSidecarFields(s, opts); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// typeDescForField maps a proto field to a type descriptor. Only singular
// scalar fields are supported: flags are scalar-valued.
func typeDescForField(fd protoreflect.FieldDescriptor) (TypeDesc, error) {
	if fd.IsList() || fd.IsMap() {
		return TypeDesc{}, fmt.Errorf("repeated and map fields are not supported")
	}

	var name string
	switch fd.Kind() {
	case protoreflect.BoolKind:
		name = "bool"
	case protoreflect.StringKind:
		name = "string"
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		name = "int32"
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		name = "int64"
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		name = "uint32"
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		name = "uint64"
	case protoreflect.FloatKind:
		name = "float32"
	case protoreflect.DoubleKind:
		name = "float64"
	default:
		return TypeDesc{}, fmt.Errorf("field kind %s is not supported", fd.Kind())
	}

	return TypeDesc{Name: name, Optional: fd.HasOptionalKeyword()}, nil
}

// leadingComments extracts the field's leading comment from source info,
// normalized to plain text with the comment markers stripped.
func leadingComments(fd protoreflect.FieldDescriptor) string {
	loc := fd.ParentFile().SourceLocations().ByDescriptor(fd)
	if loc.LeadingComments == "" {
		return ""
	}
	lines := strings.Split(loc.LeadingComments, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// checkSidecarFields rejects sidecar entries that do not name a field of
// the message, so that a typo does not silently drop an option block.
func checkSidecarFields(s *StructSchema, opts *SidecarOptions) error {
	known := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		known[f.Name] = true
	}
	var unknown []string
	for name := range opts.Fields {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("schema: options name fields not present in %s: %s",
			s.Name, strings.Join(unknown, ", "))
	}
	return nil
}
