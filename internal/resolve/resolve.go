// Package resolve turns a parsed struct schema into the ordered list of
// flag declarations to emit, applying the option precedence and naming
// rules and validating option combinations first.
package resolve

import (
	"fmt"
	"strings"

	"github.com/flaggen/flaggen/internal/naming"
	"github.com/flaggen/flaggen/internal/schema"
)

// ResolvedFlag is the fully computed declaration for one non-skipped
// field, sufficient for a flag registry to register the flag and later
// answer "present on the command line" and "parsed value" queries.
type ResolvedFlag struct {
	Field       string          // Originating field name
	Name        string          // Final flag name
	Type        schema.TypeDesc // Emitted type, never Optional
	Default     schema.Literal  // Explicit default or the type's zero value
	Help        string          // First paragraph of the field's doc comment
	Exported    bool            // Generated flag variable is exported
	Placeholder string          // Placeholder for help output, "" if none
}

// Result is the outcome of resolving one struct schema.
type Result struct {
	Struct   string
	Flags    []ResolvedFlag // one per non-skipped field, in field order
	Warnings []string       // non-fatal conditions worth surfacing
}

// Resolve validates a schema and computes its resolved flags. Resolution
// is deterministic: the same schema always yields the same result. A
// validation failure aborts with no flags resolved.
func Resolve(s *schema.StructSchema) (*Result, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	res := &Result{Struct: s.Name}

	for _, f := range s.Fields {
		if f.Opts.Skip {
			res.Warnings = append(res.Warnings, inertOptionWarnings(s.Name, f)...)
			continue
		}

		flag := ResolvedFlag{
			Field:       f.Name,
			Name:        naming.FlagName(f.Name, s.Prefix),
			Type:        emittedType(f),
			Help:        helpText(f.Doc),
			Exported:    f.Opts.Visibility == schema.VisibilityExported,
			Placeholder: f.Opts.Placeholder,
		}

		if f.Opts.Default != nil {
			flag.Default = *f.Opts.Default
		} else {
			flag.Default = flag.Type.Zero()
		}

		if flag.Help == "" {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("struct %s, field %s: no doc comment, flag --%s will have no help text",
					s.Name, f.Name, flag.Name))
		}

		res.Flags = append(res.Flags, flag)
	}

	return res, nil
}

// inertOptionWarnings reports options that have no effect because the
// field is skipped. They are ignored rather than rejected; see Validate
// for the one combination that is fatal.
func inertOptionWarnings(structName string, f schema.FieldSpec) []string {
	var inert []string
	if f.Opts.Default != nil {
		inert = append(inert, "default")
	}
	if f.Opts.Placeholder != "" {
		inert = append(inert, "placeholder")
	}
	if f.Opts.Visibility != "" {
		inert = append(inert, "visibility")
	}

	warnings := make([]string, 0, len(inert))
	for _, opt := range inert {
		warnings = append(warnings,
			fmt.Sprintf("struct %s, field %s: option %q has no effect on a skipped field",
				structName, f.Name, opt))
	}
	return warnings
}

// helpText extracts the first paragraph of a doc comment, with its lines
// joined into one.
func helpText(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	para := doc
	if i := strings.Index(doc, "\n\n"); i >= 0 {
		para = doc[:i]
	}
	lines := strings.Split(para, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}
