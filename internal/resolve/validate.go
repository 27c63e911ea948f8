package resolve

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/flaggen/flaggen/internal/naming"
	"github.com/flaggen/flaggen/internal/schema"
)

// Validate inspects the whole schema and reports every fatal violation it
// finds, aggregated into one error, rather than stopping at the first.
//
// Fatal conditions:
//   - a struct prefix with characters invalid for flag names;
//   - a "type" override on a skipped field ("skip" suppresses emission, so
//     the override can never take effect);
//   - a "default" literal whose kind does not match the emitted type;
//   - an unknown "visibility" descriptor.
//
// "default", "placeholder" and "visibility" on a skipped field are inert
// rather than fatal; Resolve reports them as warnings.
func Validate(s *schema.StructSchema) error {
	var merr *multierror.Error

	if err := naming.CheckPrefix(s.Prefix); err != nil {
		merr = multierror.Append(merr, &Diagnostic{
			Struct: s.Name,
			Option: "prefix",
			Msg:    err.Error(),
		})
	}

	for _, f := range s.Fields {
		if f.Opts.Skip {
			if f.Opts.Type != nil {
				merr = multierror.Append(merr, &Diagnostic{
					Struct: s.Name,
					Field:  f.Name,
					Option: "type",
					Msg:    `cannot be combined with "skip"`,
				})
			}
			continue
		}

		if v := f.Opts.Visibility; v != "" &&
			v != schema.VisibilityExported && v != schema.VisibilityUnexported {
			merr = multierror.Append(merr, &Diagnostic{
				Struct: s.Name,
				Field:  f.Name,
				Option: "visibility",
				Msg: fmt.Sprintf("unknown visibility %q (must be %q or %q)",
					v, schema.VisibilityExported, schema.VisibilityUnexported),
			})
		}

		if f.Opts.Default != nil {
			emitted := emittedType(f)
			if !literalMatches(f.Opts.Default.Kind, emitted.Kind()) {
				merr = multierror.Append(merr, &Diagnostic{
					Struct: s.Name,
					Field:  f.Name,
					Option: "default",
					Msg: fmt.Sprintf("%s literal %s does not match type %s",
						f.Opts.Default.Kind, f.Opts.Default.Raw, emitted),
				})
			}
		}
	}

	return merr.ErrorOrNil()
}

// literalMatches reports whether a literal of kind lk is structurally valid
// for a flag of type kind tk. Integer literals are accepted for float
// types. Types outside the scalar vocabulary parse their values from
// strings, so they take string literals only.
func literalMatches(lk schema.LitKind, tk schema.Kind) bool {
	switch tk {
	case schema.KindString, schema.KindOther:
		return lk == schema.LitString
	case schema.KindBool:
		return lk == schema.LitBool
	case schema.KindInt:
		return lk == schema.LitInt
	case schema.KindFloat:
		return lk == schema.LitInt || lk == schema.LitFloat
	default:
		return false
	}
}

// emittedType computes the type a field's flag will carry: the override if
// given (used verbatim, disabling the Optional unwrap), else the unwrapped
// declared type.
func emittedType(f schema.FieldSpec) schema.TypeDesc {
	if f.Opts.Type != nil {
		return *f.Opts.Type
	}
	return f.Type.Unwrap()
}
