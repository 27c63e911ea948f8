// Package naming derives flag names from field names and a struct-level
// prefix. The transform is pure and injective across one struct's fields:
// field names are unique and each substitution preserves distinctness.
package naming

import (
	"fmt"
	"strings"
)

// FlagName derives the final flag name for a field.
//
// The prefix's trailing character picks the case convention:
//   - empty prefix: the field name is used as-is (field names are already
//     snake_case);
//   - prefix ending in "_": snake_case, prefix + field name;
//   - prefix ending in "-": kebab-case, prefix + field name with
//     underscores replaced by hyphens;
//   - prefix with no trailing separator: kebab-case, joined with a hyphen
//     ("pw" + "charset" → "pw-charset").
func FlagName(fieldName, prefix string) string {
	switch {
	case prefix == "":
		return fieldName
	case strings.HasSuffix(prefix, "_"):
		return prefix + fieldName
	case strings.HasSuffix(prefix, "-"):
		return prefix + Kebab(fieldName)
	default:
		return prefix + "-" + Kebab(fieldName)
	}
}

// Kebab converts a snake_case name to kebab-case.
func Kebab(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// CheckPrefix verifies that a prefix contains only characters valid for
// flag names: letters, digits and the two separators.
func CheckPrefix(prefix string) error {
	for _, r := range prefix {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return fmt.Errorf("prefix %q contains invalid character %q", prefix, r)
		}
	}
	return nil
}
