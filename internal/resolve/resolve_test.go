package resolve

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flaggen/flaggen/internal/schema"
)

func mustType(t *testing.T, s string) schema.TypeDesc {
	t.Helper()
	td, err := schema.ParseTypeDesc(s)
	if err != nil {
		t.Fatalf("ParseTypeDesc(%q): %v", s, err)
	}
	return td
}

func TestResolveBasic(t *testing.T) {
	s := &schema.StructSchema{
		Name: "Config",
		Fields: []schema.FieldSpec{
			{Name: "to_stderr", Type: mustType(t, "bool"), Doc: "True if log messages should also be sent to STDERR"},
			{Name: "dir", Type: mustType(t, "string"), Doc: "The directory to write log files to"},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []ResolvedFlag{
		{
			Field:   "to_stderr",
			Name:    "to_stderr",
			Type:    schema.TypeDesc{Name: "bool"},
			Default: schema.Literal{Kind: schema.LitBool, Raw: "false"},
			Help:    "True if log messages should also be sent to STDERR",
		},
		{
			Field:   "dir",
			Name:    "dir",
			Type:    schema.TypeDesc{Name: "string"},
			Default: schema.Literal{Kind: schema.LitString, Raw: `""`},
			Help:    "The directory to write log files to",
		},
	}
	if diff := cmp.Diff(want, res.Flags); diff != "" {
		t.Errorf("flags mismatch (-want +got):\n%s", diff)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestResolveOptionalUnwrap(t *testing.T) {
	s := &schema.StructSchema{
		Name: "Config",
		Fields: []schema.FieldSpec{
			{Name: "level", Type: mustType(t, "Optional<u32>"), Doc: "Log level"},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.Flags[0]
	if got.Type.Optional || got.Type.Name != "uint32" {
		t.Errorf("emitted type = %+v, want plain uint32", got.Type)
	}
	if got.Default.Raw != "0" {
		t.Errorf("default = %s, want 0", got.Default.Raw)
	}
}

// A type override on an Optional field takes precedence over the unwrap:
// the override is used verbatim.
func TestResolveOverrideBeatsUnwrap(t *testing.T) {
	override := mustType(t, "string")
	s := &schema.StructSchema{
		Name: "Config",
		Fields: []schema.FieldSpec{
			{Name: "level", Type: mustType(t, "Optional<u32>"), Doc: "Log level",
				Opts: schema.FieldOptions{Type: &override}},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Flags[0].Type; got.Name != "string" || got.Optional {
		t.Errorf("emitted type = %+v, want string", got)
	}
}

func TestResolveSkip(t *testing.T) {
	def := schema.Literal{Kind: schema.LitBool, Raw: "true"}
	s := &schema.StructSchema{
		Name: "Config",
		Fields: []schema.FieldSpec{
			{Name: "dir", Type: mustType(t, "string"), Doc: "dir",
				Opts: schema.FieldOptions{Skip: true, Default: &def, Placeholder: "DIR"}},
			{Name: "kept", Type: mustType(t, "bool"), Doc: "kept"},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Flags) != 1 || res.Flags[0].Field != "kept" {
		t.Fatalf("flags = %+v, want only kept", res.Flags)
	}

	// Inert options on the skipped field warn.
	if len(res.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", res.Warnings)
	}
	for _, w := range res.Warnings {
		if !strings.Contains(w, "no effect on a skipped field") {
			t.Errorf("unexpected warning %q", w)
		}
	}
}

func TestResolveExplicitDefault(t *testing.T) {
	def := schema.Literal{Kind: schema.LitInt, Raw: "16"}
	s := &schema.StructSchema{
		Name: "Config",
		Fields: []schema.FieldSpec{
			{Name: "length", Type: mustType(t, "u32"), Doc: "Length",
				Opts: schema.FieldOptions{Default: &def}},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Flags[0].Default.Raw != "16" {
		t.Errorf("default = %s, want 16", res.Flags[0].Default.Raw)
	}
}

func TestResolveVisibilityAndPlaceholder(t *testing.T) {
	s := &schema.StructSchema{
		Name:   "Config",
		Prefix: "log-",
		Fields: []schema.FieldSpec{
			{Name: "dir", Type: mustType(t, "string"), Doc: "The directory to write log files to",
				Opts: schema.FieldOptions{Visibility: schema.VisibilityExported, Placeholder: "DIR"}},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.Flags[0]
	if !got.Exported {
		t.Error("flag should be exported")
	}
	if got.Placeholder != "DIR" {
		t.Errorf("placeholder = %q, want DIR", got.Placeholder)
	}
	if got.Name != "log-dir" {
		t.Errorf("name = %q, want log-dir", got.Name)
	}
}

func TestResolveMissingDocWarns(t *testing.T) {
	s := &schema.StructSchema{
		Name: "Config",
		Fields: []schema.FieldSpec{
			{Name: "dir", Type: mustType(t, "string")},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "no doc comment") {
		t.Errorf("warnings = %v, want missing-doc warning", res.Warnings)
	}
	if res.Flags[0].Help != "" {
		t.Errorf("help = %q, want empty", res.Flags[0].Help)
	}
}

// The pwgen scenario: prefix "pw", two fields, no explicit defaults.
func TestResolvePwgenScenario(t *testing.T) {
	s := &schema.StructSchema{
		Name:   "Config",
		Prefix: "pw",
		Fields: []schema.FieldSpec{
			{Name: "charset", Type: mustType(t, "string"), Doc: "String to use for password characters"},
			{Name: "length", Type: mustType(t, "u32"), Doc: "Desired password length"},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Flags) != 2 {
		t.Fatalf("expected 2 flags, got %d", len(res.Flags))
	}

	first, second := res.Flags[0], res.Flags[1]
	if first.Name != "pw-charset" || first.Type.Name != "string" || first.Default.Raw != `""` {
		t.Errorf("first = %+v", first)
	}
	if second.Name != "pw-length" || second.Type.Name != "uint32" || second.Default.Raw != "0" {
		t.Errorf("second = %+v", second)
	}
}

func TestResolveNamesDistinct(t *testing.T) {
	s := &schema.StructSchema{
		Name:   "Config",
		Prefix: "log-",
		Fields: []schema.FieldSpec{
			{Name: "to_stderr", Type: mustType(t, "bool"), Doc: "a"},
			{Name: "to_stderr_level", Type: mustType(t, "u32"), Doc: "b"},
			{Name: "dir", Type: mustType(t, "string"), Doc: "c"},
		},
	}

	res, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	for _, f := range res.Flags {
		if seen[f.Name] {
			t.Errorf("duplicate flag name %q", f.Name)
		}
		seen[f.Name] = true
	}
}

// Resolution is deterministic: resolving the same schema twice yields
// identical results.
func TestResolveDeterministic(t *testing.T) {
	s := &schema.StructSchema{
		Name:   "Config",
		Prefix: "log-",
		Fields: []schema.FieldSpec{
			{Name: "to_stderr", Type: mustType(t, "bool"), Doc: "a"},
			{Name: "dir", Type: mustType(t, "Optional<string>"), Doc: "b",
				Opts: schema.FieldOptions{Placeholder: "DIR"}},
		},
	}

	first, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Resolve(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ between runs:\n%s", diff)
	}
}

func TestHelpTextFirstParagraph(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"single line", "The directory to write log files to", "The directory to write log files to"},
		{"two lines one paragraph", "True if log messages\nshould go to STDERR", "True if log messages should go to STDERR"},
		{"second paragraph dropped", "Short summary.\n\nLong discussion that goes on.", "Short summary."},
		{"surrounding whitespace", "  padded  \n", "padded"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := helpText(tc.doc); got != tc.want {
				t.Errorf("helpText(%q) = %q, want %q", tc.doc, got, tc.want)
			}
		})
	}
}
