package codegen

import (
	"fmt"

	"github.com/flaggen/flaggen/internal/resolve"
)

// File holds all data needed to render one generated source file.
type File struct {
	Package string    // Target package name
	Struct  string    // Struct the flags were derived from
	Source  string    // Schema origin, for the header comment (may be "")
	Flags   []FlagDef // Declarations in field order
}

// FlagDef is one flag declaration unit, ready for the template: the
// resolved flag lowered to the pflag registration surface.
type FlagDef struct {
	VarName string // Flag variable name, exported or not per visibility
	Name    string // Flag name on the command line
	Method  string // pflag registration method (e.g., "Uint32Var")
	GoType  string // Go type of the flag variable
	Default string // Go literal for the default value
	Usage   string // Help text, with the placeholder in backticks
}

// pflagMethods maps emitted scalar types to pflag's typed registration
// methods. Types outside this vocabulary are registered as strings and
// parsed by the consumer, mirroring how string-backed custom types take
// their values.
var pflagMethods = map[string]string{
	"string":  "StringVar",
	"bool":    "BoolVar",
	"int":     "IntVar",
	"int8":    "Int8Var",
	"int16":   "Int16Var",
	"int32":   "Int32Var",
	"int64":   "Int64Var",
	"uint":    "UintVar",
	"uint8":   "Uint8Var",
	"uint16":  "Uint16Var",
	"uint32":  "Uint32Var",
	"uint64":  "Uint64Var",
	"float32": "Float32Var",
	"float64": "Float64Var",
}

// Build lowers a resolved schema to a renderable File.
func Build(res *resolve.Result, pkg, source string) File {
	file := File{
		Package: pkg,
		Struct:  res.Struct,
		Source:  source,
		Flags:   make([]FlagDef, 0, len(res.Flags)),
	}
	for _, f := range res.Flags {
		file.Flags = append(file.Flags, flagDef(f))
	}
	return file
}

func flagDef(f resolve.ResolvedFlag) FlagDef {
	def := FlagDef{
		VarName: varName(f.Name, f.Exported),
		Name:    f.Name,
		Default: f.Default.Raw,
		Usage:   usage(f.Help, f.Placeholder),
	}

	if method, ok := pflagMethods[f.Type.Name]; ok {
		def.Method = method
		def.GoType = f.Type.Name
	} else {
		def.Method = "StringVar"
		def.GoType = "string"
	}
	return def
}

// varName converts a flag name to a Go variable name: "log-to-stderr"
// becomes flagLogToStderr, or FlagLogToStderr when exported.
func varName(flagName string, exported bool) string {
	out := make([]byte, 0, len(flagName))
	upper := true
	for _, c := range flagName {
		if c == '-' || c == '_' {
			upper = true
			continue
		}
		if upper {
			if c >= 'a' && c <= 'z' {
				c = c - 32
			}
			upper = false
		}
		out = append(out, byte(c))
	}
	if exported {
		return "Flag" + string(out)
	}
	return "flag" + string(out)
}

// usage renders the flag's usage string. pflag picks the placeholder out
// of backticks in the usage text, so the placeholder rides along there.
func usage(help, placeholder string) string {
	if placeholder == "" {
		return help
	}
	if help == "" {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("%s `%s`", help, placeholder)
}
