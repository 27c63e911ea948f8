package codegen

import "text/template"

var fileTemplate = template.Must(template.New("flags.go").Parse(fileTemplateSource))

const fileTemplateSource = `// Code generated by flaggen. DO NOT EDIT.
{{- if .Source}}
//
// Flags derived from {{.Struct}} in {{.Source}}.
{{- end}}

package {{.Package}}

import (
	"github.com/spf13/pflag"
)

// Flag variables for {{.Struct}}. Values are populated when the flag set
// they are registered on is parsed.
var (
{{- range .Flags}}
	{{.VarName}} {{.GoType}}
{{- end}}
)

// Register{{.Struct}}Flags registers one flag per {{.Struct}} field on fs.
// Use fs.Changed(name) to ask whether a flag was supplied on the command
// line, and the typed getters for its parsed value.
func Register{{.Struct}}Flags(fs *pflag.FlagSet) {
{{- range .Flags}}
	fs.{{.Method}}(&{{.VarName}}, {{printf "%q" .Name}}, {{.Default}}, {{printf "%q" .Usage}})
{{- end}}
}
`
