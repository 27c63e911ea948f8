// Package codegen renders resolved flag declarations as Go source that
// registers each flag on a pflag.FlagSet. It emits declarations only —
// merging parsed flag values back into a config struct is glue the
// consumer writes against the "present + value" query surface.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// Render produces the gofmt-formatted source for a generated file.
// Rendering is deterministic: the same input yields byte-identical output.
func Render(file File) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, file); err != nil {
		return nil, fmt.Errorf("codegen: render template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: generated source does not format: %w", err)
	}
	return src, nil
}

// Write renders the file into outputDir and returns the written path. The
// file name is derived from the struct name ("Config" → "config_flags.go").
func Write(file File, outputDir string) (string, error) {
	src, err := Render(file)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("codegen: create output dir: %w", err)
	}

	path := filepath.Join(outputDir, FileName(file.Struct))
	if err := os.WriteFile(path, src, 0644); err != nil {
		return "", fmt.Errorf("codegen: write %s: %w", path, err)
	}
	return path, nil
}

// FileName returns the generated file name for a struct.
func FileName(structName string) string {
	return strings.ToLower(structName) + "_flags.go"
}
