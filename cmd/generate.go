package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flaggen/flaggen/internal/codegen"
	"github.com/flaggen/flaggen/internal/resolve"
	"github.com/flaggen/flaggen/internal/schema"
)

var (
	flagSchema     string
	flagDescriptor string
	flagMessage    string
	flagOptions    string
	flagPrefix     string
	flagOutput     string
	flagPackage    string
	flagVerbose    bool
	flagQuiet      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate flag registration code from a schema",
	Long: `Generate Go flag registration code from a configuration schema.

flaggen reads a struct schema, resolves one flag per non-skipped field,
and writes a Go source file that registers the flags on a pflag.FlagSet.

Examples:
  # From a JSON or YAML schema document
  flaggen generate --schema config.json --output ./internal/logcfg

  # From a compiled protobuf descriptor set
  flaggen generate --descriptor config.binpb --message log.config.v1.Config

  # With a sidecar options document carrying prefix/skip/etc.
  flaggen generate --descriptor config.binpb --message log.config.v1.Config \
      --options config_options.json

  # Override the struct-level prefix
  flaggen generate --schema config.yaml --prefix log-`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&flagSchema, "schema", "", "path to a JSON or YAML schema document")
	f.StringVar(&flagDescriptor, "descriptor", "", "path to a serialized protobuf FileDescriptorSet")
	f.StringVar(&flagMessage, "message", "", "full name of the message to derive flags from (with --descriptor)")
	f.StringVar(&flagOptions, "options", "", "path to a sidecar options document (with --descriptor)")
	f.StringVar(&flagPrefix, "prefix", "", "override the struct-level flag prefix")
	f.StringVar(&flagOutput, "output", ".", "directory where the generated file is written")
	f.StringVar(&flagPackage, "package", "", "package name for the generated file (default: output directory name)")
	f.BoolVar(&flagVerbose, "verbose", false, "show detailed progress during generation")
	f.BoolVar(&flagQuiet, "quiet", false, "suppress all output except errors")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	s, source, err := loadSchema()
	if err != nil {
		return err
	}
	verbose("Loaded schema for struct %s (%d fields)", s.Name, len(s.Fields))

	res, err := resolve.Resolve(s)
	if err != nil {
		return err
	}
	printWarnings(cmd, res.Warnings)
	verbose("Resolved %d flags", len(res.Flags))

	pkg := flagPackage
	if pkg == "" {
		pkg = packageName(flagOutput)
	}

	file := codegen.Build(res, pkg, source)
	path, err := codegen.Write(file, flagOutput)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Wrote %s (%d flags from %s)\n", path, len(res.Flags), s.Name)
		for _, f := range res.Flags {
			fmt.Printf("  --%s  %s\n", f.Name, f.Type)
		}
	}
	return nil
}

// loadSchema reads the struct schema from whichever input was given.
// Returns the schema and a short description of its origin.
func loadSchema() (*schema.StructSchema, string, error) {
	if flagSchema != "" {
		data, err := os.ReadFile(flagSchema)
		if err != nil {
			return nil, "", fmt.Errorf("reading schema: %s", err)
		}

		var s *schema.StructSchema
		switch strings.ToLower(filepath.Ext(flagSchema)) {
		case ".yaml", ".yml":
			s, err = schema.ParseYAML(data)
		default:
			s, err = schema.Parse(data)
		}
		if err != nil {
			return nil, "", err
		}
		applyPrefixOverride(s)
		return s, filepath.Base(flagSchema), nil
	}

	data, err := os.ReadFile(flagDescriptor)
	if err != nil {
		return nil, "", fmt.Errorf("reading descriptor set: %s", err)
	}

	var opts *schema.SidecarOptions
	if flagOptions != "" {
		optData, err := os.ReadFile(flagOptions)
		if err != nil {
			return nil, "", fmt.Errorf("reading options: %s", err)
		}
		opts, err = schema.ParseSidecar(optData)
		if err != nil {
			return nil, "", err
		}
	}

	s, err := schema.FromDescriptorSet(data, flagMessage, opts)
	if err != nil {
		return nil, "", err
	}
	applyPrefixOverride(s)
	return s, flagMessage, nil
}

func applyPrefixOverride(s *schema.StructSchema) {
	if flagPrefix != "" {
		s.Prefix = flagPrefix
	}
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	if flagQuiet {
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
}

// packageName derives a Go package name from the output directory.
func packageName(dir string) string {
	base := filepath.Base(dir)
	if base == "." || base == string(filepath.Separator) || base == "" {
		if abs, err := filepath.Abs(dir); err == nil {
			base = filepath.Base(abs)
		}
	}
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, base)
	if name == "" {
		return "main"
	}
	return name
}

// verbose prints a message if --verbose is set.
func verbose(format string, args ...interface{}) {
	if flagVerbose {
		fmt.Printf(format+"\n", args...)
	}
}

func validateFlags() error {
	if flagSchema == "" && flagDescriptor == "" {
		return fmt.Errorf("provide --schema or --descriptor to specify the input schema")
	}

	if flagSchema != "" && flagDescriptor != "" {
		return fmt.Errorf("--schema and --descriptor cannot be used together")
	}

	if flagDescriptor != "" && flagMessage == "" {
		return fmt.Errorf("--descriptor requires --message to pick the message")
	}

	if flagSchema != "" && flagMessage != "" {
		return fmt.Errorf("--message only applies with --descriptor")
	}

	if flagSchema != "" && flagOptions != "" {
		return fmt.Errorf("--options only applies with --descriptor; inline the options in the schema document")
	}

	if flagVerbose && flagQuiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	return nil
}
