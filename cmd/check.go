package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flaggen/flaggen/internal/resolve"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a schema without generating code",
	Long: `Validate a configuration schema and print the flags it would produce.

All validation violations are reported together, so one run surfaces every
problem in the schema.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringVar(&flagSchema, "schema", "", "path to a JSON or YAML schema document")
	f.StringVar(&flagDescriptor, "descriptor", "", "path to a serialized protobuf FileDescriptorSet")
	f.StringVar(&flagMessage, "message", "", "full name of the message to derive flags from (with --descriptor)")
	f.StringVar(&flagOptions, "options", "", "path to a sidecar options document (with --descriptor)")
	f.StringVar(&flagPrefix, "prefix", "", "override the struct-level flag prefix")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	s, source, err := loadSchema()
	if err != nil {
		return err
	}

	res, err := resolve.Resolve(s)
	if err != nil {
		return err
	}
	printWarnings(cmd, res.Warnings)

	fmt.Printf("%s: %d flags from struct %s\n", source, len(res.Flags), s.Name)
	for _, f := range res.Flags {
		line := fmt.Sprintf("  --%s  %s  default %s", f.Name, f.Type, f.Default.Raw)
		if f.Help != "" {
			line += "  " + f.Help
		}
		fmt.Println(line)
	}
	return nil
}
