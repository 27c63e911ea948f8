package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "flaggen",
	Short: "Generate command-line flags from configuration schemas",
	Long:  "flaggen turns a declared configuration schema into command-line flag definitions,\nso a library's config shape and its CLI surface cannot drift apart.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.SetVersionTemplate(fmt.Sprintf("flaggen v%s\n", appVersion))
}

func Execute() error {
	rootCmd.Version = appVersion
	return rootCmd.Execute()
}
