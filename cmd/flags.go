package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats shared by the listing commands.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var outputFormats = []string{formatTable, formatJSON, formatYAML}

// bindFlags binds each named flag to a configuration key so a flag set on the
// command line overrides the file and the environment.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := keys[f.Name]; ok {
			_ = viper.BindPFlag(key, f)
		}
	})
}

// addOutputFlag adds --output/-o and rejects unknown formats before the
// command runs.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", formatTable,
		fmt.Sprintf("Output format (%s)", strings.Join(outputFormats, "|")))

	previous := cmd.PreRunE
	cmd.PreRunE = func(c *cobra.Command, args []string) error {
		if err := validateFormat(*target); err != nil {
			return err
		}
		if previous != nil {
			return previous(c, args)
		}
		return nil
	}
}

func validateFormat(format string) error {
	for _, f := range outputFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(outputFormats, ", "))
}
