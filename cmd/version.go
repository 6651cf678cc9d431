package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/supafox/supafox/internal/version"
)

var (
	versionFormat   string
	versionDetailed bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the version, commit, build time, Go version and platform.

Examples:
  supafox version              # Short version
  supafox version --detailed   # One field per line
  supafox version -f json      # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout(), version.Get(), versionFormat, versionDetailed)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Show detailed version information")
}

func writeVersion(w io.Writer, info *version.BuildInfo, format string, detailed bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "text":
		if detailed {
			_, err := fmt.Fprintln(w, info.Detailed())
			return err
		}
		_, err := fmt.Fprintf(w, "supafox %s\n", info.Short())
		return err
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}
