package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/supafox/supafox/internal/auth"
)

var routesCmd = &cobra.Command{
	Use:   "routes <path>...",
	Short: "Show how request paths are guarded",
	Long: `Classify each path against the configured route tables and show what an
anonymous and a signed-in visitor get.

Examples:
  supafox routes /dashboard /login /legal/terms
  supafox routes -o json /account/billing`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoutes,
}

var routesOutput string

func init() {
	rootCmd.AddCommand(routesCmd)
	addOutputFlag(routesCmd, &routesOutput)
}

// routeDecision is the resolver outcome for one path.
type routeDecision struct {
	Path      string `json:"path" yaml:"path"`
	Class     string `json:"class" yaml:"class"`
	Anonymous string `json:"anonymous" yaml:"anonymous"`
	SignedIn  string `json:"signed_in" yaml:"signed_in"`
}

func runRoutes(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	return writeDecisions(cmd.OutOrStdout(), decide(cfg.RouteTable(), args), routesOutput)
}

func decide(routes auth.Routes, paths []string) []routeDecision {
	const pass = "pass"

	out := make([]routeDecision, 0, len(paths))
	for _, p := range paths {
		d := routeDecision{Path: p, Anonymous: pass, SignedIn: pass}
		class := routes.Classify(p)
		d.Class = class.String()
		switch class {
		case auth.Protected:
			d.Anonymous = "redirect " + routes.Login
		case auth.AuthOnly:
			d.SignedIn = "redirect " + routes.Landing
		}
		out = append(out, d)
	}
	return out
}

func writeDecisions(w io.Writer, decisions []routeDecision, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(decisions)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(decisions); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tCLASS\tANONYMOUS\tSIGNED IN")
	for _, d := range decisions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Path, d.Class, d.Anonymous, d.SignedIn)
	}
	return tw.Flush()
}
