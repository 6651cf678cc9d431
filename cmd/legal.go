package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/supafox/supafox/internal/content"
)

var legalCmd = &cobra.Command{
	Use:   "legal",
	Short: "Inspect the legal documents",
}

var legalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the legal documents",
	Long: `List the legal documents under the content directory, newest first.

Examples:
  supafox legal list              # Published documents as a table
  supafox legal list --all        # Include drafts
  supafox legal list -o json      # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runLegalList,
}

var legalCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every legal document",
	Long: `Parse and render every legal document and report the first invalid one.
Exits non-zero when a document would stop the server from starting.`,
	Args: cobra.NoArgs,
	RunE: runLegalCheck,
}

var (
	legalOutput string
	legalAll    bool
)

func init() {
	rootCmd.AddCommand(legalCmd)
	legalCmd.AddCommand(legalListCmd, legalCheckCmd)

	addOutputFlag(legalListCmd, &legalOutput)
	legalListCmd.Flags().BoolVarP(&legalAll, "all", "a", false, "Include unpublished documents")
}

// documentSummary is the listing view of a document.
type documentSummary struct {
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
	Published   bool   `json:"published" yaml:"published"`
	Source      string `json:"source" yaml:"source"`
}

func loadStore(cmd *cobra.Command) (*content.Store, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	// Reload logs the failing document itself.
	store := content.NewStore(cfg.Content.Dir, content.WithLogger(logger))
	if err := store.Reload(cmd.Context()); err != nil {
		return nil, err
	}
	return store, nil
}

func runLegalList(cmd *cobra.Command, args []string) error {
	store, err := loadStore(cmd)
	if err != nil {
		return err
	}

	docs := store.Published()
	if legalAll {
		docs = store.All()
	}
	return writeDocuments(cmd.OutOrStdout(), summarize(docs), legalOutput)
}

func runLegalCheck(cmd *cobra.Command, args []string) error {
	store, err := loadStore(cmd)
	if err != nil {
		return err
	}
	all := store.All()
	fmt.Fprintf(cmd.OutOrStdout(), "%d documents OK (%d published)\n", len(all), len(store.Published()))
	return nil
}

func summarize(docs []*content.Document) []documentSummary {
	out := make([]documentSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentSummary{
			Slug:        d.Slug,
			Title:       d.Title,
			Description: d.Description,
			Date:        d.Date.Format(content.DateLayout),
			Published:   d.Published,
			Source:      d.SourcePath,
		})
	}
	return out
}

func writeDocuments(w io.Writer, docs []documentSummary, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(docs) == 0 {
		fmt.Fprintln(w, "No legal documents found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tTITLE\tDATE\tPUBLISHED")
	for _, d := range docs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", d.Slug, d.Title, d.Date, d.Published)
	}
	return tw.Flush()
}
