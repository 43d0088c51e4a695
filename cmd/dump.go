package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/ini"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the parsed document",
	Long: `Print the document as the editor sees it after parsing: malformed lines
and comments are gone and sections keep their file order.

Formats: ini (normalised), yaml, json.`,
	Example: `  pcfg dump
  pcfg dump --format yaml
  pcfg dump --format json > segatools.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.requireLoaded(); err != nil {
			return err
		}
		return dumpDocument(cmd.OutOrStdout(), s.editor.Document(), dumpFormat)
	},
}

func dumpDocument(w io.Writer, doc *ini.Document, format string) error {
	switch strings.ToLower(format) {
	case "", "ini":
		_, err := doc.WriteTo(w)
		return err
	case "yaml", "yml":
		out, err := doc.ToYAML()
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		return errors.Wrapf(errors.ErrInvalidValue, "unknown format %q (use ini, yaml or json)", format)
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVar(&dumpFormat, "format", "ini", "Output format: ini, yaml or json")
	_ = dumpCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"ini", "yaml", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
}
