package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"s"},
	Short:   "Show the settings of the current config",
	Long: `Show the detected game and every setting the editor manages,
grouped by tab, followed by the card file location.`,
	Example: `  pcfg show
  pcfg show --file D:\SDDT\package\segatools.ini`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.requireLoaded(); err != nil {
			return err
		}

		printSettings(cmd.OutOrStdout(), s.editor)
		s.warnCardConflict()
		return nil
	},
}

func printSettings(w io.Writer, e *editor.Editor) {
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", bold("File:"), e.Path())
	fmt.Fprintf(w, "%s %s\n", bold("Game:"), e.Variant())

	f := e.Forms()
	tab := ""
	for _, field := range f.Fields() {
		if field.Tab != tab {
			tab = field.Tab
			fmt.Fprintf(w, "\n%s\n", bold("["+tab+"]"))
		}
		fmt.Fprintf(w, "  %-20s %s\n", field.Label, field.Value)
	}

	if help := variant.ServerHelp(e.Variant(), f.Common.Server(e.Variant())); help != "" {
		fmt.Fprintf(w, "  %-20s %s\n", "", color.HiBlackString(help))
	}

	cardPath := e.CardPath()
	state := "missing"
	if _, ok, err := e.LoadCard(); err == nil && ok {
		state = "present"
	}
	fmt.Fprintf(w, "\n%s %s (%s)\n", bold("Card file:"), cardPath, state)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
