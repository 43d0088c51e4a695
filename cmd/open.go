package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/config"
	"github.com/performai/pcfg/internal/pcfg/editor"
)

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Make a config file the default",
	Long: `Check that the file can be opened and remember it in .pcfg/conf.yaml in
the current directory, so later commands use it without --file.`,
	Example: `  pcfg open D:\SDEZ\Package\segatools.ini`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := editor.New()
		if err := e.Open(args[0]); err != nil {
			return err
		}

		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := config.SetDefaultFile(dir, e.Path()); err != nil {
			return err
		}

		log.Success("%s", e.Status())
		fmt.Fprintf(cmd.OutOrStdout(), "Default config set to %s\n", e.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
