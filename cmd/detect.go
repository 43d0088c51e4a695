package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected game variant",
	Long: `Print which game the config belongs to. Detection looks at which
sections are present:

  led15093 or unity          → SDDT
  slider or zhousensor.side_red → SDHD
  keychip.gameid = SDGA       → SDGA
  anything else              → SDEZ`,
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
		fmt.Fprintln(cmd.OutOrStdout(), s.editor.Variant())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
