// Package cmd provides command-line interface commands for pcfg
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
)

var (
	fileFlag      string
	noHistoryFlag bool
	yesFlag       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pcfg",
	Short: "Editor for segatools.ini cabinet configuration",
	Long: `pcfg - command-line editor for segatools.ini

Reads a segatools.ini, detects which game it belongs to and edits the
settings that matter for that game.

Features:
  • Automatic game detection (SDEZ, SDHD, SDDT, SDGA)
  • Interactive form editing with server presets
  • Card file (aime.txt / felica.txt) management
  • Raw text mode for everything else
  • Snapshot history with restore`,
	Example: `  # Show the current settings
  pcfg show

  # Edit interactively
  pcfg edit

  # Point the tool at a config somewhere else
  pcfg open D:\SDHD\bin\segatools.ini

  # Switch server
  pcfg server set aquadx.init.ink

  # Write the card number
  pcfg card save --content 01234567890123456789`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Path to segatools.ini (overrides PCFG_FILE and .pcfg/conf.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noHistoryFlag, "no-history", false, "Do not record snapshots before writing")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Never prompt; accept default answers")
}
