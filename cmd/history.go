package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/history"
	"github.com/performai/pcfg/internal/pcfg/notify"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and restore snapshots",
	Long: `Every write made by pcfg first stores the previous file content in
.pcfg/history.db next to the config. Snapshots can be listed and restored.

Disable recording with --no-history or 'history: false' in .pcfg/conf.yaml.`,
}

var historyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List snapshots of the config, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		snaps, err := s.history.List(s.path, historyLimit)
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			log.Info("No snapshots recorded for %s", s.path)
			return nil
		}
		printSnapshots(cmd.OutOrStdout(), snaps)
		return nil
	},
}

func printSnapshots(w io.Writer, snaps []history.Snapshot) {
	for _, snap := range snaps {
		lines := strings.Count(snap.Content, "\n")
		fmt.Fprintf(w, "%5d  %s  %-12s %d lines\n",
			snap.ID, snap.CreatedAt.Local().Format("2006-01-02 15:04:05"), snap.Reason, lines)
	}
}

var historyRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Write a snapshot back to the config",
	Long: `Restore a snapshot. The current content is itself recorded first, so a
restore can be undone.`,
	Example: `  pcfg history list
  pcfg history restore 12`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidValue, "snapshot id %q", args[0])
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.requireLoaded(); err != nil {
			return err
		}

		answer, err := s.ui.Notify(notify.Message{
			Title:    "Restore snapshot",
			Text:     fmt.Sprintf("Replace %s with snapshot %d?", s.editor.Path(), id),
			Buttons:  notify.YesNo,
			Severity: notify.Question,
			Default:  notify.ButtonYes,
		})
		if err != nil {
			return err
		}
		if answer != notify.ButtonYes {
			return errors.ErrCancelled
		}

		if err := s.editor.Restore(id); err != nil {
			return err
		}
		log.Success("Restored snapshot %d, detected %s", id, s.editor.Variant())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyRestoreCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of snapshots to list")
}
