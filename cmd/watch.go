package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Reload and report whenever the config changes on disk",
	Long: `Watch the config file and reload it after every change, printing the
detected game each time. Useful while editing the file by hand or while a
launcher rewrites it.

Stop with Ctrl+C.`,
	Example: `  pcfg watch
  pcfg watch --debounce 1s`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.requireLoaded(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watcher.New(s.editor, watchDebounce, reportChange)
		if err := w.Run(ctx); err != nil {
			return err
		}
		log.Info("Stopped watching %s", s.editor.Path())
		return nil
	},
}

func reportChange(ev watcher.Event) {
	if ev.Err != nil {
		log.Error("Reload of %s failed: %v", ev.Path, ev.Err)
		return
	}
	log.Success("%s", ev.Status)
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet period before reloading")
}
