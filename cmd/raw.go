package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/notify"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Advanced mode: read or replace the file text",
	Long: `Advanced mode works on the file text as stored on disk, including
comments and sections the editor does not manage.`,
}

var rawShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config file verbatim",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.requireLoaded(); err != nil {
			return err
		}
		text, err := s.editor.RawText()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

var rawApplyCmd = &cobra.Command{
	Use:   "apply <file|->",
	Short: "Replace the config file with new text",
	Long: `Write the given text to the config file exactly as provided and reload
it. Use - to read the text from standard input.`,
	Example: `  pcfg raw apply edited.ini
  pcfg raw show | sed 's/enable=0/enable=1/' | pcfg raw apply - --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if !s.editor.Loaded() {
			if err := s.offerOpen(); err != nil {
				return err
			}
		}

		text, err := readRawInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}

		answer, err := s.ui.Notify(notify.Message{
			Title:    "Apply raw text",
			Text:     fmt.Sprintf("Replace %s with the new text?", s.editor.Path()),
			Details:  "The file is written exactly as given and reloaded.",
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

		if err := s.editor.ApplyRaw(text); err != nil {
			return err
		}
		log.Success("Applied raw text, detected %s", s.editor.Variant())
		return nil
	},
}

func readRawInput(stdin io.Reader, source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
	//nolint:gosec // G304: user supplied path
	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(errors.ErrFileNotFound, "%s", source)
		}
		return "", errors.Wrapf(err, "failed to read %s", source)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(rawCmd)
	rawCmd.AddCommand(rawShowCmd)
	rawCmd.AddCommand(rawApplyCmd)
}
