package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/card"
	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/errors"
)

var (
	cardContent string
	cardFrom    string
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage the card file (aime.txt / felica.txt)",
	Long: `The card file holds the access code read by the emulated card reader.
Its location comes from aime.aimePath; when that file is missing but the
other of aime.txt / felica.txt exists in the same directory, that one is
used instead.`,
}

var cardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the card number",
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
		s.warnCardConflict()

		content, ok, err := s.editor.LoadCard()
		if err != nil {
			return err
		}
		if !ok {
			log.Warn("Card file not found: %s", s.editor.CardPath())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(content, "\r\n"))
		return nil
	},
}

var cardSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the card number",
	Long: `Write the card file. The content comes from --content, from the file
given by --from, or from standard input.`,
	Example: `  pcfg card save --content 01234567890123456789
  pcfg card save --from backup/aime.txt
  echo 01234567890123456789 | pcfg card save`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
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

		content, err := cardInput(cmd.InOrStdin(), cardContent, cmd.Flags().Changed("content"), cardFrom)
		if err != nil {
			return err
		}
		if err := s.editor.SaveCard(content); err != nil {
			return err
		}
		log.Success("Card file saved: %s", s.editor.CardPath())
		s.warnCardConflict()
		return nil
	},
}

// cardInput picks the card content from the flag, a file or stdin
func cardInput(stdin io.Reader, content string, hasContent bool, from string) (string, error) {
	switch {
	case hasContent:
		return content, nil
	case from != "":
		//nolint:gosec // G304: user supplied path
		data, err := os.ReadFile(from)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read %s", from)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
}

var cardResolveCmd = &cobra.Command{
	Use:   "resolve [path]",
	Short: "Show which card file would be used",
	Long: `Resolve a card path the same way the editor does. Without an argument
the configured aime.aimePath is resolved.`,
	Example: `  pcfg card resolve
  pcfg card resolve 'DEVICE\felica.txt'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		printCardResolution(cmd.OutOrStdout(), s.editor, args)
		return nil
	},
}

func printCardResolution(w io.Writer, e *editor.Editor, args []string) {
	setting := e.CardSetting()
	if len(args) == 1 {
		setting = args[0]
	}
	base := e.Dir()
	if base == "" {
		base, _ = os.Getwd()
	}

	configured := card.FullPath(setting, base)
	resolved := card.Resolve(setting, base)
	fmt.Fprintf(w, "configured: %s\n", configured)
	fmt.Fprintf(w, "resolved:   %s\n", resolved)
	if c, conflict := card.CheckConflict(filepath.Dir(configured)); conflict {
		fmt.Fprintf(w, "conflict:   %s and %s both exist\n", c.AimePath, c.FelicaPath)
	}
}

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardShowCmd)
	cardCmd.AddCommand(cardSaveCmd)
	cardCmd.AddCommand(cardResolveCmd)

	cardSaveCmd.Flags().StringVar(&cardContent, "content", "", "Card number to write")
	cardSaveCmd.Flags().StringVar(&cardFrom, "from", "", "Read the card number from this file")
	cardSaveCmd.MarkFlagsMutuallyExclusive("content", "from")
}
