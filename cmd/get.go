package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/errors"
)

var (
	getDefault string
	getBool    bool
)

var getCmd = &cobra.Command{
	Use:   "get <section> <key>",
	Short: "Print a single value",
	Long: `Print the value of section.key. When the key is missing the --default
value is printed instead; without --default a missing key is an error.

With --bool the value is printed as true/false, true only for "1".`,
	Example: `  pcfg get keychip id
  pcfg get aime enable --bool --default 1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.requireLoaded(); err != nil {
			return err
		}

		value, err := lookupValue(s.editor, args[0], args[1], getDefault, cmd.Flags().Changed("default"), getBool)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func lookupValue(e *editor.Editor, section, key, def string, hasDefault, asBool bool) (string, error) {
	doc := e.Document()
	if !hasDefault && !doc.Has(section) {
		return "", errors.Wrapf(errors.ErrSectionMissing, "[%s]", section)
	}
	if !hasDefault && !doc.HasKey(section, key) {
		return "", errors.Wrapf(errors.ErrKeyMissing, "%s.%s", section, key)
	}
	if asBool {
		return strconv.FormatBool(doc.GetBool(section, key, def == "1")), nil
	}
	return doc.GetString(section, key, def), nil
}

var setCmd = &cobra.Command{
	Use:   "set <section> <key> <value>",
	Short: "Change a single value and save",
	Example: `  pcfg set keychip id A69E01A8888
  pcfg set dns default my.server.lan`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		return s.applyAndSave(func(e *editor.Editor) error {
			return e.Set(args[0], args[1], args[2])
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)

	getCmd.Flags().StringVar(&getDefault, "default", "", "Value to print when the key is missing")
	getCmd.Flags().BoolVar(&getBool, "bool", false, "Interpret the value as a flag")
}
