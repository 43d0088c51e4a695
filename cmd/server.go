package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

var serverVariant string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Inspect and switch the network server",
	Long:  `List the server presets of a game or point dns.default at one of them.`,
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List server presets",
	Long: `List the server presets of the detected game. Without a loadable config
the SDEZ list is shown unless --variant is given.`,
	Example: `  pcfg server list
  pcfg server list --variant SDDT`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := variant.SDEZ
		current := ""

		if serverVariant != "" {
			parsed, err := variant.Parse(serverVariant)
			if err != nil {
				return err
			}
			v = parsed
		} else {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()
			if s.editor.Loaded() {
				v = s.editor.Variant()
				current = s.editor.Document().GetString("dns", "default", "")
			}
		}

		printPresets(cmd.OutOrStdout(), v, current)
		return nil
	},
}

func printPresets(w io.Writer, v variant.Variant, current string) {
	selected, _ := variant.SelectPreset(v, current)
	fmt.Fprintf(w, "Servers for %s:\n", v)
	for i, p := range variant.Presets(v) {
		marker := " "
		if current != "" && i == selected {
			marker = "*"
		}
		address := p.Address
		if address == variant.CustomAddress {
			address = "<address>"
			if marker == "*" {
				address = current
			}
		}
		fmt.Fprintf(w, " %s %d  %-22s %s\n", marker, i, address, p.Description)
	}
}

var serverSetCmd = &cobra.Command{
	Use:   "set <address|index>",
	Short: "Set dns.default",
	Long: `Set dns.default to a preset (by index from 'pcfg server list') or to
any address.`,
	Example: `  pcfg server set 0
  pcfg server set my.private.server`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		return s.applyAndSave(func(e *editor.Editor) error {
			address, err := resolveServer(e.Variant(), args[0])
			if err != nil {
				return err
			}
			if help := variant.ServerHelp(e.Variant(), address); help != "" {
				log.InfoH2("%s", help)
			}
			return e.Set("dns", "default", address)
		})
	},
}

// resolveServer maps a preset index or a literal address to the value stored
// in dns.default
func resolveServer(v variant.Variant, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errors.Wrap(errors.ErrInvalidValue, "server address is empty")
	}

	idx, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}
	presets := variant.Presets(v)
	if idx < 0 || idx >= variant.CustomIndex(v) {
		return "", errors.Wrapf(errors.ErrInvalidValue, "preset %d out of range 0-%d for %s", idx, len(presets)-2, v)
	}
	return presets[idx].Address, nil
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverListCmd)
	serverCmd.AddCommand(serverSetCmd)

	serverListCmd.Flags().StringVar(&serverVariant, "variant", "", "Game variant (SDEZ, SDHD, SDDT, SDGA)")
	_ = serverListCmd.RegisterFlagCompletionFunc("variant", validVariantNames)
}
