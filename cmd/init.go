package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/config"
	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/form"
	"github.com/performai/pcfg/internal/pcfg/notify"
	"github.com/performai/pcfg/internal/pcfg/variant"
	"github.com/performai/pcfg/internal/template"
)

var (
	initVariant    string
	initServer     string
	initKeychip    string
	initTemplate   string
	initSetDefault bool
)

var initCmd = &cobra.Command{
	Use:     "init [path]",
	Aliases: []string{"i"},
	Short:   "Create a starter segatools.ini",
	Long: `Create a segatools.ini with the sections the chosen game needs.

The file is never overwritten if it already exists. Values not given by
flags are asked for interactively (or take their defaults with --yes).
A custom text/template file can replace the built-in starter.`,
	Example: `  # Create ./segatools.ini, asking for the game
  pcfg init

  # Non-interactive
  pcfg init D:\SDHD\bin\segatools.ini --variant SDHD --keychip A69E01A8888 --yes

  # Use your own template
  pcfg init --template my-cab.ini.tmpl`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(dir)
		if err != nil {
			return err
		}

		dest := filepath.Join(dir, config.DEFAULT_FILE)
		if len(args) == 1 {
			dest = args[0]
		}

		info, err := starterInfo(newUI(settings), initVariant, initServer, initKeychip)
		if err != nil {
			return err
		}

		src := template.DefaultTemplate
		if initTemplate != "" {
			src = initTemplate
		}
		if err := template.ToDestination(src, initTemplate != "", info, dest); err != nil {
			return err
		}

		e := editor.New()
		if err := e.Open(dest); err != nil {
			return err
		}
		log.Success("Created %s", e.Status())

		if initSetDefault {
			if err := config.SetDefaultFile(dir, e.Path()); err != nil {
				return err
			}
			log.InfoH2("Default config set to %s", e.Path())
		}
		return nil
	},
}

// starterInfo collects the values the starter template needs
func starterInfo(p notify.Prompter, variantFlag, server, keychip string) (template.Info, error) {
	var v variant.Variant
	if variantFlag != "" {
		parsed, err := variant.Parse(variantFlag)
		if err != nil {
			return template.Info{}, err
		}
		v = parsed
	} else {
		idx, err := p.Select("Game", variant.Names(), 0)
		if err != nil {
			return template.Info{}, err
		}
		v = variant.All()[idx]
	}

	if server == "" {
		presets := variant.Presets(v)
		options := make([]string, 0, len(presets)-1)
		for _, preset := range presets[:len(presets)-1] {
			options = append(options, preset.Description+" - "+preset.Address)
		}
		idx, err := p.Select("Server", options, 0)
		if err != nil {
			return template.Info{}, err
		}
		server = presets[idx].Address
	}

	if keychip == "" {
		var err error
		if keychip, err = p.Input("Keychip ID", ""); err != nil {
			return template.Info{}, err
		}
	}

	return template.Info{
		Variant:   string(v),
		Server:    server,
		KeychipID: keychip,
		AimePath:  form.DefaultAimePath,
		RouterDNS: form.DefaultRouterDNS,
		Subnet:    form.DefaultSubnet,
		AMFS:      `..\amfs`,
		Option:    `..\option`,
		AppData:   `..\appdata`,
	}, nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initVariant, "variant", "", "Game variant (SDEZ, SDHD, SDDT, SDGA)")
	initCmd.Flags().StringVar(&initServer, "server", "", "dns.default address")
	initCmd.Flags().StringVar(&initKeychip, "keychip", "", "Keychip ID")
	initCmd.Flags().StringVar(&initTemplate, "template", "", "Render this text/template file instead of the built-in starter")
	initCmd.Flags().BoolVar(&initSetDefault, "set-default", false, "Remember the new file in .pcfg/conf.yaml")
	_ = initCmd.RegisterFlagCompletionFunc("variant", validVariantNames)
}
