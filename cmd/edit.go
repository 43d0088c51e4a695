package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/form"
	"github.com/performai/pcfg/internal/pcfg/notify"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

var editVariant string

var editCmd = &cobra.Command{
	Use:     "edit",
	Aliases: []string{"e"},
	Short:   "Edit the config interactively",
	Long: `Walk through every setting of the detected game, prompting with the
current value as default, then save.

The game can be overridden with --variant, which also switches the
game-specific questions (SDHD controller/side lights, SDDT LED/Unity).`,
	Example: `  pcfg edit
  pcfg edit --variant SDHD`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		return s.applyAndSave(func(e *editor.Editor) error {
			if err := chooseVariant(s.ui, e, editVariant); err != nil {
				return err
			}

			f, err := promptForms(s.ui, e.Forms())
			if err != nil {
				return err
			}
			if err := e.ApplyForms(f); err != nil {
				return err
			}

			cardNumber, editCard, err := promptCard(s.ui, e)
			if err != nil {
				return err
			}

			save, err := s.ui.Confirm("Save changes to "+e.Path()+"?", true)
			if err != nil {
				return err
			}
			if !save {
				return errors.ErrCancelled
			}
			if editCard {
				if err := e.SaveCard(cardNumber); err != nil {
					return err
				}
				log.InfoH2("Card file saved: %s", e.CardPath())
			}
			return nil
		})
	},
}

// chooseVariant applies --variant or asks for the game, defaulting to the
// detected one
func chooseVariant(p notify.Prompter, e *editor.Editor, flagValue string) error {
	if flagValue != "" {
		v, err := variant.Parse(flagValue)
		if err != nil {
			return err
		}
		e.SetVariant(v)
		return nil
	}

	names := variant.Names()
	current := 0
	for i, n := range names {
		if n == string(e.Variant()) {
			current = i
		}
	}
	idx, err := p.Select("Game", names, current)
	if err != nil {
		return err
	}
	if v := variant.All()[idx]; v != e.Variant() {
		e.SetVariant(v)
	}
	return nil
}

// promptForms asks for every field of f and returns the edited copy
func promptForms(p notify.Prompter, f form.Forms) (form.Forms, error) {
	var err error
	c := &f.Common

	if c.AimeEnable, err = p.Confirm("Enable card reader emulation?", c.AimeEnable); err != nil {
		return f, err
	}
	if c.AimePath, err = p.Input("Card file path", c.AimePath); err != nil {
		return f, err
	}

	presets := variant.Presets(f.Variant)
	options := make([]string, len(presets))
	for i, preset := range presets {
		options[i] = preset.Description
		if preset.Address != variant.CustomAddress {
			options[i] += " - " + preset.Address
		}
	}
	if c.ServerIndex, err = p.Select("Server", options, c.ServerIndex); err != nil {
		return f, err
	}
	if c.ServerIndex == variant.CustomIndex(f.Variant) {
		if c.CustomServer, err = p.Input("Custom server address", c.CustomServer); err != nil {
			return f, err
		}
	} else if help := variant.ServerHelp(f.Variant, presets[c.ServerIndex].Address); help != "" {
		log.InfoH2("%s", help)
	}

	if c.AimeDB, err = p.Input("AimeDB address (empty to omit)", c.AimeDB); err != nil {
		return f, err
	}
	if c.RouterDNS, err = p.Input("Router DNS", c.RouterDNS); err != nil {
		return f, err
	}
	if c.NetEnvEnable, err = p.Confirm("Enable netenv?", c.NetEnvEnable); err != nil {
		return f, err
	}
	if c.KeychipID, err = p.Input("Keychip ID", c.KeychipID); err != nil {
		return f, err
	}
	if c.Subnet, err = p.Input("Subnet", c.Subnet); err != nil {
		return f, err
	}

	if f.SDHD != nil {
		sdhd := *f.SDHD
		if err := promptSDHD(p, &sdhd); err != nil {
			return f, err
		}
		f.SDHD = &sdhd
	}
	if f.SDDT != nil {
		sddt := *f.SDDT
		if err := promptSDDT(p, &sddt); err != nil {
			return f, err
		}
		f.SDDT = &sddt
	}
	return f, nil
}

func promptSDHD(p notify.Prompter, s *form.SDHD) error {
	idx, err := p.Select("Controller", form.Controllers(), int(s.Controller))
	if err != nil {
		return err
	}
	s.Controller = form.Controller(idx)

	if s.IREnable, err = p.Confirm("Enable IR sensor?", s.IREnable); err != nil {
		return err
	}
	if s.SideRed, err = promptInt(p, "Side light red (0-255)", s.SideRed); err != nil {
		return err
	}
	if s.SideGreen, err = promptInt(p, "Side light green (0-255)", s.SideGreen); err != nil {
		return err
	}
	if s.SideBlue, err = promptInt(p, "Side light blue (0-255)", s.SideBlue); err != nil {
		return err
	}
	if s.SideRandom, err = p.Confirm("Random side light colour?", s.SideRandom); err != nil {
		return err
	}
	s.RealAime, err = p.Confirm("Use a real Aime reader?", s.RealAime)
	return err
}

func promptSDDT(p notify.Prompter, s *form.SDDT) error {
	var err error
	if s.LEDEnable, err = p.Confirm("Enable LED board emulation?", s.LEDEnable); err != nil {
		return err
	}

	def := 0
	if s.LEDSerial {
		def = 1
	}
	idx, err := p.Select("LED output", []string{"Named pipe", "Serial port"}, def)
	if err != nil {
		return err
	}
	s.LEDSerial = idx == 1
	if s.LEDSerial {
		if s.SerialPort, err = p.Input("Serial port", s.SerialPort); err != nil {
			return err
		}
		if s.SerialBaud, err = p.Input("Baud rate", s.SerialBaud); err != nil {
			return err
		}
	}

	if s.UnityEnable, err = p.Confirm("Enable Unity loader?", s.UnityEnable); err != nil {
		return err
	}
	s.TargetAssembly, err = p.Input("Target assembly (empty to omit)", s.TargetAssembly)
	return err
}

func promptInt(p notify.Prompter, message string, def int) (int, error) {
	answer, err := p.Input(message, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidValue, "%s: %q is not a number", message, answer)
	}
	return v, nil
}

// promptCard asks whether to change the card number and for the new value
func promptCard(p notify.Prompter, e *editor.Editor) (content string, edit bool, err error) {
	if edit, err = p.Confirm("Edit the card number?", false); err != nil || !edit {
		return "", false, err
	}

	current, _, err := e.LoadCard()
	if err != nil {
		return "", false, err
	}
	if content, err = p.Input("Card number", strings.TrimSpace(current)); err != nil {
		return "", false, err
	}
	return content, true, nil
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editVariant, "variant", "", "Game variant (SDEZ, SDHD, SDDT, SDGA)")
	_ = editCmd.RegisterFlagCompletionFunc("variant", validVariantNames)
}
