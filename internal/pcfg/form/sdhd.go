package form

import (
	"strconv"
	"strings"

	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/ini"
)

// Controller is the chuniio backend DLL
type Controller int

const (
	ControllerDefault Controller = iota
	ControllerYubiDeck
	ControllerTasoller
	ControllerBrokenithm
)

var controllerDLLs = []string{"chuniio.dll", "yubideck.dll", "tasoller.dll", "brokenithm.dll"}

// Controllers lists the selectable controller names in index order
func Controllers() []string {
	return []string{"Default (chuniio)", "YubiDeck", "Tasoller", "Brokenithm"}
}

// DLL returns the chuniio.path value for the controller
func (c Controller) DLL() string {
	if c < 0 || int(c) >= len(controllerDLLs) {
		return controllerDLLs[0]
	}
	return controllerDLLs[c]
}

// Name returns the display name of the controller
func (c Controller) Name() string {
	names := Controllers()
	if c < 0 || int(c) >= len(names) {
		return names[0]
	}
	return names[c]
}

func controllerFromPath(path string) Controller {
	p := strings.ToLower(path)
	switch {
	case strings.Contains(p, "yubideck"):
		return ControllerYubiDeck
	case strings.Contains(p, "tasoller"):
		return ControllerTasoller
	case strings.Contains(p, "brokenithm"):
		return ControllerBrokenithm
	default:
		return ControllerDefault
	}
}

// SDHD holds the controller, IR and YubiDeck side-light settings
type SDHD struct {
	Controller Controller
	IREnable   bool

	SideRed    int
	SideGreen  int
	SideBlue   int
	SideRandom bool
	RealAime   bool
}

// LoadSDHD reads the SDHD settings from doc
func LoadSDHD(doc *ini.Document) SDHD {
	return SDHD{
		Controller: controllerFromPath(doc.GetString("chuniio", "path", "")),
		IREnable:   doc.GetBool("ir", "enable", false),
		SideRed:    doc.GetInt("zhousensor", "side_red", 0),
		SideGreen:  doc.GetInt("zhousensor", "side_green", 255),
		SideBlue:   doc.GetInt("zhousensor", "side_blue", 0),
		SideRandom: doc.GetBool("zhousensor", "side_random", false),
		RealAime:   doc.GetBool("zhousensor", "real_aime", true),
	}
}

// Validate checks the colour channels
func (s SDHD) Validate() error {
	channels := []struct {
		name  string
		value int
	}{
		{"side_red", s.SideRed},
		{"side_green", s.SideGreen},
		{"side_blue", s.SideBlue},
	}
	for _, c := range channels {
		if c.value < 0 || c.value > 255 {
			return errors.Wrapf(errors.ErrInvalidValue, "%s must be between 0 and 255, got %d", c.name, c.value)
		}
	}
	return nil
}

// Apply replaces chuniio and zhousensor. The ir section is only written when
// enabled, or switched off if it already exists.
func (s SDHD) Apply(doc *ini.Document) error {
	if err := doc.SetSection("chuniio", []ini.Entry{{Key: "path", Value: s.Controller.DLL()}}); err != nil {
		return err
	}

	if s.IREnable || doc.Has("ir") {
		if err := doc.SetSection("ir", []ini.Entry{{Key: "enable", Value: flag(s.IREnable)}}); err != nil {
			return err
		}
	}

	return doc.SetSection("zhousensor", []ini.Entry{
		{Key: "side_red", Value: strconv.Itoa(s.SideRed)},
		{Key: "side_green", Value: strconv.Itoa(s.SideGreen)},
		{Key: "side_blue", Value: strconv.Itoa(s.SideBlue)},
		{Key: "side_random", Value: flag(s.SideRandom)},
		{Key: "real_aime", Value: flag(s.RealAime)},
	})
}
