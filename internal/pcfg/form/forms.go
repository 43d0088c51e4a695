package form

import (
	"fmt"
	"strconv"

	"github.com/performai/pcfg/internal/pcfg/ini"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

// Forms is the complete editable state for one variant. SDHD and SDDT are nil
// unless the variant uses them.
type Forms struct {
	Variant variant.Variant
	Common  Common
	SDHD    *SDHD
	SDDT    *SDDT
}

// Field is a labelled value for display
type Field struct {
	Tab   string
	Label string
	Value string
}

// Load reads every form that applies to v
func Load(doc *ini.Document, v variant.Variant) Forms {
	f := Forms{Variant: v, Common: LoadCommon(doc, v)}
	switch v {
	case variant.SDHD:
		s := LoadSDHD(doc)
		f.SDHD = &s
	case variant.SDDT:
		s := LoadSDDT(doc)
		f.SDDT = &s
	}
	return f
}

// Validate checks every present form
func (f Forms) Validate() error {
	if err := f.Common.Validate(f.Variant); err != nil {
		return err
	}
	if f.SDHD != nil {
		if err := f.SDHD.Validate(); err != nil {
			return err
		}
	}
	if f.SDDT != nil {
		if err := f.SDDT.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply validates the forms and writes them into doc. doc is left untouched
// when validation fails.
func (f Forms) Apply(doc *ini.Document) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := f.Common.Apply(doc, f.Variant); err != nil {
		return err
	}
	switch {
	case f.Variant == variant.SDHD && f.SDHD != nil:
		return f.SDHD.Apply(doc)
	case f.Variant == variant.SDDT && f.SDDT != nil:
		return f.SDDT.Apply(doc)
	}
	return nil
}

// Fields flattens the forms for display
func (f Forms) Fields() []Field {
	c := f.Common
	server := c.Server(f.Variant)
	if presets := variant.Presets(f.Variant); c.ServerIndex >= 0 && c.ServerIndex < len(presets) {
		server = fmt.Sprintf("%s (%s)", server, presets[c.ServerIndex].Description)
	}
	fields := []Field{
		{"aime", "Card reader enabled", yesNo(c.AimeEnable)},
		{"aime", "Card file", c.AimePath},
		{"network", "Server", server},
		{"network", "AimeDB", c.AimeDB},
		{"network", "Router DNS", c.RouterDNS},
		{"network", "Netenv enabled", yesNo(c.NetEnvEnable)},
		{"keychip", "Keychip ID", c.KeychipID},
		{"keychip", "Game ID", string(f.Variant)},
		{"keychip", "Subnet", c.Subnet},
	}

	if s := f.SDHD; s != nil {
		fields = append(fields,
			Field{"SDHD", "Controller", s.Controller.Name()},
			Field{"SDHD", "IR sensor enabled", yesNo(s.IREnable)},
			Field{"SDHD", "Side light RGB", fmt.Sprintf("%d,%d,%d", s.SideRed, s.SideGreen, s.SideBlue)},
			Field{"SDHD", "Random side light", yesNo(s.SideRandom)},
			Field{"SDHD", "Real Aime reader", yesNo(s.RealAime)},
		)
	}

	if s := f.SDDT; s != nil {
		output := "pipe"
		if s.LEDSerial {
			output = "serial " + s.SerialPort + " @ " + s.SerialBaud
		}
		fields = append(fields,
			Field{"SDDT", "LED board enabled", yesNo(s.LEDEnable)},
			Field{"SDDT", "LED output", output},
			Field{"SDDT", "Unity enabled", yesNo(s.UnityEnable)},
			Field{"SDDT", "Target assembly", s.TargetAssembly},
		)
	}

	return fields
}

func yesNo(b bool) string {
	return strconv.FormatBool(b)
}
