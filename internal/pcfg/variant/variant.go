// Package variant classifies a config document into one of the supported
// cabinet products and carries the per-product server presets.
package variant

import (
	"strings"

	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/ini"
)

// Variant identifies a cabinet product
type Variant string

const (
	SDEZ Variant = "SDEZ"
	SDHD Variant = "SDHD"
	SDDT Variant = "SDDT"
	SDGA Variant = "SDGA"
)

// All returns every supported variant in presentation order
func All() []Variant {
	return []Variant{SDEZ, SDHD, SDDT, SDGA}
}

// Names returns the variant identifiers as strings
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = string(v)
	}
	return out
}

// Parse converts a case-insensitive identifier into a Variant
func Parse(s string) (Variant, error) {
	upper := Variant(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range All() {
		if v == upper {
			return v, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownVariant, "%q", s)
}

func (v Variant) String() string {
	return string(v)
}

// Detect infers the variant from which sections and keys are present.
// The rules are checked in a fixed order and the first match wins.
func Detect(doc *ini.Document) Variant {
	switch {
	case doc.Has("led15093") || doc.Has("unity"):
		return SDDT
	case doc.Has("slider") || doc.HasKey("zhousensor", "side_red"):
		return SDHD
	case doc.GetString("keychip", "gameid", "") == string(SDGA):
		return SDGA
	default:
		return SDEZ
	}
}
