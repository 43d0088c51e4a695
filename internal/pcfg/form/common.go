// Package form holds the typed settings behind each editor tab. Every form
// loads itself from a document with the defaults the game expects and applies
// itself back by replacing the sections it owns.
package form

import (
	"strings"

	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/ini"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

// Defaults used when a key is missing from the document
const (
	DefaultAimePath  = `DEVICE\aime.txt`
	DefaultRouterDNS = "223.5.5.5"
	DefaultSubnet    = "192.168.1.0"
)

// Common covers the settings shared by all variants: card reader, network
// and keychip.
type Common struct {
	AimeEnable bool
	AimePath   string

	// ServerIndex selects an entry of variant.Presets; the last entry means
	// CustomServer is used instead.
	ServerIndex  int
	CustomServer string
	AimeDB       string
	RouterDNS    string
	NetEnvEnable bool

	KeychipID string
	Subnet    string
}

// LoadCommon reads the shared settings from doc
func LoadCommon(doc *ini.Document, v variant.Variant) Common {
	idx, custom := variant.SelectPreset(v, doc.GetString("dns", "default", ""))
	return Common{
		AimeEnable:   doc.GetBool("aime", "enable", true),
		AimePath:     doc.GetString("aime", "aimePath", DefaultAimePath),
		ServerIndex:  idx,
		CustomServer: custom,
		AimeDB:       doc.GetString("dns", "aimeDB", ""),
		RouterDNS:    doc.GetString("dns", "router", DefaultRouterDNS),
		NetEnvEnable: doc.GetBool("netenv", "enable", true),
		KeychipID:    doc.GetString("keychip", "id", ""),
		Subnet:       doc.GetString("keychip", "subnet", DefaultSubnet),
	}
}

// Server returns the dns.default address the form represents
func (c Common) Server(v variant.Variant) string {
	return variant.PresetAddress(v, c.ServerIndex, c.CustomServer)
}

// Validate checks values that would produce a broken config
func (c Common) Validate(v variant.Variant) error {
	if c.ServerIndex < 0 || c.ServerIndex >= len(variant.Presets(v)) {
		return errors.Wrapf(errors.ErrInvalidValue, "server index %d out of range", c.ServerIndex)
	}
	if c.ServerIndex == variant.CustomIndex(v) && strings.TrimSpace(c.CustomServer) == "" {
		return errors.Wrap(errors.ErrInvalidValue, "custom server address is empty")
	}
	return nil
}

// Apply replaces the aime, dns, netenv and keychip sections
func (c Common) Apply(doc *ini.Document, v variant.Variant) error {
	dns := []ini.Entry{{Key: "default", Value: c.Server(v)}}
	if strings.TrimSpace(c.AimeDB) != "" {
		dns = append(dns, ini.Entry{Key: "aimeDB", Value: c.AimeDB})
	}
	if strings.TrimSpace(c.RouterDNS) != "" {
		dns = append(dns, ini.Entry{Key: "router", Value: c.RouterDNS})
	}

	sections := []struct {
		name    string
		entries []ini.Entry
	}{
		{"aime", []ini.Entry{
			{Key: "enable", Value: flag(c.AimeEnable)},
			{Key: "aimePath", Value: c.AimePath},
		}},
		{"dns", dns},
		{"netenv", []ini.Entry{{Key: "enable", Value: flag(c.NetEnvEnable)}}},
		{"keychip", []ini.Entry{
			{Key: "id", Value: c.KeychipID},
			{Key: "gameid", Value: string(v)},
			{Key: "subnet", Value: c.Subnet},
		}},
	}

	for _, s := range sections {
		if err := doc.SetSection(s.name, s.entries); err != nil {
			return err
		}
	}
	return nil
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
