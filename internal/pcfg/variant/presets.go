package variant

// CustomAddress marks the last preset of every list. Its address is replaced
// by whatever the user typed.
const CustomAddress = "custom"

// ServerPreset is one selectable entry of the server dropdown
type ServerPreset struct {
	Address     string
	Description string
}

var (
	presetMuNET       = ServerPreset{"play.mumur.net", "MuNET (recommended)"}
	presetAquaDXChina = ServerPreset{"aquadx.init.ink", "AquaDX China relay"}
	presetAquaDX      = ServerPreset{"aquadx.hydev.org", "AquaDX main server"}
	presetRinNET      = ServerPreset{"aqua.naominet.live", "RinNET"}
	presetCustom      = ServerPreset{CustomAddress, "Custom server"}
)

var serverPresets = map[Variant][]ServerPreset{
	SDEZ: {presetMuNET, presetAquaDXChina, presetAquaDX, presetRinNET, presetCustom},
	SDHD: {presetMuNET, presetAquaDXChina, presetAquaDX, presetRinNET, presetCustom},
	SDDT: {{presetRinNET.Address, "RinNET (recommended)"}, presetCustom},
	SDGA: {presetMuNET, presetAquaDXChina, presetAquaDX, presetRinNET, presetCustom},
}

// Presets returns a copy of the server presets for v, ending with the custom
// sentinel. Unknown variants fall back to the SDEZ list.
func Presets(v Variant) []ServerPreset {
	list, ok := serverPresets[v]
	if !ok {
		list = serverPresets[SDEZ]
	}
	out := make([]ServerPreset, len(list))
	copy(out, list)
	return out
}

// CustomIndex returns the index of the custom sentinel for v
func CustomIndex(v Variant) int {
	return len(Presets(v)) - 1
}

// SelectPreset finds which dropdown entry represents current. An address not
// in the list selects the custom entry and is returned as the custom text.
// An empty address selects the first preset.
func SelectPreset(v Variant, current string) (index int, custom string) {
	presets := Presets(v)
	for i, p := range presets {
		if p.Address == current {
			return i, ""
		}
	}
	if current != "" {
		return len(presets) - 1, current
	}
	return 0, ""
}

// PresetAddress is the inverse of SelectPreset: the address to store for the
// selected entry. Out-of-range indexes behave like the first preset.
func PresetAddress(v Variant, index int, custom string) string {
	presets := Presets(v)
	if index == len(presets)-1 {
		return custom
	}
	if index < 0 || index >= len(presets) {
		index = 0
	}
	return presets[index].Address
}

// ServerHelp returns a short hint for the selected server address
func ServerHelp(v Variant, address string) string {
	switch address {
	case "aquadx.init.ink":
		return "Recommended: AquaDX China relay, best for users in mainland China"
	case "aquadx.hydev.org":
		return "Note: the AquaDX main server is hosted in Canada, latency may be high"
	case "play.mumur.net":
		return "Recommended: MuNET, the first choice for new users"
	case "aqua.naominet.live":
		if v == SDDT {
			return "Recommended: RinNET is the preferred server for SDDT"
		}
		return "RinNET server"
	default:
		return ""
	}
}
