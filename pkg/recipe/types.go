/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package recipe

import "strings"

// Field domain bounds documented by the vendor.
const (
	// GrinderSizeMin and GrinderSizeMax bound the grinder coarseness dial.
	GrinderSizeMin = 1
	GrinderSizeMax = 150

	// TemperatureMin and TemperatureMax bound pour and bypass water
	// temperature in °C. The machine boiler cannot exceed boiling at
	// atmospheric pressure, so anything outside this range is a config
	// error, not a preference.
	TemperatureMin = 0.0
	TemperatureMax = 100.0
)

// Toggle is the vendor's integer-encoded boolean: 1=on, 2=off.
// The encoding inverts the usual boolean convention, so it is kept as an
// explicit two-value enum end to end instead of a native bool.
type Toggle int

const (
	// ToggleOn is the vendor encoding for enabled.
	ToggleOn Toggle = 1
	// ToggleOff is the vendor encoding for disabled.
	ToggleOff Toggle = 2
)

// IsValid reports whether the toggle holds one of the two legal values.
func (t Toggle) IsValid() bool {
	return t == ToggleOn || t == ToggleOff
}

// Bool converts the vendor encoding to a native bool for display.
func (t Toggle) Bool() bool {
	return t == ToggleOn
}

// ToggleFromBool converts a native bool to the vendor encoding.
func ToggleFromBool(b bool) Toggle {
	if b {
		return ToggleOn
	}
	return ToggleOff
}

func (t Toggle) String() string {
	switch t {
	case ToggleOn:
		return "on"
	case ToggleOff:
		return "off"
	default:
		return "unknown"
	}
}

// CupType represents the brew target the machine is configured for.
type CupType int

// CupType constants per the vendor encoding.
const (
	CupTypeXPOD  CupType = 1
	CupTypeOMNI  CupType = 2
	CupTypeOther CupType = 3
	CupTypeTea   CupType = 4
)

// IsValid reports whether the cup type is within the legal integer set.
func (c CupType) IsValid() bool {
	return c >= CupTypeXPOD && c <= CupTypeTea
}

func (c CupType) String() string {
	switch c {
	case CupTypeXPOD:
		return "XPOD"
	case CupTypeOMNI:
		return "OMNI"
	case CupTypeOther:
		return "OTHER"
	case CupTypeTea:
		return "TEA"
	default:
		return "unknown"
	}
}

// SupportedCupTypes returns the legal cup type names.
func SupportedCupTypes() string {
	return strings.Join([]string{
		CupTypeXPOD.String(),
		CupTypeOMNI.String(),
		CupTypeOther.String(),
		CupTypeTea.String(),
	}, ", ")
}

// AdaptedModel identifies which machine generation a recipe targets.
type AdaptedModel int

// AdaptedModel constants per the vendor encoding.
const (
	AdaptedModelOriginal AdaptedModel = 1
	AdaptedModelStudio   AdaptedModel = 2
)

// IsValid reports whether the adapted model is within the legal integer set.
func (m AdaptedModel) IsValid() bool {
	return m == AdaptedModelOriginal || m == AdaptedModelStudio
}

func (m AdaptedModel) String() string {
	switch m {
	case AdaptedModelOriginal:
		return "Original"
	case AdaptedModelStudio:
		return "Studio"
	default:
		return "unknown"
	}
}

// PourPattern is the spray pattern for one pour stage.
type PourPattern int

// PourPattern constants per the vendor encoding.
const (
	PourPatternCenter   PourPattern = 1
	PourPatternCircular PourPattern = 2
	PourPatternSpiral   PourPattern = 3
)

// IsValid reports whether the pattern is within the legal integer set.
func (p PourPattern) IsValid() bool {
	return p >= PourPatternCenter && p <= PourPatternSpiral
}

func (p PourPattern) String() string {
	switch p {
	case PourPatternCenter:
		return "Center"
	case PourPatternCircular:
		return "Circular"
	case PourPatternSpiral:
		return "Spiral"
	default:
		return "unknown"
	}
}

// SupportedPourPatterns returns the legal pour pattern names.
func SupportedPourPatterns() string {
	return strings.Join([]string{
		PourPatternCenter.String(),
		PourPatternCircular.String(),
		PourPatternSpiral.String(),
	}, ", ")
}

// Recipe is the top-level entity a user authors and uploads. Once
// validated it is treated as immutable; the backend is the system of
// record after upload.
type Recipe struct {
	// Name is the recipe display name.
	Name string `json:"name" yaml:"name"`

	// Dose is grams of ground coffee.
	Dose float64 `json:"dose" yaml:"dose"`

	// TotalWater is total brew water in milliliters.
	TotalWater float64 `json:"totalWater" yaml:"totalWater"`

	// GrinderSize is the grinder coarseness setting, 1-150.
	GrinderSize int `json:"grinderSize" yaml:"grinderSize"`

	// RPM is the grinder motor speed.
	RPM int `json:"rpm" yaml:"rpm"`

	// CupType is the brew target.
	CupType CupType `json:"cupType" yaml:"cupType"`

	// AdaptedModel is the machine generation. Must be
	// AdaptedModelOriginal: the backend silently hides recipes created
	// with any other value.
	AdaptedModel AdaptedModel `json:"adaptedModel" yaml:"adaptedModel"`

	// Color is the hex accent color shown in the vendor app.
	Color string `json:"color" yaml:"color"`

	// PourList is the ordered pour schedule.
	PourList []PourStep `json:"pourList" yaml:"pourList"`

	// Bypass is the optional bypass-water record. Nil when bypass water
	// is not used.
	Bypass *Bypass `json:"bypass,omitempty" yaml:"bypass,omitempty"`
}

// PourStep is one stage of the pour schedule.
type PourStep struct {
	// Name is an optional stage label (e.g. "Bloom").
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Volume is the stage pour volume in milliliters.
	Volume float64 `json:"volume" yaml:"volume"`

	// Temperature is the water temperature in °C.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// FlowRate is the pour rate in ml/s.
	FlowRate float64 `json:"flowRate" yaml:"flowRate"`

	// Pattern is the spray pattern.
	Pattern PourPattern `json:"pattern" yaml:"pattern"`

	// Pausing is the pause after the stage in seconds.
	Pausing int `json:"pausing" yaml:"pausing"`

	// VibrationBefore shakes the bed before the pour.
	VibrationBefore Toggle `json:"vibrationBefore" yaml:"vibrationBefore"`

	// VibrationAfter shakes the bed after the pour.
	VibrationAfter Toggle `json:"vibrationAfter" yaml:"vibrationAfter"`
}

// Bypass is the optional bypass-water record: water added to the cup
// without passing through the coffee bed.
type Bypass struct {
	// Enabled is the vendor toggle for bypass water.
	Enabled Toggle `json:"enabled" yaml:"enabled"`

	// Volume is bypass water in milliliters.
	Volume float64 `json:"volume" yaml:"volume"`

	// Temperature is bypass water temperature in °C.
	Temperature float64 `json:"temperature" yaml:"temperature"`
}
