/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package recipe

import "math"

// WireRecipe is the vendor backend's JSON dialect of a recipe. Its keys
// and integer encodings are fixed by the API; everything outside this
// file uses the Recipe model instead.
type WireRecipe struct {
	TheName             string         `json:"theName"`
	Dose                float64        `json:"dose"`
	GrandWater          float64        `json:"grandWater"`
	GrinderSize         float64        `json:"grinderSize"`
	RPM                 int            `json:"rpm"`
	CupType             int            `json:"cupType"`
	AdaptedModel        int            `json:"adaptedModel"`
	IsEnableBypassWater int            `json:"isEnableBypassWater"`
	IsSetGrinderSize    int            `json:"isSetGrinderSize"`
	TheColor            string         `json:"theColor"`
	TheSubsetID         int            `json:"theSubsetId"`
	BypassTemp          float64        `json:"bypassTemp"`
	BypassVolume        float64        `json:"bypassVolume"`
	PourList            []WirePourStep `json:"pourList"`

	// Populated only on responses from the backend.
	TableID         int64  `json:"tableId,omitempty"`
	ShareRecipeLink string `json:"shareRecipeLink,omitempty"`
}

// WirePourStep is the vendor JSON dialect of one pour stage.
type WirePourStep struct {
	TheName                 string  `json:"theName,omitempty"`
	Volume                  float64 `json:"volume"`
	Temperature             float64 `json:"temperature"`
	FlowRate                float64 `json:"flowRate"`
	Pattern                 int     `json:"pattern"`
	Pausing                 int     `json:"pausing"`
	IsEnableVibrationBefore int     `json:"isEnableVibrationBefore"`
	IsEnableVibrationAfter  int     `json:"isEnableVibrationAfter"`
}

// ToWire converts a recipe to the vendor JSON dialect. The toggle values
// pass through unchanged (same 1/2 encoding on both sides); only keys and
// the bypass record shape differ.
func ToWire(r *Recipe) *WireRecipe {
	w := &WireRecipe{
		TheName:             r.Name,
		Dose:                r.Dose,
		GrandWater:          r.TotalWater,
		GrinderSize:         float64(r.GrinderSize),
		RPM:                 r.RPM,
		CupType:             int(r.CupType),
		AdaptedModel:        int(r.AdaptedModel),
		IsEnableBypassWater: int(ToggleOff),
		IsSetGrinderSize:    int(ToggleOn),
		TheColor:            r.Color,
		PourList:            make([]WirePourStep, 0, len(r.PourList)),
	}

	if r.Bypass != nil {
		w.IsEnableBypassWater = int(r.Bypass.Enabled)
		w.BypassVolume = r.Bypass.Volume
		w.BypassTemp = r.Bypass.Temperature
	}

	for _, p := range r.PourList {
		w.PourList = append(w.PourList, WirePourStep{
			TheName:                 p.Name,
			Volume:                  p.Volume,
			Temperature:             p.Temperature,
			FlowRate:                p.FlowRate,
			Pattern:                 int(p.Pattern),
			Pausing:                 p.Pausing,
			IsEnableVibrationBefore: int(p.VibrationBefore),
			IsEnableVibrationAfter:  int(p.VibrationAfter),
		})
	}

	return w
}

// FromWire converts a vendor payload back to the recipe model. The
// bypass record is omitted when the toggle is off and both values are
// zero, which is the same shape ToWire produces for a nil bypass, so
// FromWire(ToWire(r)) == r for every validated recipe.
func FromWire(w *WireRecipe) *Recipe {
	r := &Recipe{
		Name:         w.TheName,
		Dose:         w.Dose,
		TotalWater:   w.GrandWater,
		GrinderSize:  int(math.Round(w.GrinderSize)),
		RPM:          w.RPM,
		CupType:      CupType(w.CupType),
		AdaptedModel: AdaptedModel(w.AdaptedModel),
		Color:        w.TheColor,
		PourList:     make([]PourStep, 0, len(w.PourList)),
	}

	if Toggle(w.IsEnableBypassWater) == ToggleOn || w.BypassVolume != 0 || w.BypassTemp != 0 {
		r.Bypass = &Bypass{
			Enabled:     Toggle(w.IsEnableBypassWater),
			Volume:      w.BypassVolume,
			Temperature: w.BypassTemp,
		}
	}

	for _, p := range w.PourList {
		r.PourList = append(r.PourList, PourStep{
			Name:            p.TheName,
			Volume:          p.Volume,
			Temperature:     p.Temperature,
			FlowRate:        p.FlowRate,
			Pattern:         PourPattern(p.Pattern),
			Pausing:         p.Pausing,
			VibrationBefore: Toggle(p.IsEnableVibrationBefore),
			VibrationAfter:  Toggle(p.IsEnableVibrationAfter),
		})
	}

	return r
}
