/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package recipe

import (
	"fmt"
	"regexp"

	"github.com/mchmarny/bloomctl/pkg/errors"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks a recipe against the documented field domains and
// cross-field invariants. It is a pure function of its input: no side
// effects, no mutation.
//
// Checks run in a fixed priority order and stop at the first violation;
// re-running after a fix surfaces the next one. The returned error is a
// *errors.StructuredError naming the offending field in its context.
//
// A structurally valid recipe whose AdaptedModel is not Original returns
// an error with code SILENTLY_HIDDEN rather than INVALID_RECIPE: the
// backend accepts the payload but the vendor app never displays it.
func Validate(r *Recipe) error {
	if r == nil {
		return invalid("recipe", "recipe is nil", nil)
	}

	// Required top-level fields.
	if r.Name == "" {
		return invalid("name", "name is required", r.Name)
	}

	// Numeric and enum domains.
	if r.Dose <= 0 {
		return invalid("dose", "dose must be a positive number of grams", r.Dose)
	}
	if r.TotalWater <= 0 {
		return invalid("totalWater", "totalWater must be a positive number of milliliters", r.TotalWater)
	}
	if r.GrinderSize < GrinderSizeMin || r.GrinderSize > GrinderSizeMax {
		return invalid("grinderSize",
			fmt.Sprintf("grinderSize must be between %d and %d", GrinderSizeMin, GrinderSizeMax),
			r.GrinderSize)
	}
	if r.RPM < 0 {
		return invalid("rpm", "rpm must not be negative", r.RPM)
	}
	if !r.CupType.IsValid() {
		return invalid("cupType",
			fmt.Sprintf("cupType must be one of: %s", SupportedCupTypes()),
			int(r.CupType))
	}
	if !r.AdaptedModel.IsValid() {
		return invalid("adaptedModel", "adaptedModel must be 1 (Original) or 2 (Studio)", int(r.AdaptedModel))
	}
	if !hexColorRe.MatchString(r.Color) {
		return invalid("color", "color must be a hex color like #C9D5B8", r.Color)
	}

	// The backend accepts any adaptedModel but only displays Original.
	if r.AdaptedModel != AdaptedModelOriginal {
		return errors.NewWithContext(errors.ErrCodeSilentlyHidden,
			"adaptedModel is not Original: the backend will accept this recipe but the app will never display it",
			map[string]any{
				"field": "adaptedModel",
				"value": r.AdaptedModel.String(),
			})
	}

	// Pour schedule.
	if len(r.PourList) == 0 {
		return invalid("pourList", "pourList must contain at least one pour step", nil)
	}
	for i, p := range r.PourList {
		if err := validatePourStep(i, &p); err != nil {
			return err
		}
	}

	// Bypass completeness: volume and temperature travel together.
	if r.Bypass != nil {
		if err := validateBypass(r.Bypass); err != nil {
			return err
		}
	}

	return nil
}

// Validate is method sugar over the package-level Validate.
func (r *Recipe) Validate() error {
	return Validate(r)
}

func validatePourStep(i int, p *PourStep) error {
	field := func(name string) string {
		return fmt.Sprintf("pourList[%d].%s", i, name)
	}

	if p.Volume <= 0 {
		return invalid(field("volume"), "pour volume must be a positive number of milliliters", p.Volume)
	}
	if p.Temperature < TemperatureMin || p.Temperature > TemperatureMax {
		return invalid(field("temperature"),
			fmt.Sprintf("pour temperature must be between %.0f and %.0f °C", TemperatureMin, TemperatureMax),
			p.Temperature)
	}
	if p.FlowRate <= 0 {
		return invalid(field("flowRate"), "flowRate must be a positive number of ml/s", p.FlowRate)
	}
	if !p.Pattern.IsValid() {
		return invalid(field("pattern"),
			fmt.Sprintf("pattern must be one of: %s", SupportedPourPatterns()),
			int(p.Pattern))
	}
	if p.Pausing < 0 {
		return invalid(field("pausing"), "pausing must not be negative", p.Pausing)
	}
	if !p.VibrationBefore.IsValid() {
		return invalid(field("vibrationBefore"), "vibrationBefore must be 1 (on) or 2 (off)", int(p.VibrationBefore))
	}
	if !p.VibrationAfter.IsValid() {
		return invalid(field("vibrationAfter"), "vibrationAfter must be 1 (on) or 2 (off)", int(p.VibrationAfter))
	}
	return nil
}

func validateBypass(b *Bypass) error {
	if !b.Enabled.IsValid() {
		return invalid("bypass.enabled", "bypass.enabled must be 1 (on) or 2 (off)", int(b.Enabled))
	}
	// Partial bypass config is invalid: both values or neither.
	if (b.Volume != 0) != (b.Temperature != 0) {
		return invalid("bypass", "bypass volume and temperature must be supplied together", nil)
	}
	if b.Volume < 0 {
		return invalid("bypass.volume", "bypass volume must be a positive number of milliliters", b.Volume)
	}
	if b.Enabled == ToggleOn && b.Volume == 0 {
		return invalid("bypass.volume", "bypass is enabled but volume is not set", b.Volume)
	}
	if b.Temperature < TemperatureMin || b.Temperature > TemperatureMax {
		return invalid("bypass.temperature",
			fmt.Sprintf("bypass temperature must be between %.0f and %.0f °C", TemperatureMin, TemperatureMax),
			b.Temperature)
	}
	return nil
}

func invalid(field, msg string, value any) error {
	return errors.NewWithContext(errors.ErrCodeInvalidRecipe, msg, map[string]any{
		"field": field,
		"value": value,
	})
}
