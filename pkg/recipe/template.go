/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package recipe

// Template returns a fully populated example recipe intended to seed a
// user-editable configuration: every field carries a reasonable default
// and the result always passes Validate. It performs no validation
// itself and each call returns a fresh value.
//
// The defaults mirror a plain two-stage pour-over: a 50 ml bloom with a
// 30 second rest, then a 175 ml main pour.
func Template() *Recipe {
	return &Recipe{
		Name:         "My Recipe",
		Dose:         15.0,
		TotalWater:   225.0,
		GrinderSize:  70,
		RPM:          120,
		CupType:      CupTypeXPOD,
		AdaptedModel: AdaptedModelOriginal,
		Color:        "#C9D5B8",
		PourList: []PourStep{
			{
				Name:            "Bloom",
				Volume:          50.0,
				Temperature:     93.0,
				FlowRate:        3.0,
				Pattern:         PourPatternCenter,
				Pausing:         30,
				VibrationBefore: ToggleOff,
				VibrationAfter:  ToggleOff,
			},
			{
				Name:            "Main Pour",
				Volume:          175.0,
				Temperature:     93.0,
				FlowRate:        3.5,
				Pattern:         PourPatternCircular,
				Pausing:         0,
				VibrationBefore: ToggleOff,
				VibrationAfter:  ToggleOff,
			},
		},
	}
}
