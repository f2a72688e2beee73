/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWire_RoundTrip(t *testing.T) {
	r := Template()
	assert.Equal(t, r, FromWire(ToWire(r)))
}

func TestWire_RoundTripWithBypass(t *testing.T) {
	r := Template()
	r.Bypass = &Bypass{Enabled: ToggleOn, Volume: 5, Temperature: 85}
	assert.Equal(t, r, FromWire(ToWire(r)))
}

func TestWire_VendorKeys(t *testing.T) {
	w := ToWire(Template())
	data, err := json.Marshal(w)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// The vendor dialect keys, not the model keys.
	for _, key := range []string{
		"theName", "grandWater", "grinderSize", "cupType",
		"adaptedModel", "isEnableBypassWater", "isSetGrinderSize",
		"theColor", "theSubsetId", "bypassTemp", "bypassVolume", "pourList",
	} {
		assert.Contains(t, raw, key)
	}
	assert.NotContains(t, raw, "name")
	assert.NotContains(t, raw, "totalWater")

	pours, ok := raw["pourList"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, pours)
	step, ok := pours[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, step, "isEnableVibrationBefore")
	assert.Contains(t, step, "isEnableVibrationAfter")
}

func TestWire_ToggleEncoding(t *testing.T) {
	r := Template()
	r.PourList[0].VibrationBefore = ToggleOn

	w := ToWire(r)
	// 1 means on in the vendor encoding, 2 means off.
	assert.Equal(t, 1, w.PourList[0].IsEnableVibrationBefore)
	assert.Equal(t, 2, w.PourList[0].IsEnableVibrationAfter)

	// No bypass record maps to toggle off, not zero.
	assert.Equal(t, 2, w.IsEnableBypassWater)
}

func TestWire_BypassOmittedWhenOff(t *testing.T) {
	w := ToWire(Template())
	assert.Nil(t, FromWire(w).Bypass)

	w.IsEnableBypassWater = 1
	w.BypassVolume = 5
	w.BypassTemp = 85
	got := FromWire(w)
	require.NotNil(t, got.Bypass)
	assert.Equal(t, ToggleOn, got.Bypass.Enabled)
	assert.Equal(t, 5.0, got.Bypass.Volume)
}

func TestWire_GrinderSizeFloat(t *testing.T) {
	// The vendor stores grinderSize as a float; decoding rounds back to
	// the model's integer dial setting.
	w := ToWire(Template())
	w.GrinderSize = 70.4
	assert.Equal(t, 70, FromWire(w).GrinderSize)
}

func TestWire_DecodeVendorPayload(t *testing.T) {
	// A payload shaped like the backend's recipeVo object.
	payload := `{
		"theName": "Kenya AA",
		"dose": 18,
		"grandWater": 280,
		"grinderSize": 65,
		"rpm": 100,
		"cupType": 2,
		"adaptedModel": 1,
		"isEnableBypassWater": 2,
		"isSetGrinderSize": 1,
		"theColor": "#AA5500",
		"theSubsetId": 0,
		"bypassTemp": 0,
		"bypassVolume": 0,
		"tableId": 12345,
		"shareRecipeLink": "https://share-h5.xbloom.com/?id=abc",
		"pourList": [
			{"theName": "Bloom", "volume": 40, "temperature": 92, "flowRate": 3,
			 "pattern": 1, "pausing": 25, "isEnableVibrationBefore": 2, "isEnableVibrationAfter": 2}
		]
	}`

	var w WireRecipe
	require.NoError(t, json.Unmarshal([]byte(payload), &w))

	r := FromWire(&w)
	assert.Equal(t, "Kenya AA", r.Name)
	assert.Equal(t, 280.0, r.TotalWater)
	assert.Equal(t, CupTypeOMNI, r.CupType)
	require.Len(t, r.PourList, 1)
	assert.Equal(t, "Bloom", r.PourList[0].Name)
	assert.NoError(t, Validate(r))
}
