// Package recipe defines the brewing recipe model, its field domains, and
// the validator that keeps malformed configurations off the network.
//
// # Model
//
// A Recipe is the top-level entity a user authors and uploads: dose,
// total water, grinder settings, cup type, a color, an ordered pour
// schedule, and an optional bypass-water record. The pour list order is
// semantically meaningful (it is the brew's pour schedule).
//
// The vendor API encodes booleans as a two-value integer toggle (1=on,
// 2=off — inverted from the usual convention). The model keeps that
// encoding as an explicit Toggle type instead of native bools so the
// inversion can never be applied twice; conversion to bool happens only
// where a human-readable rendering is needed.
//
// # Validation
//
// Validate is a pure function: it checks required fields, numeric
// domains, enum membership, pour step domains, and bypass completeness in
// a fixed order and reports the first violation found. A recipe whose
// adapted model is not Original gets a distinct SILENTLY_HIDDEN error:
// the backend accepts such payloads but the vendor app never displays
// them, which is exactly the footgun the validator exists to prevent.
//
// # Wire format
//
// The vendor backend speaks a differently-keyed JSON dialect (theName,
// grandWater, isEnableVibrationBefore, ...). ToWire and FromWire are the
// only re-keying boundary; they round-trip exactly.
package recipe
