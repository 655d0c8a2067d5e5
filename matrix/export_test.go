// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box): exposes the resolved Options and the unexported
// region validators to matrix_test without widening the public API.

// OptionsSnapshot is an exported copy of the effective Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// ValidateRegion_TestOnly forwards to validateRegion.
func ValidateRegion_TestOnly(r, c, r0, c0, rows, cols int) error {
	return validateRegion(r, c, r0, c0, rows, cols)
}

// ValidateTileExtent_TestOnly forwards to validateTileExtent.
func ValidateTileExtent_TestOnly(tile, rows, cols int) error {
	return validateTileExtent(tile, rows, cols)
}

// ValidatesNaNInf_TestOnly reports the numeric policy carried by m.
func ValidatesNaNInf_TestOnly(m *Dense) bool { return m.validateNaNInf }
