// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box): exposes unexported helpers to matrix_test only.
// Lives in a _test.go file, so none of it reaches production builds.

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as the package does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

var (
	ExportedNotValue       = notValue
	ExportedCheckedSpan    = checkedSpan
	ExportedCheckedOffsets = checkedOffsets
)
