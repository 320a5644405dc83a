// Package tinykit is a collection of small, allocation-free value types for
// embedded and resource-constrained Go programs.
//
// # Overview
//
// The components are independent of each other and can be used alone:
//
//   - set: a fixed-range, bit-indexed set of integer-like values.
//   - ring: a fixed-capacity circular FIFO buffer.
//   - color: RGB, HSV and Kelvin color temperature with lossy conversions.
//   - colorterm: adapters from color.RGB to tcell and lipgloss colors.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/tinykit/color"
//		"github.com/gogpu/tinykit/ring"
//	)
//
//	var q ring.Buffer[color.RGB, [16]color.RGB]
//	_ = q.Push(color.Daylight.RGB())
//	_ = q.Push(color.NewHSV(210, 50, 80).RGB())
//
// # Allocation and concurrency
//
// No operation allocates; storage lives inside each value and copies are
// independent. None of the types are safe for concurrent use; callers
// serialize access themselves.
//
// # Logging
//
// tinykit is silent by default. SetLogger enables debug diagnostics such
// as ignored out-of-domain set values and overwritten ring elements.
package tinykit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
