// Package util provides common utilities and constants for the dashboard.
//
// This package contains:
//   - Size constants (KiB, MiB, GiB, TiB) for byte calculations
//   - Colour constants for the status line
//   - Human-readable formatting for byte counts and elapsed seconds
//   - Password generation and strength scoring
//   - Pooled copy buffers for streaming uploads
//
// All utilities are stateless and safe for concurrent use.
package util

import "image/color"

// Size constants for byte calculations
const (
	KiB = 1 << 10 // 1024
	MiB = 1 << 20 // 1,048,576
	GiB = 1 << 30 // 1,073,741,824
	TiB = 1 << 40 // 1,099,511,627,776
)

// Colour constants for the status line
var (
	WHITE       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	RED         = color.RGBA{0xe0, 0x40, 0x40, 0xff}
	GREEN       = color.RGBA{0x4c, 0xc8, 0x4b, 0xff}
	YELLOW      = color.RGBA{0xcc, 0x70, 0x00, 0xff} // Dark amber for better readability
	TRANSPARENT = color.RGBA{0x00, 0x00, 0x00, 0x00}
)
