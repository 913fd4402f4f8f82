package util

import (
	"fmt"
	"math"
)

var byteUnits = [...]string{"KB", "MB", "GB", "TB"}

// FmtBytes converts a byte count to a human-readable string.
// Values below 1 KiB are printed as whole bytes ("512 B"); larger values use
// one decimal and binary multiples ("1.0 KB", "1.5 MB", "1.0 GB").
func FmtBytes(n int64) string {
	if n < KiB {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n) / KiB
	unit := 0
	// Compare the rounded value so 1048575 prints as "1.0 MB", not "1024.0 KB".
	for math.Round(v*10)/10 >= KiB && unit < len(byteUnits)-1 {
		v /= KiB
		unit++
	}
	return fmt.Sprintf("%.1f %s", v, byteUnits[unit])
}

// FmtSeconds formats an elapsed time the way the server reports it (4 decimals).
func FmtSeconds(s float64) string {
	return fmt.Sprintf("%.4fs", s)
}

// FmtPercent formats a percentage with two decimals.
func FmtPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = 0
	}
	return fmt.Sprintf("%.2f%%", p)
}
