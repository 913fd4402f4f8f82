package app

import (
	"fmt"
	"math"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

// WinEpsilon is the noise threshold in seconds: AI-Priority only counts
// as faster when it saves strictly more than this.
const WinEpsilon = 0.0001

// ComparisonResult holds the elapsed seconds of both scheduling runs.
type ComparisonResult struct {
	FIFO float64
	AI   float64
}

// Saved is FIFO minus AI. Negative when AI-Priority was slower.
func (r ComparisonResult) Saved() float64 {
	return r.FIFO - r.AI
}

// Percent is the share of the FIFO time saved, or 0 when FIFO is 0.
func (r ComparisonResult) Percent() float64 {
	if r.FIFO > 0 {
		return r.Saved() / r.FIFO * 100
	}
	return 0
}

// Faster reports whether AI-Priority won by more than WinEpsilon.
func (r ComparisonResult) Faster() bool {
	return r.Saved() > WinEpsilon
}

// Verdict is the transcript line describing the outcome.
func (r ComparisonResult) Verdict() string {
	if r.Faster() {
		return fmt.Sprintf("AI-Priority was %.4fs faster (%s time saved)", r.Saved(), util.FmtPercent(r.Percent()))
	}
	return fmt.Sprintf("AI-Priority was %.4fs slower", math.Abs(r.Saved()))
}
