package app

import (
	"math"
	"testing"
)

func TestComparisonResult(t *testing.T) {
	tests := []struct {
		name        string
		fifo, ai    float64
		wantSaved   float64
		wantPercent float64
		wantFaster  bool
		wantVerdict string
	}{
		{"ai wins", 2.0, 1.5, 0.5, 25.0, true, "AI-Priority was 0.5000s faster (25.00% time saved)"},
		{"both zero", 0, 0, 0, 0, false, "AI-Priority was 0.0000s slower"},
		{"ai loses", 1.0, 1.25, -0.25, -25.0, false, "AI-Priority was 0.2500s slower"},
		{"within epsilon", 1.0, 0.99996, 0.00004, 0.004, false, "AI-Priority was 0.0000s slower"},
		{"fifo zero", 0, 0.5, -0.5, 0, false, "AI-Priority was 0.5000s slower"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComparisonResult{FIFO: tt.fifo, AI: tt.ai}
			if got := r.Saved(); math.Abs(got-tt.wantSaved) > 1e-9 {
				t.Errorf("Saved() = %v; want %v", got, tt.wantSaved)
			}
			if got := r.Percent(); math.Abs(got-tt.wantPercent) > 1e-6 {
				t.Errorf("Percent() = %v; want %v", got, tt.wantPercent)
			}
			if got := r.Faster(); got != tt.wantFaster {
				t.Errorf("Faster() = %v; want %v", got, tt.wantFaster)
			}
			if got := r.Verdict(); got != tt.wantVerdict {
				t.Errorf("Verdict() = %q; want %q", got, tt.wantVerdict)
			}
		})
	}
}

func TestWinEpsilon(t *testing.T) {
	if WinEpsilon != 0.0001 {
		t.Errorf("WinEpsilon = %v; want 0.0001", WinEpsilon)
	}
	r := ComparisonResult{FIFO: 1, AI: 1 - 2*WinEpsilon}
	if !r.Faster() {
		t.Error("a saving of twice the epsilon should count as faster")
	}
}
