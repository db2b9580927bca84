package qmf

import (
	"testing"

	"github.com/openaptx/goaptx/internal/tables"
)

func TestSignalConvolveZero(t *testing.T) {
	var s Signal
	coeffs := tables.QMFOuterCoeffs[0]
	if got := s.Convolve(&coeffs, 23); got != 0 {
		t.Errorf("Convolve on zeroed signal = %d, want 0", got)
	}
}

func TestTreeAnalysisSynthesisRoundTripSilence(t *testing.T) {
	var analysis, synthesis Analysis
	var samples [4]int32

	for i := 0; i < 200; i++ {
		sub := TreeAnalysis(&analysis, &tables.QMFOuterCoeffs, &tables.QMFInnerCoeffs, samples)
		out := TreeSynthesis(&synthesis, &tables.QMFOuterCoeffs, &tables.QMFInnerCoeffs, sub)
		for _, v := range out {
			if v != 0 {
				t.Fatalf("iteration %d: non-zero output %v from all-zero input", i, out)
			}
		}
	}
}
