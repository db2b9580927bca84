package qmf

import "github.com/openaptx/goaptx/internal/fixed"

// Analysis holds the filter history for one channel's QMF tree: one pair
// of outer-stage signals shared across both analysis passes, and two
// pairs of inner-stage signals, one per outer output.
type Analysis struct {
	OuterFilterSignal [2]Signal
	InnerFilterSignal [2][2]Signal
}

// polyphaseAnalysis implements a half-band QMF analysis filter: pushes
// the two new samples into signal history, convolves, and sum/difference
// combines the two filter outputs into low/high subband outputs.
func polyphaseAnalysis(signal *[2]Signal, coeffs *[2][16]int32, shift uint, samples [2]int32) (low, high int32) {
	var subbands [2]int32
	for i := 0; i < 2; i++ {
		signal[i].Push(samples[2-1-i])
		subbands[i] = signal[i].Convolve(&coeffs[i], shift)
	}
	low = fixed.ClipIntP2(subbands[0]+subbands[1], 23)
	high = fixed.ClipIntP2(subbands[0]-subbands[1], 23)
	return
}

// polyphaseSynthesis implements a half-band QMF synthesis filter: the
// inverse of polyphaseAnalysis, rejoining low/high subbands into two
// full-rate samples.
func polyphaseSynthesis(signal *[2]Signal, coeffs *[2][16]int32, shift uint, low, high int32) (samples [2]int32) {
	var subbands [2]int32
	subbands[0] = low + high
	subbands[1] = low - high

	for i := 0; i < 2; i++ {
		signal[i].Push(subbands[1-i])
		samples[i] = signal[i].Convolve(&coeffs[i], shift)
	}
	return
}

// TreeAnalysis splits 4 full-rate input samples into 4 subband samples,
// downsampling by 4, via a two-stage QMF split (outer stage then inner
// stage on each outer output).
func TreeAnalysis(qmf *Analysis, outerCoeffs, innerCoeffs *[2][16]int32, samples [4]int32) (subbandSamples [4]int32) {
	var intermediate [4]int32

	for i := 0; i < 2; i++ {
		low, high := polyphaseAnalysis(&qmf.OuterFilterSignal, outerCoeffs, 23, [2]int32{samples[2*i], samples[2*i+1]})
		intermediate[0+i] = low
		intermediate[2+i] = high
	}

	for i := 0; i < 2; i++ {
		low, high := polyphaseAnalysis(&qmf.InnerFilterSignal[i], innerCoeffs, 23, [2]int32{intermediate[2*i], intermediate[2*i+1]})
		subbandSamples[2*i+0] = low
		subbandSamples[2*i+1] = high
	}
	return
}

// TreeSynthesis rejoins 4 subband samples into 4 full-rate output
// samples, the inverse of TreeAnalysis.
func TreeSynthesis(qmf *Analysis, outerCoeffs, innerCoeffs *[2][16]int32, subbandSamples [4]int32) (samples [4]int32) {
	var intermediate [4]int32

	for i := 0; i < 2; i++ {
		pair := polyphaseSynthesis(&qmf.InnerFilterSignal[i], innerCoeffs, 22, subbandSamples[2*i+0], subbandSamples[2*i+1])
		intermediate[2*i+0] = pair[0]
		intermediate[2*i+1] = pair[1]
	}

	for i := 0; i < 2; i++ {
		pair := polyphaseSynthesis(&qmf.OuterFilterSignal, outerCoeffs, 21, intermediate[0+i], intermediate[2+i])
		samples[2*i+0] = pair[0]
		samples[2*i+1] = pair[1]
	}
	return
}
