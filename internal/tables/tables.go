// Package tables holds the immutable per-subband quantizer tables and the
// QMF filter kernels the aptX / aptX-HD codec core is built on. All data
// here is read-only for the lifetime of the process.
package tables

// Subband indexes the four frequency bands produced by the two-stage QMF
// analysis tree, in wire order.
type Subband int

const (
	LF  Subband = iota // Low Frequency (0-5.5kHz)
	MLF                // Medium-Low Frequency (5.5-11kHz)
	MHF                // Medium-High Frequency (11-16.5kHz)
	HF                 // High Frequency (16.5-22kHz)
)

// NBSubbands is the number of subbands per channel.
const NBSubbands = 4

// NBFilters is the number of filters in each stage of the QMF tree (2 per
// stage, one a mirror of the other).
const NBFilters = 2

// FilterTaps is the length of each QMF convolution kernel.
const FilterTaps = 16

// LatencySamples is the number of samples of algorithmic delay introduced
// by the QMF analysis/synthesis trees.
const LatencySamples = 90

// QMFOuterCoeffs holds the outer-stage QMF convolution kernels.
var QMFOuterCoeffs = [NBFilters][FilterTaps]int32{
	{
		730, -413, -9611, 43626, -121026, 269973, -585547, 2801966,
		697128, -160481, 27611, 8478, -10043, 3511, 688, -897,
	},
	{
		-897, 688, 3511, -10043, 8478, 27611, -160481, 697128,
		2801966, -585547, 269973, -121026, 43626, -9611, -413, 730,
	},
}

// QMFInnerCoeffs holds the inner-stage QMF convolution kernels.
var QMFInnerCoeffs = [NBFilters][FilterTaps]int32{
	{
		1033, -584, -13592, 61697, -171156, 381799, -828088, 3962579,
		985888, -226954, 39048, 11990, -14203, 4966, 973, -1268,
	},
	{
		-1268, 973, 4966, -14203, 11990, 39048, -226954, 985888,
		3962579, -828088, 381799, -171156, 61697, -13592, -584, 1033,
	},
}

// SubbandTable holds the per-subband quantizer constants for one frequency
// band, duplicated for the standard and HD variants of the codec.
type SubbandTable struct {
	QuantizeIntervals            []int32
	InvertQuantizeDitherFactors  []int32
	QuantizeDitherFactors        []int32
	QuantizeFactorSelectOffset   []int16
	FactorMax                    int32
	PredictionOrder              int
}

// Size returns the number of quantizer interval boundaries.
func (t *SubbandTable) Size() int { return len(t.QuantizeIntervals) }

// Tables returns the four subband tables for the standard (hd=false) or
// HD (hd=true) codec variant, indexed by Subband.
func Tables(hd bool) *[NBSubbands]SubbandTable {
	if hd {
		return &hdTables
	}
	return &stdTables
}

// QuantizationFactors is the 32-entry table used to derive the running
// quantization_factor from factor_select.
var QuantizationFactors = [32]int16{
	2048, 2093, 2139, 2186, 2233, 2282, 2332, 2383,
	2435, 2489, 2543, 2599, 2656, 2714, 2774, 2834,
	2896, 2960, 3025, 3091, 3158, 3228, 3298, 3371,
	3444, 3520, 3597, 3676, 3756, 3838, 3922, 4008,
}

var stdTables = [NBSubbands]SubbandTable{
	{
		QuantizeIntervals:           quantizeIntervalsLF[:],
		InvertQuantizeDitherFactors: invertQuantizeDitherFactorsLF[:],
		QuantizeDitherFactors:       quantizeDitherFactorsLF[:],
		QuantizeFactorSelectOffset:  quantizeFactorSelectOffsetLF[:],
		FactorMax:                  0x11FF,
		PredictionOrder:            24,
	},
	{
		QuantizeIntervals:           quantizeIntervalsMLF[:],
		InvertQuantizeDitherFactors: invertQuantizeDitherFactorsMLF[:],
		QuantizeDitherFactors:       quantizeDitherFactorsMLF[:],
		QuantizeFactorSelectOffset:  quantizeFactorSelectOffsetMLF[:],
		FactorMax:                  0x14FF,
		PredictionOrder:            12,
	},
	{
		QuantizeIntervals:           quantizeIntervalsMHF[:],
		InvertQuantizeDitherFactors: invertQuantizeDitherFactorsMHF[:],
		QuantizeDitherFactors:       quantizeDitherFactorsMHF[:],
		QuantizeFactorSelectOffset:  quantizeFactorSelectOffsetMHF[:],
		FactorMax:                  0x16FF,
		PredictionOrder:            6,
	},
	{
		QuantizeIntervals:           quantizeIntervalsHF[:],
		InvertQuantizeDitherFactors: invertQuantizeDitherFactorsHF[:],
		QuantizeDitherFactors:       quantizeDitherFactorsHF[:],
		QuantizeFactorSelectOffset:  quantizeFactorSelectOffsetHF[:],
		FactorMax:                  0x15FF,
		PredictionOrder:            12,
	},
}

var hdTables = [NBSubbands]SubbandTable{
	{
		QuantizeIntervals:           hdQuantizeIntervalsLF[:],
		InvertQuantizeDitherFactors: hdInvertQuantizeDitherFactorsLF[:],
		QuantizeDitherFactors:       hdQuantizeDitherFactorsLF[:],
		QuantizeFactorSelectOffset:  hdQuantizeFactorSelectOffsetLF[:],
		FactorMax:                  0x11FF,
		PredictionOrder:            24,
	},
	{
		QuantizeIntervals:           hdQuantizeIntervalsMLF[:],
		InvertQuantizeDitherFactors: hdInvertQuantizeDitherFactorsMLF[:],
		QuantizeDitherFactors:       hdQuantizeDitherFactorsMLF[:],
		QuantizeFactorSelectOffset:  hdQuantizeFactorSelectOffsetMLF[:],
		FactorMax:                  0x14FF,
		PredictionOrder:            12,
	},
	{
		QuantizeIntervals:           hdQuantizeIntervalsMHF[:],
		InvertQuantizeDitherFactors: hdInvertQuantizeDitherFactorsMHF[:],
		QuantizeDitherFactors:       hdQuantizeDitherFactorsMHF[:],
		QuantizeFactorSelectOffset:  hdQuantizeFactorSelectOffsetMHF[:],
		FactorMax:                  0x16FF,
		PredictionOrder:            6,
	},
	{
		QuantizeIntervals:           hdQuantizeIntervalsHF[:],
		InvertQuantizeDitherFactors: hdInvertQuantizeDitherFactorsHF[:],
		QuantizeDitherFactors:       hdQuantizeDitherFactorsHF[:],
		QuantizeFactorSelectOffset:  hdQuantizeFactorSelectOffsetHF[:],
		FactorMax:                  0x15FF,
		PredictionOrder:            12,
	},
}
