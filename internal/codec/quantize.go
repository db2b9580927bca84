package codec

import (
	"github.com/openaptx/goaptx/internal/fixed"
	"github.com/openaptx/goaptx/internal/tables"
	"github.com/openaptx/goaptx/util"
)

// binSearch locates the quantizer interval index whose boundary is the
// largest one not exceeding value, via binary search over a
// power-of-two-sized interval table.
func binSearch(value, factor int32, intervals []int32, nbIntervals int) int32 {
	idx := int32(0)
	for i := nbIntervals >> 1; i > 0; i >>= 1 {
		if int64(factor)*int64(intervals[int(idx)+i]) <= int64(value)<<24 {
			idx += int32(i)
		}
	}
	return idx
}

// quantizeDifference quantizes one subband's predictor residual,
// producing both the quantized codeword and the alternate codeword that
// would flip this subband's contribution to the packet's parity bit (used
// by the sync inserter to steer parity without re-quantizing).
func quantizeDifference(quantize *Quantize, sampleDifference, dither, quantizationFactor int32, tbl *tables.SubbandTable) {
	intervals := tbl.QuantizeIntervals

	sampleDifferenceAbs := util.Abs(sampleDifference)
	if sampleDifferenceAbs > (1<<23)-1 {
		sampleDifferenceAbs = (1 << 23) - 1
	}

	quantizedSample := binSearch(sampleDifferenceAbs>>4, quantizationFactor, intervals, tbl.Size())

	d := fixed.Rshift32Clip24(int32((int64(dither)*int64(dither))>>32), 7) - (1 << 23)
	d = int32(fixed.Rshift64(int64(d)*int64(tbl.QuantizeDitherFactors[quantizedSample]), 23))

	iv := intervals[quantizedSample:]
	mean := (iv[1] + iv[0]) / 2
	sign := int32(-1)
	if sampleDifference >= 0 {
		sign = 1
	}
	interval := (iv[1] - iv[0]) * sign

	dithered := fixed.Rshift64Clip24(int64(dither)*int64(interval)+int64(fixed.ClipIntP2(mean+d, 23))<<32, 32)
	errv := (int64(sampleDifferenceAbs) << 20) - int64(dithered)*int64(quantizationFactor)
	quantize.Error = util.Abs(int32(fixed.Rshift64(errv, 23)))

	parityChange := quantizedSample
	if errv < 0 {
		quantizedSample--
	} else {
		parityChange--
	}

	inv := int32(0)
	if sampleDifference < 0 {
		inv = -1
	}
	quantize.QuantizedSample = quantizedSample ^ inv
	quantize.QuantizedSampleParityChange = parityChange ^ inv
}
