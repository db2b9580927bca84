package codec

import (
	"github.com/openaptx/goaptx/internal/fixed"
	"github.com/openaptx/goaptx/internal/tables"
)

// invertQuantization reconstructs the predictor residual from a received
// (or just-produced) quantized codeword and advances the backward-adaptive
// quantization factor for the next sample — the step both encoder and
// decoder must perform identically to stay in lockstep.
func invertQuantization(iq *InvertQuantize, quantizedSample, dither int32, tbl *tables.SubbandTable) {
	idx := quantizedSample
	if idx < 0 {
		idx = -idx
	} else {
		idx++
	}

	qr := tbl.QuantizeIntervals[idx] / 2
	if quantizedSample < 0 {
		qr = -qr
	}

	qr = fixed.Rshift64Clip24(int64(qr)*(int64(1)<<32)+int64(dither)*int64(tbl.InvertQuantizeDitherFactors[idx]), 32)
	iq.ReconstructedDifference = int32((int64(iq.QuantizationFactor) * int64(qr)) >> 19)

	factorSelect := 32620 * iq.FactorSelect
	factorSelect = fixed.Rshift32(factorSelect+(int32(tbl.QuantizeFactorSelectOffset[idx])*(1<<15)), 15)
	iq.FactorSelect = fixed.Clip(factorSelect, 0, tbl.FactorMax)

	idx = (iq.FactorSelect & 0xFF) >> 3
	shift := uint((tbl.FactorMax - iq.FactorSelect) >> 8)
	iq.QuantizationFactor = (int32(tables.QuantizationFactors[idx]) << 11) >> shift
}
