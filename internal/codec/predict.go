package codec

import (
	"github.com/openaptx/goaptx/internal/fixed"
	"github.com/openaptx/goaptx/internal/tables"
)

// diffSign returns the sign of (x - y): -1, 0, or 1.
func diffSign(x, y int32) int32 {
	switch {
	case x > y:
		return 1
	case x < y:
		return -1
	default:
		return 0
	}
}

// reconstructedDifferencesUpdate pushes reconstructedDifference into the
// predictor's sliding history. The history is stored doubled (the first
// order entries mirror the last order entries) so that later backward
// indexing from the write position never needs to wrap; it returns the
// new write position.
func reconstructedDifferencesUpdate(prediction *Prediction, reconstructedDifference int32, order int) int {
	rd := &prediction.ReconstructedDifferences
	p := int(prediction.Pos)

	rd[p] = rd[order+p]
	p = (p + 1) % order
	prediction.Pos = int32(p)
	rd[order+p] = reconstructedDifference

	return p
}

// predictionFiltering advances the backward-adaptive predictor: combines
// the two-tap sign-correlation predictor with the order-N differential
// weight filter to produce the next predicted sample.
func predictionFiltering(prediction *Prediction, reconstructedDifference int32, order int) {
	reconstructedSample := fixed.ClipIntP2(reconstructedDifference+prediction.PredictedSample, 23)
	predictor := fixed.ClipIntP2(int32((int64(prediction.SWeight[0])*int64(prediction.PreviousReconstructedSample)+
		int64(prediction.SWeight[1])*int64(reconstructedSample))>>22), 23)
	prediction.PreviousReconstructedSample = reconstructedSample

	p := reconstructedDifferencesUpdate(prediction, reconstructedDifference, order)
	rd := &prediction.ReconstructedDifferences

	srd0 := diffSign(reconstructedDifference, 0) * (1 << 23)
	var predictedDifference int64
	for i := 0; i < order; i++ {
		srd := int32(1)
		if rd[order+p-i-1] < 0 {
			srd = -1
		}
		prediction.DWeight[i] -= fixed.Rshift32(prediction.DWeight[i]-srd*srd0, 8)
		predictedDifference += int64(rd[order+p-i]) * int64(prediction.DWeight[i])
	}

	prediction.PredictedDifference = fixed.ClipIntP2(int32(predictedDifference>>22), 23)
	prediction.PredictedSample = fixed.ClipIntP2(predictor+prediction.PredictedDifference, 23)
}

// processSubband runs the full backward-adaptive pipeline for one
// subband: invert the quantized sample, update the sign-correlation
// weights, and advance the differential predictor.
func processSubband(iq *InvertQuantize, prediction *Prediction, quantizedSample, dither int32, tbl *tables.SubbandTable) {
	invertQuantization(iq, quantizedSample, dither, tbl)

	sign := diffSign(iq.ReconstructedDifference, -prediction.PredictedDifference)
	sameSign0 := sign * prediction.PrevSign[0]
	sameSign1 := sign * prediction.PrevSign[1]
	prediction.PrevSign[0] = prediction.PrevSign[1]
	prediction.PrevSign[1] = sign | 1

	const range1 = 0x100000
	sw1 := fixed.Rshift32(-sameSign1*prediction.SWeight[1], 1)
	sw1 = (fixed.Clip(sw1, -range1, range1) &^ 0xF) * 16

	const range0 = 0x300000
	weight0 := 254*prediction.SWeight[0] + 0x800000*sameSign0 + sw1
	prediction.SWeight[0] = fixed.Clip(fixed.Rshift32(weight0, 8), -range0, range0)

	range1b := 0x3C0000 - prediction.SWeight[0]
	weight1 := 255*prediction.SWeight[1] + 0xC00000*sameSign1
	prediction.SWeight[1] = fixed.Clip(fixed.Rshift32(weight1, 8), -range1b, range1b)

	predictionFiltering(prediction, iq.ReconstructedDifference, tbl.PredictionOrder)
}
