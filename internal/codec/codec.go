package codec

import (
	"github.com/openaptx/goaptx/internal/fixed"
	"github.com/openaptx/goaptx/internal/qmf"
	"github.com/openaptx/goaptx/internal/tables"
)

// encodeChannel runs the QMF analysis and quantizer forward over one
// channel's 4 new full-rate samples, producing one quantized codeword per
// subband ready for packetization.
func encodeChannel(channel *Channel, samples [4]int32, hd bool) {
	subbandSamples := qmf.TreeAnalysis(&channel.QMF, &tables.QMFOuterCoeffs, &tables.QMFInnerCoeffs, samples)
	generateDither(channel)

	tbl := tables.Tables(hd)
	for subband := 0; subband < NBSubbands; subband++ {
		diff := fixed.ClipIntP2(subbandSamples[subband]-channel.Prediction[subband].PredictedSample, 23)
		quantizeDifference(&channel.Quantize[subband], diff, channel.Dither[subband],
			channel.Invert[subband].QuantizationFactor, &tbl[subband])
	}
}

// decodeChannel runs the QMF synthesis backward over one channel's
// current predictor state, producing 4 full-rate output samples.
func decodeChannel(channel *Channel) [4]int32 {
	var subbandSamples [4]int32
	for subband := 0; subband < NBSubbands; subband++ {
		subbandSamples[subband] = channel.Prediction[subband].PreviousReconstructedSample
	}
	return qmf.TreeSynthesis(&channel.QMF, &tables.QMFOuterCoeffs, &tables.QMFInnerCoeffs, subbandSamples)
}

// invertQuantizeAndPrediction advances one channel's backward-adaptive
// state (inverse quantizer + predictor) for every subband, the step both
// the encoder (after quantizing) and the decoder (after unpacking) must
// run identically to stay synchronized.
func invertQuantizeAndPrediction(channel *Channel, hd bool) {
	tbl := tables.Tables(hd)
	for subband := 0; subband < NBSubbands; subband++ {
		processSubband(&channel.Invert[subband], &channel.Prediction[subband],
			channel.Quantize[subband].QuantizedSample, channel.Dither[subband], &tbl[subband])
	}
}

// encodeSamples encodes one 4-sample-per-channel block into a packed
// stereo codeword pair, writing ctx.SampleSize() bytes to output.
func encodeSamples(ctx *Context, samples [NBChannels][4]int32, output []byte) {
	for ch := 0; ch < NBChannels; ch++ {
		encodeChannel(&ctx.Channels[ch], samples[ch], ctx.HD)
	}

	insertSync(&ctx.Channels, &ctx.SyncIdx)

	for ch := 0; ch < NBChannels; ch++ {
		invertQuantizeAndPrediction(&ctx.Channels[ch], ctx.HD)
		if ctx.HD {
			codeword := packCodewordHD(&ctx.Channels[ch])
			output[3*ch+0] = byte(codeword >> 16)
			output[3*ch+1] = byte(codeword >> 8)
			output[3*ch+2] = byte(codeword >> 0)
		} else {
			codeword := packCodeword(&ctx.Channels[ch])
			output[2*ch+0] = byte(codeword >> 8)
			output[2*ch+1] = byte(codeword >> 0)
		}
	}
}

// decodeSamples decodes one packed stereo codeword pair from input,
// producing 4 full-rate samples per channel. The returned bool is true
// when the packet's parity check failed (a dropped or corrupted sample).
func decodeSamples(ctx *Context, input []byte) (samples [NBChannels][4]int32, parityFailed bool) {
	for ch := 0; ch < NBChannels; ch++ {
		generateDither(&ctx.Channels[ch])

		if ctx.HD {
			codeword := (uint32(input[3*ch+0]) << 16) | (uint32(input[3*ch+1]) << 8) | uint32(input[3*ch+2])
			unpackCodewordHD(&ctx.Channels[ch], codeword)
		} else {
			codeword := (uint16(input[2*ch+0]) << 8) | uint16(input[2*ch+1])
			unpackCodeword(&ctx.Channels[ch], codeword)
		}
		invertQuantizeAndPrediction(&ctx.Channels[ch], ctx.HD)
	}

	parityFailed = checkParity(&ctx.Channels, &ctx.SyncIdx)

	for ch := 0; ch < NBChannels; ch++ {
		samples[ch] = decodeChannel(&ctx.Channels[ch])
	}

	return samples, parityFailed
}
