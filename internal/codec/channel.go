// Package codec implements the aptX / aptX-HD bit-exact subband codec
// core: dithered differential quantization, a backward-adaptive
// predictor, a two-stage QMF filter bank, and the parity-based
// inter-packet synchronizer. Every operation here is synchronous,
// allocation-free, and operates on fixed-size arrays.
package codec

import (
	"github.com/openaptx/goaptx/internal/qmf"
	"github.com/openaptx/goaptx/internal/tables"
)

// NBSubbands is the number of subbands per channel (LF, MLF, MHF, HF).
const NBSubbands = tables.NBSubbands

// NBChannels is the number of audio channels (stereo only).
const NBChannels = 2

const (
	// Left is the left-channel index into Context.Channels.
	Left = 0
	// Right is the right-channel index into Context.Channels.
	Right = 1
)

// LatencySamples is the algorithmic delay, in samples per channel,
// introduced by the QMF analysis/synthesis trees.
const LatencySamples = tables.LatencySamples

// Quantize holds the per-subband state produced by the forward quantizer.
type Quantize struct {
	QuantizedSample             int32
	QuantizedSampleParityChange int32
	Error                       int32
}

// InvertQuantize holds the per-subband state of the backward-adaptive
// inverse quantizer, shared by both encoder and decoder.
type InvertQuantize struct {
	QuantizationFactor      int32
	FactorSelect            int32
	ReconstructedDifference int32
}

// Prediction holds the per-subband state of the backward-adaptive
// predictor: the two-tap sign-correlation predictor and the order-N
// differential weight filter.
type Prediction struct {
	PrevSign                    [2]int32
	SWeight                     [2]int32
	DWeight                     [24]int32
	Pos                         int32
	ReconstructedDifferences    [48]int32
	PreviousReconstructedSample int32
	PredictedDifference         int32
	PredictedSample             int32
}

// Channel holds the complete per-channel codec state: dither generation
// history, the QMF analysis/synthesis filter history, and one
// Quantize/InvertQuantize/Prediction triple per subband.
type Channel struct {
	CodewordHistory int32
	DitherParity    int32
	Dither          [NBSubbands]int32

	QMF        qmf.Analysis
	Quantize   [NBSubbands]Quantize
	Invert     [NBSubbands]InvertQuantize
	Prediction [NBSubbands]Prediction
}

// reset clears a channel to its power-on state, following the +1 sign
// bias the predictor needs for its first correlation decision.
func (c *Channel) reset() {
	*c = Channel{}
	for subband := 0; subband < NBSubbands; subband++ {
		c.Prediction[subband].PrevSign[0] = 1
		c.Prediction[subband].PrevSign[1] = 1
	}
}
