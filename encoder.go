// encoder.go implements the public Encoder API for aptX/aptX-HD encoding.

package aptx

import "github.com/openaptx/goaptx/internal/codec"

// Encoder encodes 24-bit little-endian stereo PCM into aptX or aptX-HD
// codewords.
//
// An Encoder instance maintains internal backward-adaptive state and is
// NOT safe for concurrent use. Each goroutine should create its own
// Encoder instance.
type Encoder struct {
	ctx *codec.Context
}

// NewEncoder creates a new Encoder. hd selects aptX-HD (6-byte codewords,
// wider quantizers) instead of standard aptX (4-byte codewords).
func NewEncoder(hd bool) *Encoder {
	return &Encoder{ctx: codec.NewContext(hd)}
}

// HD reports whether e encodes aptX-HD codewords.
func (e *Encoder) HD() bool { return e.ctx.HD }

// SampleSize returns the number of codeword bytes e produces per
// PCMGroupBytes of PCM input.
func (e *Encoder) SampleSize() int { return e.ctx.SampleSize() }

// Encode consumes complete 4-sample-per-channel PCM groups from pcm
// (interleaved left/right, 3 little-endian bytes per 24-bit sample),
// writing one codeword per group to out. It consumes and produces as
// much as both buffers allow; call it repeatedly with fresh buffer
// windows to drain a larger input.
//
// Returns the number of pcm bytes consumed and out bytes written.
func (e *Encoder) Encode(pcm, out []byte) (consumed, written int) {
	return e.ctx.Encode(pcm, out)
}

// EncodeSamples is a convenience wrapper over Encode that allocates and
// returns the encoded codewords for a complete PCM buffer. pcm's length
// must be a multiple of PCMGroupBytes.
func (e *Encoder) EncodeSamples(pcm []byte) ([]byte, error) {
	if len(pcm)%PCMGroupBytes != 0 {
		return nil, ErrInvalidInputSize
	}
	out := make([]byte, (len(pcm)/PCMGroupBytes)*e.SampleSize())
	consumed, written := e.Encode(pcm, out)
	if consumed != len(pcm) {
		return out[:written], ErrBufferTooSmall
	}
	return out[:written], nil
}

// EncodeFinish flushes 23 groups of silence (the codec's 90-sample latency
// rounded up to whole 4-sample groups) through the encoder so a decoder's
// pipeline latency fully drains, writing as many
// flush codewords as fit in out. If it returns done=false, the encoder
// still has pending flush codewords and EncodeFinish must be called again
// with more output space; once done=true the encoder has reset and is
// ready to start a new stream.
func (e *Encoder) EncodeFinish(out []byte) (written int, done bool) {
	return e.ctx.EncodeFinish(out)
}

// Reset restores e to its power-on state, discarding all backward-
// adaptive predictor and dither state, ready to start a new stream.
func (e *Encoder) Reset() { e.ctx.Reset() }
