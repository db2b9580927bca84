// decoder.go implements the public Decoder API for aptX/aptX-HD decoding.

package aptx

import "github.com/openaptx/goaptx/internal/codec"

// Decoder decodes aptX or aptX-HD codewords into 24-bit little-endian
// stereo PCM.
//
// A Decoder instance maintains internal backward-adaptive state and is
// NOT safe for concurrent use. Each goroutine should create its own
// Decoder instance.
type Decoder struct {
	ctx *codec.Context
}

// NewDecoder creates a new Decoder. hd selects aptX-HD (6-byte codewords)
// instead of standard aptX (4-byte codewords); it must match the mode
// the stream was encoded with.
func NewDecoder(hd bool) *Decoder {
	return &Decoder{ctx: codec.NewContext(hd)}
}

// HD reports whether d decodes aptX-HD codewords.
func (d *Decoder) HD() bool { return d.ctx.HD }

// SampleSize returns the number of codeword bytes d consumes per
// PCMGroupBytes of PCM output.
func (d *Decoder) SampleSize() int { return d.ctx.SampleSize() }

// Decode consumes complete codewords from in, writing decoded PCM to
// out, stopping early the first time a codeword fails its parity check
// (a sign that the stream has desynchronized — see DecodeSync for a
// variant that recovers from this automatically).
//
// Returns the number of in bytes consumed and out bytes written. The
// final 2 samples of output from a finite stream carry no meaningful
// signal: the QMF analysis/synthesis trees' 90-sample latency does not
// divide evenly by the 4-samples-per-group stride, so the last group
// decoded pads with 2 samples of latency-fill rather than signal.
func (d *Decoder) Decode(in, out []byte) (consumed, written int) {
	return d.ctx.Decode(in, out)
}

// DecodeSamples is a convenience wrapper over Decode that allocates and
// returns the decoded PCM for a complete codeword buffer. It returns an
// error if a codeword fails its parity check before the whole input is
// consumed; the partially decoded PCM produced so far is still returned.
func (d *Decoder) DecodeSamples(in []byte) ([]byte, error) {
	out := make([]byte, (len(in)/d.SampleSize())*PCMGroupBytes)
	consumed, written := d.Decode(in, out)
	if consumed != len(in) {
		return out[:written], ErrBufferTooSmall
	}
	return out[:written], nil
}

// DecodeSync decodes a continuous, possibly corrupted or truncated aptX
// byte stream, auto-resynchronizing on the parity-based sync schedule
// whenever a codeword fails to decode, instead of stopping like Decode.
//
// Returns the number of in bytes consumed and out bytes written. synced
// reports whether the stream is currently locked onto a valid codeword
// boundary. dropped reports how many bytes were discarded to regain sync
// during this call (usually 0).
func (d *Decoder) DecodeSync(in, out []byte) (consumed, written int, synced bool, dropped int) {
	return d.ctx.DecodeSync(in, out)
}

// DecodeSyncFinish resets a DecodeSync stream, returning the number of
// bytes that were left buffered and unprocessed.
func (d *Decoder) DecodeSyncFinish() int {
	return d.ctx.DecodeSyncFinish()
}

// Reset restores d to its power-on state, discarding all backward-
// adaptive predictor, dither, and resync state.
func (d *Decoder) Reset() { d.ctx.Reset() }
