package codec

// Context holds the complete state of one aptX / aptX-HD encode or decode
// stream: both channels' codec state, the sync schedule counter, and the
// decode_sync auto-resynchronization bookkeeping.
type Context struct {
	Channels [NBChannels]Channel
	HD       bool
	SyncIdx  uint8

	// EncodeRemaining counts down the trailing flush packets EncodeFinish
	// must still emit to drain the QMF synthesis pipeline's latency.
	EncodeRemaining uint8
	// DecodeSkipLeading counts down the leading packets Decode must
	// discard while the QMF analysis/synthesis latency fills.
	DecodeSkipLeading uint8

	// DecodeSyncPackets and DecodeDropped track how many consecutive
	// packets have decoded successfully since the last resync, and how
	// many bytes were skipped to achieve it; see DecodeSync.
	DecodeSyncPackets uint64
	DecodeDropped     uint64

	// DecodeSyncBuffer holds up to sampleSize-1 unprocessed bytes that
	// DecodeSync has buffered across calls while waiting for a complete
	// packet to arrive.
	DecodeSyncBuffer    [6]byte
	DecodeSyncBufferLen uint8
}

// latencyPackets is the number of 4-sample packets needed to fill the QMF
// tree's LatencySamples of algorithmic delay.
const latencyPackets = (LatencySamples + 3) / 4

// SampleSize returns the number of wire bytes per encoded 4-sample block:
// 4 for standard aptX, 6 for aptX-HD.
func (ctx *Context) SampleSize() int {
	if ctx.HD {
		return 6
	}
	return 4
}

// NewContext allocates and resets a fresh encode/decode context for
// standard aptX (hd=false) or aptX-HD (hd=true).
func NewContext(hd bool) *Context {
	ctx := &Context{HD: hd}
	ctx.Reset()
	return ctx
}

// Reset restores ctx to its power-on state, preserving only the hd mode.
func (ctx *Context) Reset() {
	hd := ctx.HD
	*ctx = Context{HD: hd}

	ctx.DecodeSkipLeading = latencyPackets
	ctx.EncodeRemaining = latencyPackets

	for ch := 0; ch < NBChannels; ch++ {
		ctx.Channels[ch].reset()
	}
}

// resetDecodeSync performs a Reset while preserving the decode_sync
// engine's bookkeeping (its carry buffer and drop/resync counters), used
// when a mid-stream parity failure forces the predictor state to be
// discarded without losing sync progress.
func (ctx *Context) resetDecodeSync() {
	droppedDecode := ctx.DecodeDropped
	syncPackets := ctx.DecodeSyncPackets
	bufLen := ctx.DecodeSyncBufferLen
	var buf [6]byte
	copy(buf[:], ctx.DecodeSyncBuffer[:])

	ctx.Reset()

	ctx.DecodeSyncBuffer = buf
	ctx.DecodeSyncBufferLen = bufLen
	ctx.DecodeSyncPackets = syncPackets
	ctx.DecodeDropped = droppedDecode
}

// Encode consumes as many complete 4-sample-per-channel, 3-bytes-per-
// sample-per-channel PCM blocks from input as fit both input and output,
// writing one packed codeword per block to output. It returns the number
// of input bytes consumed and the number of output bytes written.
func (ctx *Context) Encode(input []byte, output []byte) (consumed int, written int) {
	sampleSize := ctx.SampleSize()
	var samples [NBChannels][4]int32

	ipos, opos := 0, 0
	for ipos+3*NBChannels*4 <= len(input) && opos+sampleSize <= len(output) {
		for sample := 0; sample < 4; sample++ {
			for ch := 0; ch < NBChannels; ch++ {
				samples[ch][sample] = int32(uint32(input[ipos+0]) |
					uint32(input[ipos+1])<<8 |
					uint32(int8(input[ipos+2]))<<16)
				ipos += 3
			}
		}
		encodeSamples(ctx, samples, output[opos:opos+sampleSize])
		opos += sampleSize
	}

	return ipos, opos
}

// EncodeFinish flushes the trailing LatencySamples worth of silence
// through the encoder so a receiver's decode pipeline latency fully
// drains. It writes as many flush packets as fit in output; if
// EncodeRemaining has not reached zero it must be called again with more
// output space before the context resets and can be reused. Returns
// (written, done).
func (ctx *Context) EncodeFinish(output []byte) (written int, done bool) {
	sampleSize := ctx.SampleSize()
	var silence [NBChannels][4]int32

	if ctx.EncodeRemaining == 0 {
		return 0, true
	}

	opos := 0
	for ctx.EncodeRemaining > 0 && opos+sampleSize <= len(output) {
		encodeSamples(ctx, silence, output[opos:opos+sampleSize])
		ctx.EncodeRemaining--
		opos += sampleSize
	}

	if ctx.EncodeRemaining > 0 {
		return opos, false
	}

	ctx.Reset()
	return opos, true
}

// Decode consumes as many complete packed codewords from input as fit,
// writing decoded 24-bit-per-sample PCM to output, stopping early the
// first time a packet fails its parity check. It returns the number of
// input bytes consumed and the number of output bytes written. The final
// 2 samples of output from a finite stream carry no
// meaningful signal: they are padding introduced by the QMF latency's
// non-multiple-of-4 remainder.
func (ctx *Context) Decode(input []byte, output []byte) (consumed int, written int) {
	sampleSize := ctx.SampleSize()
	ipos, opos := 0, 0

	for ipos+sampleSize <= len(input) && (opos+3*NBChannels*4 <= len(output) || ctx.DecodeSkipLeading > 0) {
		samples, failed := decodeSamples(ctx, input[ipos:ipos+sampleSize])
		if failed {
			break
		}
		ipos += sampleSize

		sample := 0
		if ctx.DecodeSkipLeading > 0 {
			ctx.DecodeSkipLeading--
			if ctx.DecodeSkipLeading > 0 {
				continue
			}
			sample = LatencySamples % 4
		}
		for ; sample < 4; sample++ {
			for ch := 0; ch < NBChannels; ch++ {
				v := uint32(samples[ch][sample])
				output[opos+0] = byte(v >> 0)
				output[opos+1] = byte(v >> 8)
				output[opos+2] = byte(v >> 16)
				opos += 3
			}
		}
	}

	return ipos, opos
}
