package codec

// DecodeSync decodes a continuous, possibly corrupted or truncated aptX
// byte stream, auto-resynchronizing on the parity-based sync schedule
// whenever a packet fails to decode. Unlike Decode, it never gives up: a
// bad byte is dropped and decoding resumes one byte later, so a stream
// with transient corruption keeps producing output instead of stalling.
//
// It returns the number of input bytes consumed and output bytes
// written. synced reports whether the stream is currently considered
// locked onto a valid packet boundary. dropped reports how many bytes
// were discarded to re-achieve sync during this call (0 most of the
// time).
func (ctx *Context) DecodeSync(input []byte, output []byte) (consumed int, written int, synced bool, dropped int) {
	sampleSize := ctx.SampleSize()
	ipos, opos := 0, 0

	// If we have some unprocessed bytes in internal cache, first fill
	// remaining data to internal cache except the final byte.
	if ctx.DecodeSyncBufferLen > 0 && sampleSize-1-int(ctx.DecodeSyncBufferLen) <= len(input) {
		for int(ctx.DecodeSyncBufferLen) < sampleSize-1 {
			ctx.DecodeSyncBuffer[ctx.DecodeSyncBufferLen] = input[ipos]
			ctx.DecodeSyncBufferLen++
			ipos++
		}
	}

	// Internal cache decode loop, use it only when a sample is split
	// between internal cache and the input buffer.
	for int(ctx.DecodeSyncBufferLen) == sampleSize-1 && ipos < sampleSize && ipos < len(input) &&
		(opos+3*NBChannels*4 <= len(output) || ctx.DecodeSkipLeading > 0 || ctx.DecodeDropped > 0) {

		ctx.DecodeSyncBuffer[sampleSize-1] = input[ipos]
		ipos++

		processedStep, writtenStep := ctx.Decode(ctx.DecodeSyncBuffer[:sampleSize], output[opos:])
		opos += writtenStep

		if ctx.DecodeDropped > 0 && processedStep == sampleSize {
			ctx.DecodeDropped += uint64(processedStep)
			ctx.DecodeSyncPackets++
			if ctx.DecodeSyncPackets >= latencyPackets {
				dropped += int(ctx.DecodeDropped)
				ctx.DecodeDropped = 0
				ctx.DecodeSyncPackets = 0
			}
		}

		if processedStep < sampleSize {
			ctx.resetDecodeSync()
			synced = false
			ctx.DecodeDropped++
			ctx.DecodeSyncPackets = 0
			for i := 0; i < sampleSize-1; i++ {
				ctx.DecodeSyncBuffer[i] = ctx.DecodeSyncBuffer[i+1]
			}
		} else {
			if ctx.DecodeDropped == 0 {
				synced = true
			}
			ctx.DecodeSyncBufferLen = 0
		}
	}

	// If all unprocessed data are now available only in the input
	// buffer, do not use the internal cache.
	if int(ctx.DecodeSyncBufferLen) == sampleSize-1 && ipos == sampleSize {
		ipos = 0
		ctx.DecodeSyncBufferLen = 0
	}

	// Main decode loop: decode as many samples as possible; if decoding
	// fails, restart on the next byte.
	for ipos+sampleSize <= len(input) && (opos+3*NBChannels*4 <= len(output) || ctx.DecodeSkipLeading > 0 || ctx.DecodeDropped > 0) {
		inputSizeStep := ((len(output)-opos)/3*NBChannels*4 + int(ctx.DecodeSkipLeading)) * sampleSize
		if inputSizeStep > ((len(input)-ipos)/sampleSize)*sampleSize {
			inputSizeStep = ((len(input) - ipos) / sampleSize) * sampleSize
		}
		if inputSizeStep > (latencyPackets-int(ctx.DecodeSyncPackets))*sampleSize && ctx.DecodeDropped > 0 {
			inputSizeStep = (latencyPackets - int(ctx.DecodeSyncPackets)) * sampleSize
		}

		processedStep, writtenStep := ctx.Decode(input[ipos:ipos+inputSizeStep], output[opos:])

		ipos += processedStep
		opos += writtenStep

		if ctx.DecodeDropped > 0 && processedStep/sampleSize > 0 {
			ctx.DecodeDropped += uint64(processedStep)
			ctx.DecodeSyncPackets += uint64(processedStep / sampleSize)
			if ctx.DecodeSyncPackets >= latencyPackets {
				dropped += int(ctx.DecodeDropped)
				ctx.DecodeDropped = 0
				ctx.DecodeSyncPackets = 0
			}
		}

		if processedStep < inputSizeStep {
			ctx.resetDecodeSync()
			synced = false
			ipos++
			ctx.DecodeDropped++
			ctx.DecodeSyncPackets = 0
		} else if ctx.DecodeDropped == 0 {
			synced = true
		}
	}

	// If the number of unprocessed bytes is less than a sample, store
	// them to the internal cache.
	if ipos+sampleSize > len(input) {
		for ipos < len(input) {
			ctx.DecodeSyncBuffer[ctx.DecodeSyncBufferLen] = input[ipos]
			ctx.DecodeSyncBufferLen++
			ipos++
		}
	}

	return ipos, opos, synced, dropped
}

// DecodeSyncFinish resets a DecodeSync stream, returning the number of
// bytes that were left buffered and unprocessed (discarded).
func (ctx *Context) DecodeSyncFinish() int {
	leftover := int(ctx.DecodeSyncBufferLen)
	ctx.Reset()
	return leftover
}
