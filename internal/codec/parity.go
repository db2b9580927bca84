package codec

// quantizedParity returns the parity (0 or 1) of all subbands' quantized
// samples in one channel, combined with the channel's dither parity bit.
func quantizedParity(channel *Channel) int32 {
	parity := channel.DitherParity
	for subband := 0; subband < NBSubbands; subband++ {
		parity ^= channel.Quantize[subband].QuantizedSample
	}
	return parity & 1
}

// checkParity verifies that the combined parity of both channels matches
// the expected 1-in-8 sync schedule, advancing syncIdx for the next call.
// Returns true when the parity is wrong (a dropped or corrupted sample).
func checkParity(channels *[NBChannels]Channel, syncIdx *uint8) bool {
	parity := quantizedParity(&channels[Left]) ^ quantizedParity(&channels[Right])
	eighth := int32(0)
	if *syncIdx == 7 {
		eighth = 1
	}

	*syncIdx = (*syncIdx + 1) & 7
	return (parity ^ eighth) != 0
}

// subbandSyncOrder is the fixed scan order insertSync searches when
// hunting for the subband with the smallest quantization error to nudge.
var subbandSyncOrder = [NBSubbands]int{1, 2, 0, 3}

// insertSync enforces the parity sync schedule by flipping the quantized
// sample of whichever subband (across both channels) has the smallest
// quantization error, so the 1-bit nudge is as inaudible as possible.
func insertSync(channels *[NBChannels]Channel, syncIdx *uint8) {
	if !checkParity(channels, syncIdx) {
		return
	}

	min := &channels[NBChannels-1].Quantize[subbandSyncOrder[0]]
	for c := NBChannels - 1; c >= 0; c-- {
		for i := 0; i < NBSubbands; i++ {
			cand := &channels[c].Quantize[subbandSyncOrder[i]]
			if cand.Error < min.Error {
				min = cand
			}
		}
	}

	min.QuantizedSample = min.QuantizedSampleParityChange
}
