package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetClearsButKeepsHD(t *testing.T) {
	ctx := NewContext(true)
	require.True(t, ctx.HD)

	ctx.Channels[Left].CodewordHistory = 12345
	ctx.Reset()

	assert.Zero(t, ctx.Channels[Left].CodewordHistory)
	assert.True(t, ctx.HD)
	assert.EqualValues(t, 1, ctx.Channels[Left].Prediction[0].PrevSign[0])
}

func TestSampleSize(t *testing.T) {
	assert.Equal(t, 4, NewContext(false).SampleSize())
	assert.Equal(t, 6, NewContext(true).SampleSize())
}

// silenceRoundTrip encodes n all-zero 24-bit stereo samples and decodes
// the output, returning the encoded byte count and decoded byte count.
func silenceRoundTrip(t *testing.T, hd bool, nSamples int) (encOut, decOut int) {
	t.Helper()
	enc := NewContext(hd)
	dec := NewContext(hd)

	pcmIn := make([]byte, nSamples*2*3)
	packed := make([]byte, nSamples*enc.SampleSize())

	consumed, written := enc.Encode(pcmIn, packed)
	require.Equal(t, len(pcmIn), consumed)

	pcmOut := make([]byte, nSamples*2*3*2)
	_, decWritten := dec.Decode(packed[:written], pcmOut)
	return written, decWritten
}

func TestEncodeDecodeSilenceRoundTrip(t *testing.T) {
	encOut, decOut := silenceRoundTrip(t, false, 2048)
	assert.NotZero(t, encOut)
	assert.NotZero(t, decOut)
}

func TestEncodeDecodeSilenceRoundTripHD(t *testing.T) {
	encOut, decOut := silenceRoundTrip(t, true, 2048)
	assert.NotZero(t, encOut)
	assert.NotZero(t, decOut)
}

func TestDitherReproducibleAcrossFreshContexts(t *testing.T) {
	a := NewContext(false)
	b := NewContext(false)

	pcm := make([]byte, 512*2*3)
	for i := range pcm {
		pcm[i] = byte(i * 37)
	}

	outA := make([]byte, 512*4)
	outB := make([]byte, 512*4)

	_, wa := a.Encode(pcm, outA)
	_, wb := b.Encode(pcm, outB)

	require.Equal(t, wa, wb)
	assert.Equal(t, outA[:wa], outB[:wb])
}

func TestPackCodewordBitioCrossCheck(t *testing.T) {
	ch := &Channel{}
	ch.reset()
	ch.Quantize[0].QuantizedSample = 0x55
	ch.Quantize[1].QuantizedSample = 0x3
	ch.Quantize[2].QuantizedSample = 0x1
	ch.Quantize[3].QuantizedSample = 0x2

	want := packCodeword(ch)

	got, err := packCodewordBitio(ch)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInsertSyncForcesParitySchedule(t *testing.T) {
	var channels [NBChannels]Channel
	for i := range channels {
		channels[i].reset()
	}
	// Combined parity starts at 0 (all quantized samples even, no dither
	// parity); with syncIdx==7 the schedule demands parity==1 on this
	// sample, so insertSync must flip exactly one subband to fix it.
	for s := 0; s < NBSubbands; s++ {
		channels[Left].Quantize[s].Error = int32(100 + s)
		channels[Right].Quantize[s].Error = int32(200 + s)
		channels[Left].Quantize[s].QuantizedSampleParityChange = channels[Left].Quantize[s].QuantizedSample - 1
		channels[Right].Quantize[s].QuantizedSampleParityChange = channels[Right].Quantize[s].QuantizedSample - 1
	}
	var syncIdx uint8 = 7

	insertSync(&channels, &syncIdx)

	got := quantizedParity(&channels[Left]) ^ quantizedParity(&channels[Right])
	assert.EqualValues(t, 1, got)
}
