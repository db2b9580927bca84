package aptx_test

import (
	"os"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/openaptx/goaptx"
	"github.com/openaptx/goaptx/internal/testsignal"
)

// buildWAV writes 24-bit interleaved stereo samples to a temporary WAV
// file, the way a caller might hand aptx PCM read from disk. go-audio/wav's
// Encoder requires an io.WriteSeeker to patch in the final chunk sizes, so
// this uses a real file rather than an in-memory buffer.
func buildWAV(t *testing.T, samples []int32, sampleRate int) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "fixture-*.wav")
	if err != nil {
		t.Fatalf("create temp wav: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 24, 2, 1)

	intData := make([]int, len(samples))
	for i, s := range samples {
		intData[i] = int(s)
	}
	ab := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           intData,
		SourceBitDepth: 24,
	}
	if err := enc.Write(ab); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav encoder: %v", err)
	}
	return f.Name()
}

// Example_wavRoundTrip demonstrates encoding 24-bit PCM through
// aptx.Encoder and decoding the result back with aptx.Decoder.
func Example_wavRoundTrip() {
	// In real use this PCM would come from reading a .wav file with
	// github.com/go-audio/wav; here it is generated deterministically so
	// the example has no file dependency.
	samples, err := testsignal.GenerateEncoderSignalVariant(
		testsignal.EncoderVariantAMMultisineV1, 44100, 4*64, 2)
	if err != nil {
		panic(err)
	}
	pcm := aptx.EncodeInt32PCM(samples)

	enc := aptx.NewEncoder(false)
	packed, err := enc.EncodeSamples(pcm)
	if err != nil {
		panic(err)
	}

	dec := aptx.NewDecoder(false)
	decoded, err := dec.DecodeSamples(packed)
	if err != nil {
		panic(err)
	}
	_ = decoded
	// Output:
}

func TestWAVFixtureRoundTrip(t *testing.T) {
	const sampleRate = 44100
	samples, err := testsignal.GenerateEncoderSignalVariant(
		testsignal.EncoderVariantChirpSweepV1, sampleRate, 4*256, 2)
	if err != nil {
		t.Fatal(err)
	}

	wavPath := buildWAV(t, samples, sampleRate)
	f, err := os.Open(wavPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("generated WAV fixture is not valid")
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 24,
	}
	if err := dec.FwdToPCM(); err != nil {
		t.Fatal(err)
	}
	n, err := dec.PCMBuffer(buf)
	if err != nil {
		t.Fatal(err)
	}

	pcm := make([]int32, n)
	for i := 0; i < n; i++ {
		pcm[i] = int32(buf.Data[i])
	}

	enc := aptx.NewEncoder(false)
	packed, err := enc.EncodeSamples(aptx.EncodeInt32PCM(pcm))
	if err != nil {
		t.Fatal(err)
	}

	dec2 := aptx.NewDecoder(false)
	out, err := dec2.DecodeSamples(packed)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatal("decoded no samples from WAV fixture round trip")
	}
}
