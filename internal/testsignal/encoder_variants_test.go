package testsignal

import "testing"

func TestGenerateEncoderSignalVariantRange(t *testing.T) {
	for _, v := range EncoderSignalVariants() {
		samples, err := GenerateEncoderSignalVariant(v, 44100, 4410*2, 2)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if len(samples) != 4410*2 {
			t.Fatalf("%s: got %d samples, want %d", v, len(samples), 4410*2)
		}
		for i, s := range samples {
			if s > fullScale24 || s < -fullScale24-1 {
				t.Fatalf("%s: sample %d = %d out of 24-bit range", v, i, s)
			}
		}
	}
}

func TestGenerateEncoderSignalVariantDeterministic(t *testing.T) {
	a, err := GenerateEncoderSignalVariant(EncoderVariantChirpSweepV1, 44100, 2048, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateEncoderSignalVariant(EncoderVariantChirpSweepV1, 44100, 2048, 2)
	if err != nil {
		t.Fatal(err)
	}
	if HashInt32LE(a) != HashInt32LE(b) {
		t.Fatal("identical generator calls produced different output")
	}
}

func TestGenerateEncoderSignalVariantUnknown(t *testing.T) {
	if _, err := GenerateEncoderSignalVariant("bogus", 44100, 4, 2); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestGenerateEncoderSignalVariantInvalidArgs(t *testing.T) {
	cases := []struct {
		sampleRate, samples, channels int
	}{
		{0, 4, 2},
		{44100, 4, 0},
		{44100, 0, 2},
		{44100, 5, 2},
	}
	for _, c := range cases {
		if _, err := GenerateEncoderSignalVariant(EncoderVariantAMMultisineV1, c.sampleRate, c.samples, c.channels); err == nil {
			t.Fatalf("expected error for %+v", c)
		}
	}
}
