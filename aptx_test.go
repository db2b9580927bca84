package aptx

import "testing"

func TestEncodeFinishThenDecodeAllZeroRoundTrip(t *testing.T) {
	const nBlocks = 512
	enc := NewEncoder(false)

	pcm := make([]byte, nBlocks*PCMGroupBytes)
	packed := make([]byte, nBlocks*enc.SampleSize())

	consumed, written := enc.Encode(pcm, packed)
	if consumed != len(pcm) {
		t.Fatalf("Encode consumed %d of %d", consumed, len(pcm))
	}
	packed = packed[:written]

	flushBuf := make([]byte, 64*enc.SampleSize())
	for {
		n, done := enc.EncodeFinish(flushBuf)
		packed = append(packed, flushBuf[:n]...)
		if done {
			break
		}
	}

	dec := NewDecoder(false)
	out := make([]byte, len(packed)*8)
	consumed, written = dec.Decode(packed, out)

	if consumed != len(packed) {
		t.Fatalf("Decode consumed %d of %d packed bytes", consumed, len(packed))
	}

	// encode_finish appends 23 flush packets to the 512 encoded ones (535
	// total). decode_skip_leading discards the leading 90 samples per
	// channel (22 whole packets plus the first 2 of the 23rd, since
	// 90 does not divide evenly by 4), leaving the trailing 2 samples of
	// that 23rd packet plus the remaining 512 full packets as output.
	const channels = 2
	wantBytes := nBlocks*PCMGroupBytes + (90%4)*channels*PCMSampleBytes
	if written != wantBytes {
		t.Fatalf("decoded %d bytes, want %d", written, wantBytes)
	}

	samples := DecodeInt32PCM(out[:written])
	for i, s := range samples {
		if s > 1 || s < -1 {
			t.Fatalf("sample %d = %d, want within +-1 of 0", i, s)
		}
	}
}

func TestParityFailureReturnsConsumedAtTenthPacket(t *testing.T) {
	enc := NewEncoder(false)
	pcm := make([]byte, 100*PCMGroupBytes)
	for i := range pcm {
		pcm[i] = byte(i * 13)
	}
	packed := make([]byte, 100*enc.SampleSize())
	_, written := enc.Encode(pcm, packed)
	packed = packed[:written]

	// Codeword bit 13 (left channel's transmitted parity bit) sits at bit 5
	// of the left channel's high byte - the only bit position that
	// actually feeds aptX's parity schedule check. Flip it in the 10th
	// packet (1-indexed) to force a parity failure there. Decode stops
	// before the failing packet, so only the 9 packets ahead of it count
	// as consumed.
	const sampleSize = 4
	packed[9*sampleSize+0] ^= 0x20

	dec := NewDecoder(false)
	out := make([]byte, len(packed)*8)
	consumed, _ := dec.Decode(packed, out)

	if consumed != 9*sampleSize {
		t.Errorf("Decode consumed %d bytes, want %d", consumed, 9*sampleSize)
	}
}

func TestDecodeSyncRecoversFromStrayByte(t *testing.T) {
	enc := NewEncoder(false)
	pcm := make([]byte, 100*PCMGroupBytes)
	for i := range pcm {
		pcm[i] = byte(i * 7)
	}
	packed := make([]byte, 100*enc.SampleSize())
	_, written := enc.Encode(pcm, packed)
	packed = packed[:written]

	corrupted := make([]byte, 0, len(packed)+1)
	corrupted = append(corrupted, packed[:47]...)
	corrupted = append(corrupted, 0xAA)
	corrupted = append(corrupted, packed[47:]...)

	dec := NewDecoder(false)
	out := make([]byte, len(corrupted)*8)

	var totalDropped int
	ipos := 0
	var synced bool
	for ipos < len(corrupted) {
		consumed, _, s, dropped := dec.DecodeSync(corrupted[ipos:], out)
		ipos += consumed
		totalDropped += dropped
		synced = s
		if consumed == 0 {
			break
		}
	}

	if totalDropped < 1 {
		t.Errorf("dropped = %d, want >= 1", totalDropped)
	}
	if !synced {
		t.Errorf("synced = false at completion, want true")
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if v[0] != 0 {
		t.Errorf("Version()[0] = %d, want 0", v[0])
	}
}

func TestDetectHD(t *testing.T) {
	if !DetectHD(StreamSignatureHD[:]) {
		t.Error("DetectHD(StreamSignatureHD) = false")
	}
	if DetectHD(StreamSignature[:]) {
		t.Error("DetectHD(StreamSignature) = true, want false")
	}
	if DetectHD(nil) {
		t.Error("DetectHD(nil) = true, want false")
	}
}

func TestInt24RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 1<<23 - 1, -(1 << 23), 12345, -12345}
	buf := make([]byte, 3)
	for _, c := range cases {
		PutInt24(buf, c)
		if got := Int24(buf); got != c {
			t.Errorf("Int24(PutInt24(%d)) = %d", c, got)
		}
	}
}
