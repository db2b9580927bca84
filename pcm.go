// pcm.go implements 24-bit little-endian PCM <-> int32 conversion helpers.

package aptx

// PutInt24 writes sample (a 24-bit signed value held in the low bits of
// an int32) as 3 little-endian bytes to buf.
func PutInt24(buf []byte, sample int32) {
	v := uint32(sample)
	buf[0] = byte(v >> 0)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
}

// Int24 reads 3 little-endian bytes from buf as a sign-extended 24-bit
// PCM sample.
func Int24(buf []byte) int32 {
	v := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(int8(buf[2]))<<16
	return int32(v)
}

// EncodeInt32PCM packs 24-bit-range int32 interleaved stereo samples
// (left, right, left, right, ...) into the 3-byte-per-sample little-
// endian wire format Encoder.Encode expects.
func EncodeInt32PCM(samples []int32) []byte {
	buf := make([]byte, len(samples)*PCMSampleBytes)
	for i, s := range samples {
		PutInt24(buf[i*PCMSampleBytes:], s)
	}
	return buf
}

// DecodeInt32PCM unpacks the 3-byte-per-sample little-endian wire format
// Decoder.Decode produces into 24-bit-range int32 interleaved stereo
// samples.
func DecodeInt32PCM(buf []byte) []int32 {
	samples := make([]int32, len(buf)/PCMSampleBytes)
	for i := range samples {
		samples[i] = Int24(buf[i*PCMSampleBytes:])
	}
	return samples
}
