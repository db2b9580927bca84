// format.go defines wire-format constants for the aptX and aptX-HD byte streams.

package aptx

// PCMSampleBytes is the width of one 24-bit PCM sample as stored on the
// wire for Encode/Decode: 3 little-endian bytes, sign-extended from bit 23.
const PCMSampleBytes = 3

// SampleSize returns the number of codeword bytes produced per 4-sample-
// per-channel group: 4 for standard aptX, 6 for aptX-HD.
func SampleSize(hd bool) int {
	if hd {
		return 6
	}
	return 4
}

// PCMGroupBytes is the number of raw PCM input bytes consumed per
// 4-sample-per-channel group: 2 channels * 4 samples * 3 bytes.
const PCMGroupBytes = 2 * 4 * PCMSampleBytes

// StreamSignature and StreamSignatureHD are the first codeword a freshly
// reset Encoder emits (aptX and aptX-HD respectively) when the stream
// opens with silence, a consequence of the codec's deterministic initial
// state. They are not framing and Decoder does not look for them, but
// DetectHD recognizes the HD one when present at the start of a buffer.
var (
	StreamSignature   = [4]byte{0x4b, 0xbf, 0x4b, 0xbf}
	StreamSignatureHD = [6]byte{0x73, 0xbe, 0xff, 0x73, 0xbe, 0xff}
)

// DetectHD reports whether buf begins with the aptX-HD stream signature,
// falling back to false (standard aptX) for the standard signature or any
// unrecognized prefix.
func DetectHD(buf []byte) bool {
	if len(buf) < len(StreamSignatureHD) {
		return false
	}
	for i, b := range StreamSignatureHD {
		if buf[i] != b {
			return false
		}
	}
	return true
}
