// Package aptx implements the aptX and aptX-HD audio codecs in pure Go.
//
// aptX is a fixed-point, bit-exact stereo subband codec used by Bluetooth
// audio devices. It splits each channel into 4 frequency subbands with a
// two-stage QMF filter bank, then differentially quantizes each subband
// with a backward-adaptive predictor — the encoder and decoder derive
// identical dither and predictor state from the bitstream alone, so no
// side information beyond the quantized codewords is transmitted.
//
// Standard aptX compresses each 24-byte group of 24-bit stereo PCM (2
// channels * 4 samples per channel * 3 bytes) into a 4-byte codeword: 4
// bits per sample, a fixed 4:1 ratio relative to 16-bit PCM. aptX-HD
// instead widens each subband's quantizer and produces a 6-byte codeword
// per group.
//
// # Latency
//
// The QMF analysis/synthesis trees introduce 90 samples of algorithmic
// delay per channel. Encoder.EncodeFinish and Decoder.Decode's leading
// skip account for this; see their doc comments.
//
// # Streaming
//
// NewReader and NewWriter adapt Decoder and Encoder to the io.Reader and
// io.Writer interfaces for continuous streams of raw aptX bytes.
//
// # Resynchronization
//
// Decoder.DecodeSync decodes a continuous aptX byte stream that may have
// been truncated or corrupted mid-packet (for example, a Bluetooth link
// that dropped a byte), using the codec's parity-based 1-in-8 sync
// schedule to detect and recover from misalignment automatically.
package aptx
