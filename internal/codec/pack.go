package codec

import "github.com/openaptx/goaptx/internal/fixed"

// packCodeword packs one standard-aptX channel's four quantized subband
// samples plus its parity bit into a 16-bit codeword.
func packCodeword(channel *Channel) uint16 {
	parity := quantizedParity(channel)
	return uint16((((channel.Quantize[3].QuantizedSample & 0x06) | parity) << 13) |
		((channel.Quantize[2].QuantizedSample & 0x03) << 11) |
		((channel.Quantize[1].QuantizedSample & 0x0F) << 7) |
		((channel.Quantize[0].QuantizedSample & 0x7F) << 0))
}

// packCodewordHD packs one aptX-HD channel's four quantized subband
// samples plus its parity bit into a 24-bit codeword (returned in the low
// 24 bits of a uint32).
func packCodewordHD(channel *Channel) uint32 {
	parity := quantizedParity(channel)
	return uint32((((channel.Quantize[3].QuantizedSample & 0x01E) | parity) << 19) |
		((channel.Quantize[2].QuantizedSample & 0x00F) << 15) |
		((channel.Quantize[1].QuantizedSample & 0x03F) << 9) |
		((channel.Quantize[0].QuantizedSample & 0x1FF) << 0))
}

// unpackCodeword unpacks a standard-aptX 16-bit codeword into the
// channel's four quantized subband samples, then replaces subband 3's
// least significant bit (which carries the transmitted parity bit) with
// the parity of the dither parity bit and all four unpacked fields.
func unpackCodeword(channel *Channel, codeword uint16) {
	channel.Quantize[0].QuantizedSample = fixed.SignExtend(int32(codeword>>0), 7)
	channel.Quantize[1].QuantizedSample = fixed.SignExtend(int32(codeword>>7), 4)
	channel.Quantize[2].QuantizedSample = fixed.SignExtend(int32(codeword>>11), 2)
	channel.Quantize[3].QuantizedSample = fixed.SignExtend(int32(codeword>>13), 3)
	channel.Quantize[3].QuantizedSample = (channel.Quantize[3].QuantizedSample &^ 1) | quantizedParity(channel)
}

// unpackCodewordHD unpacks an aptX-HD 24-bit codeword into the channel's
// four quantized subband samples, mirroring unpackCodeword at wider
// subband widths.
func unpackCodewordHD(channel *Channel, codeword uint32) {
	channel.Quantize[0].QuantizedSample = fixed.SignExtend(int32(codeword>>0), 9)
	channel.Quantize[1].QuantizedSample = fixed.SignExtend(int32(codeword>>9), 6)
	channel.Quantize[2].QuantizedSample = fixed.SignExtend(int32(codeword>>15), 4)
	channel.Quantize[3].QuantizedSample = fixed.SignExtend(int32(codeword>>19), 5)
	channel.Quantize[3].QuantizedSample = (channel.Quantize[3].QuantizedSample &^ 1) | quantizedParity(channel)
}
