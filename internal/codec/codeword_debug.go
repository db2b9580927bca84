package codec

import (
	"bytes"

	"github.com/icza/bitio"
)

// packCodewordBitio re-packs a standard-aptX channel's codeword using an
// independent bit-level writer, as a cross-check of packCodeword's
// hand-rolled shift-and-mask packing. Not used on the hot path: it
// allocates and is exercised only from tests.
func packCodewordBitio(channel *Channel) (uint16, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	parity := quantizedParity(channel)
	if err := w.WriteBits(uint64((channel.Quantize[3].QuantizedSample&0x06)|parity), 3); err != nil {
		return 0, err
	}
	if err := w.WriteBits(uint64(channel.Quantize[2].QuantizedSample&0x03), 2); err != nil {
		return 0, err
	}
	if err := w.WriteBits(uint64(channel.Quantize[1].QuantizedSample&0x0F), 4); err != nil {
		return 0, err
	}
	if err := w.WriteBits(uint64(channel.Quantize[0].QuantizedSample&0x7F), 7); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	b := buf.Bytes()
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// unpackCodewordBitio unpacks a standard-aptX 16-bit codeword using an
// independent bit-level reader, mirroring packCodewordBitio.
func unpackCodewordBitio(codeword uint16) (subband0, subband1, subband2, subband3AndParity uint64, err error) {
	r := bitio.NewReader(bytes.NewReader([]byte{byte(codeword >> 8), byte(codeword)}))

	subband3AndParity, err = r.ReadBits(3)
	if err != nil {
		return
	}
	subband2, err = r.ReadBits(2)
	if err != nil {
		return
	}
	subband1, err = r.ReadBits(4)
	if err != nil {
		return
	}
	subband0, err = r.ReadBits(7)
	return
}
