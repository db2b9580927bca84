// Package qmf implements the two-stage quadrature mirror filter bank used
// to split full-band PCM into four subbands (analysis) and to rejoin four
// subbands back into full-band PCM (synthesis).
package qmf

import (
	"github.com/openaptx/goaptx/internal/fixed"
	"github.com/openaptx/goaptx/internal/tables"
)

// Signal is a circular buffer holding FilterTaps history samples for one
// convolution stage, doubled so a contiguous FilterTaps-length window can
// always be read starting at pos without wraparound.
type Signal struct {
	buffer [2 * tables.FilterTaps]int32
	pos    uint8
}

// Push inserts sample into the ring buffer, overwriting the oldest entry.
func (s *Signal) Push(sample int32) {
	s.buffer[s.pos] = sample
	s.buffer[s.pos+tables.FilterTaps] = sample
	s.pos = (s.pos + 1) & (tables.FilterTaps - 1)
}

// Convolve computes the dot product of the buffered history with coeffs,
// reducing to 24 bits with a rounded right shift.
func (s *Signal) Convolve(coeffs *[tables.FilterTaps]int32, shift uint) int32 {
	sig := s.buffer[s.pos : s.pos+tables.FilterTaps]
	var e int64
	for i := 0; i < tables.FilterTaps; i++ {
		e += int64(sig[i]) * int64(coeffs[i])
	}
	return fixed.Rshift64Clip24(e, shift)
}
