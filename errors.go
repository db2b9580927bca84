// errors.go defines public error types for the aptx package.

package aptx

import "github.com/pkg/errors"

// Public error values for construction and I/O operations.
var (
	// ErrBufferTooSmall indicates an output buffer cannot hold even one
	// codeword's worth of decoded or encoded data.
	ErrBufferTooSmall = errors.New("aptx: output buffer too small")

	// ErrInvalidInputSize indicates an input buffer's length is not a
	// multiple of the expected PCM sample stride.
	ErrInvalidInputSize = errors.New("aptx: input size is not a multiple of the sample stride")

	// ErrAllocFailed reports a failed context allocation, mirroring
	// aptx_init's documented contract. No function in this package
	// returns it: NewEncoder and NewDecoder cannot fail.
	ErrAllocFailed = errors.New("aptx: context allocation failed")

	// ErrShortWrite reports that an underlying io.Writer accepted fewer
	// bytes than the encoder produced. Writer.Write and Writer.Flush do
	// not return it: they pass on only the error the underlying writer
	// returns and do not check the byte count it reports.
	ErrShortWrite = errors.New("aptx: short write to underlying writer")
)
