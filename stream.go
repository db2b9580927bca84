// stream.go implements streaming io.Reader and io.Writer wrappers for
// aptX/aptX-HD encoding/decoding.

package aptx

import (
	"io"

	"github.com/pkg/errors"
)

// Streaming API
//
// Reader and Writer adapt Decoder and Encoder to the io.Reader/io.Writer
// interfaces for a continuous stream of raw aptX bytes, handling internal
// buffering so callers can Read/Write at whatever granularity is
// convenient.
//
// # Streaming decode
//
//	r := aptx.NewReader(aptxStream, false)
//	buf := make([]byte, 4096)
//	for {
//	    n, err := r.Read(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    processPCM(buf[:n])
//	}
//
// # Streaming encode
//
//	w := aptx.NewWriter(aptxSink, false)
//	if _, err := w.Write(pcmBytes); err != nil {
//	    log.Fatal(err)
//	}
//	if err := w.Flush(); err != nil {
//	    log.Fatal(err)
//	}

// Reader decodes a continuous stream of aptX/aptX-HD bytes read from an
// underlying io.Reader into PCM bytes.
type Reader struct {
	src     io.Reader
	dec     *Decoder
	in      []byte // undecoded bytes read from src but not yet consumed
	pending []byte // decoded PCM bytes not yet returned to the caller
	eof     bool
}

// NewReader wraps src, decoding its bytes as an aptX (hd=false) or
// aptX-HD (hd=true) stream.
func NewReader(src io.Reader, hd bool) *Reader {
	return &Reader{src: src, dec: NewDecoder(hd)}
}

// Read implements io.Reader, filling p with decoded PCM bytes.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.eof {
			return 0, io.EOF
		}
		if err := r.fill(); err != nil {
			return 0, err
		}
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// fill reads more source bytes and decodes whatever complete codewords
// it can, appending the result to r.pending.
func (r *Reader) fill() error {
	chunk := make([]byte, 4096)
	n, err := r.src.Read(chunk)
	r.in = append(r.in, chunk[:n]...)

	if n > 0 {
		out := make([]byte, (len(r.in)/r.dec.SampleSize()+1)*PCMGroupBytes)
		consumed, written := r.dec.Decode(r.in, out)
		r.in = r.in[consumed:]
		r.pending = append(r.pending, out[:written]...)
	}

	if err == io.EOF {
		r.eof = true
		return nil
	}
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Writer encodes PCM bytes written to it into a continuous stream of
// aptX/aptX-HD bytes written to an underlying io.Writer.
type Writer struct {
	dst io.Writer
	enc *Encoder
	buf []byte // PCM bytes buffered but not yet forming a full group
}

// NewWriter wraps dst, encoding written PCM as an aptX (hd=false) or
// aptX-HD (hd=true) stream.
func NewWriter(dst io.Writer, hd bool) *Writer {
	return &Writer{dst: dst, enc: NewEncoder(hd)}
}

// Write implements io.Writer, encoding as many complete PCM groups of p
// (plus any previously buffered remainder) as possible and writing the
// resulting codewords to the underlying io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	groups := len(w.buf) / PCMGroupBytes
	if groups == 0 {
		return len(p), nil
	}

	in := w.buf[:groups*PCMGroupBytes]
	out := make([]byte, groups*w.enc.SampleSize())
	consumed, written := w.enc.Encode(in, out)

	if _, err := w.dst.Write(out[:written]); err != nil {
		return 0, errors.WithStack(err)
	}

	w.buf = append(w.buf[:0], w.buf[consumed:]...)
	return len(p), nil
}

// Flush drains the encoder's algorithmic latency, writing trailing flush
// codewords to the underlying io.Writer. The encoder is reset and ready
// for a new stream once Flush returns without error.
func (w *Writer) Flush() error {
	for {
		out := make([]byte, 64*w.enc.SampleSize())
		written, done := w.enc.EncodeFinish(out)
		if written > 0 {
			if _, err := w.dst.Write(out[:written]); err != nil {
				return errors.WithStack(err)
			}
		}
		if done {
			return nil
		}
	}
}
