// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import "io"

// limitErrorWriter is a wrapper around an io.Writer that returns
// ErrMaxExtractionSizeExceeded when the limit is reached.
type limitErrorWriter struct {
	W io.Writer // underlying writer
	L int64     // limit
	N int64     // number of bytes written
}

// Write writes up to len(p) bytes from p to the underlying writer. If p does not
// fit into the remaining budget, the part that fits is written and
// ErrMaxExtractionSizeExceeded is returned.
func (l *limitErrorWriter) Write(p []byte) (n int, err error) {
	if l.N >= l.L && len(p) > 0 {
		return 0, ErrMaxExtractionSizeExceeded
	}

	if int64(len(p)) > l.L-l.N {
		n, err = l.W.Write(p[:l.L-l.N])
		if err == nil {
			err = ErrMaxExtractionSizeExceeded
		}
		l.N += int64(n)
		return n, err
	}

	n, err = l.W.Write(p)
	l.N += int64(n)
	return n, err
}

// newLimitErrorWriter returns a new limitErrorWriter that wraps the given writer
// and limit.
func newLimitErrorWriter(w io.Writer, l int64) *limitErrorWriter {
	return &limitErrorWriter{W: w, L: l}
}

// limitWriter returns w unchanged if maxSize is negative, otherwise a writer
// that accepts at most maxSize bytes.
func limitWriter(w io.Writer, maxSize int64) io.Writer {
	if maxSize < 0 {
		return w
	}
	return newLimitErrorWriter(w, maxSize)
}
