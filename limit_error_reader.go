// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import "io"

// limitErrorReader is a reader that returns ErrMaxInputSizeExceeded if the
// underlying reader provides more than L bytes. If the limit is -1, all data
// from the original reader is read.
type limitErrorReader struct {
	R io.Reader // underlying reader
	L int64     // limit
	N int64     // number of bytes read
}

// Read reads from the underlying reader and fills up p. One byte beyond the
// limit is requested, so that an input of exactly L bytes still ends in io.EOF.
func (l *limitErrorReader) Read(p []byte) (int, error) {
	if l.L < 0 {
		n, err := l.R.Read(p)
		l.N += int64(n)
		return n, err
	}

	if l.N > l.L {
		return 0, ErrMaxInputSizeExceeded
	}

	if rem := l.L - l.N + 1; int64(len(p)) > rem {
		p = p[:rem]
	}

	n, err := l.R.Read(p)
	l.N += int64(n)
	if l.N > l.L {
		return n - int(l.N-l.L), ErrMaxInputSizeExceeded
	}
	return n, err
}

// ReadBytes returns how many bytes have been read from the underlying reader
func (l *limitErrorReader) ReadBytes() int64 {
	return l.N
}

// newLimitErrorReader returns a new limitErrorReader that reads from r
func newLimitErrorReader(r io.Reader, limit int64) *limitErrorReader {
	return &limitErrorReader{R: r, L: limit}
}
