// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import "io"

// noopReaderCloser wraps a reader whose lifetime is owned elsewhere, e.g. the
// data section of the current tar entry.
type noopReaderCloser struct {
	io.Reader
}

// Close is a no-op.
func (n *noopReaderCloser) Close() error {
	return nil
}
