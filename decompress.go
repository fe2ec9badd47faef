// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"bufio"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// decompressionFunc wraps src in a streaming decoder.
type decompressionFunc func(io.Reader) (io.Reader, error)

// decompressors maps every tar based format to its decoder.
var decompressors = map[Format]decompressionFunc{
	FormatTar:      passThroughStream,
	FormatTarGzip:  decompressGZipStream,
	FormatTarXz:    decompressXzStream,
	FormatTarBzip2: decompressBzip2Stream,
}

// newDecompressor returns the decoded byte stream of src for format f. The
// returned reader may implement io.Closer, in which case the caller closes it.
func newDecompressor(f Format, src io.Reader) (io.Reader, error) {
	decFunc, ok := decompressors[f]
	if !ok {
		return nil, errors.Errorf("no decompressor for %s", f)
	}
	r, err := decFunc(src)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot start %s decompression", f)
	}
	return r, nil
}

// passThroughStream buffers src without decoding it.
func passThroughStream(src io.Reader) (io.Reader, error) {
	return bufio.NewReader(src), nil
}

// decompressGZipStream returns an io.Reader that decompresses src with gzip algorithm.
func decompressGZipStream(src io.Reader) (io.Reader, error) {
	return pgzip.NewReader(src)
}

// decompressXzStream returns an io.Reader that decompresses src with xz algorithm.
func decompressXzStream(src io.Reader) (io.Reader, error) {
	return xz.NewReader(src)
}

// decompressBzip2Stream returns an io.Reader that decompresses src with bzip2 algorithm.
func decompressBzip2Stream(src io.Reader) (io.Reader, error) {
	return bzip2.NewReader(src, nil)
}
