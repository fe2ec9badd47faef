// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"context"
	"io"
	"io/fs"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
)

// unpackZip extracts the zip archive src of the given size to dst. Zip needs
// random access to the central directory, so src is read through io.ReaderAt.
func unpackZip(ctx context.Context, dst string, src io.ReaderAt, size int64, cfg *Config, s *Summary) error {
	s.InputSize = size
	if err := cfg.CheckInputSize(size); err != nil {
		return errors.Wrap(err, "cannot unpack zip")
	}

	reader, err := zip.NewReader(src, size)
	if err != nil {
		return errors.Wrap(err, "cannot create zip reader")
	}
	return processZip(ctx, dst, reader, cfg, s)
}

// processZip extracts the entries of zr to dst, addressed by their index in
// the central directory. Permissions of zip entries are not restored.
func processZip(ctx context.Context, dst string, zr *zip.Reader, cfg *Config, s *Summary) error {
	e := &extraction{ctx: ctx, dst: dst, cfg: cfg, summary: s}

	total := len(zr.File)
	e.progressf("Total files: %d", total)

	for i := 0; i < total; i++ {
		s.Entries++
		if err := e.extractEntry(int64(i+1), &zipEntry{zr.File[i]}, false); err != nil {
			return err
		}
	}

	return nil
}

// zipEntry is an entry in a zip archive
type zipEntry struct {
	zf *zip.File
}

// Name returns the name of the entry
func (z *zipEntry) Name() string {
	return z.zf.FileHeader.Name
}

// Size returns the uncompressed size of the entry
func (z *zipEntry) Size() int64 {
	return int64(z.zf.FileHeader.UncompressedSize64)
}

// Mode returns the mode of the entry
func (z *zipEntry) Mode() fs.FileMode {
	return z.zf.FileHeader.Mode()
}

// IsRegular returns true if the entry is a regular file
func (z *zipEntry) IsRegular() bool {
	return !z.IsDir() && z.zf.FileHeader.Mode().Type() == 0
}

// IsDir returns true if the entry is a directory
func (z *zipEntry) IsDir() bool {
	return strings.HasSuffix(z.zf.FileHeader.Name, "/") || z.zf.FileHeader.Mode().IsDir()
}

// Open returns a reader for the entry
func (z *zipEntry) Open() (io.ReadCloser, error) {
	return z.zf.Open()
}
