// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"archive/tar"
	"context"
	"io"
	"io/fs"

	"github.com/pkg/errors"
)

// unpackTar decodes src according to f and extracts the contained tar stream to dst.
func unpackTar(ctx context.Context, dst string, src io.Reader, f Format, cfg *Config, s *Summary) error {
	// limit and count the raw archive bytes
	limitedReader := newLimitErrorReader(src, cfg.MaxInputSize())
	defer func() { s.InputSize = limitedReader.ReadBytes() }()

	stream, err := newDecompressor(f, limitedReader)
	if err != nil {
		return err
	}
	defer func() {
		if closer, ok := stream.(io.Closer); ok {
			closer.Close()
		}
	}()

	return processTar(ctx, dst, stream, cfg, s)
}

// processTar walks the tar entries of src in stored order and extracts them to dst.
func processTar(ctx context.Context, dst string, src io.Reader, cfg *Config, s *Summary) error {
	e := &extraction{ctx: ctx, dst: dst, cfg: cfg, summary: s}
	walker := &tarWalker{tr: tar.NewReader(src)}

	for {
		entry, err := walker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "cannot read tar entry")
		}
		s.Entries++

		// git archive and friends store a pax global header as first entry
		if entry.hdr.Typeflag == tar.TypeXGlobalHeader {
			cfg.Logger().Debug("skipping pax global header", "name", entry.Name())
			s.SkippedEntries++
			continue
		}

		if err := e.extractEntry(s.Entries, entry, true); err != nil {
			return err
		}
	}

	e.progressf("Total files: %d", s.Entries)
	return nil
}

// tarWalker is a sequential cursor over a tar stream
type tarWalker struct {
	tr *tar.Reader
}

// Next returns the next entry in the tar archive, or io.EOF at the end of the archive.
func (t *tarWalker) Next() (*tarEntry, error) {
	hdr, err := t.tr.Next()
	if err != nil {
		return nil, err
	}
	return &tarEntry{hdr, t.tr}, nil
}

// tarEntry is an entry in a tar archive
type tarEntry struct {
	hdr *tar.Header
	tr  *tar.Reader
}

// Name returns the name of the entry
func (t *tarEntry) Name() string {
	return t.hdr.Name
}

// Size returns the size of the entry
func (t *tarEntry) Size() int64 {
	return t.hdr.Size
}

// Mode returns the mode of the entry
func (t *tarEntry) Mode() fs.FileMode {
	return t.hdr.FileInfo().Mode()
}

// IsRegular returns true if the entry is a regular file
func (t *tarEntry) IsRegular() bool {
	return t.hdr.Typeflag == tar.TypeReg || t.hdr.Typeflag == tar.TypeRegA //nolint:staticcheck // written by old archivers
}

// IsDir returns true if the entry is a directory
func (t *tarEntry) IsDir() bool {
	return t.hdr.Typeflag == tar.TypeDir
}

// Open returns a reader for the entry. The data is only valid until the next
// call to Next on the walker.
func (t *tarEntry) Open() (io.ReadCloser, error) {
	return &noopReaderCloser{t.tr}, nil
}
