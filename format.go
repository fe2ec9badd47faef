// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"fmt"
	"strings"
)

// Format identifies the container and compression layout of an archive.
type Format int

const (
	// FormatTar is an uncompressed tar archive.
	FormatTar Format = iota

	// FormatTarGzip is a tar archive compressed with gzip (.tar.gz, .tgz).
	FormatTarGzip

	// FormatTarXz is a tar archive compressed with xz.
	FormatTarXz

	// FormatTarBzip2 is a tar archive compressed with bzip2.
	FormatTarBzip2

	// FormatZip is a zip archive.
	FormatZip
)

// String returns the canonical file extension of the format, without leading dot.
func (f Format) String() string {
	switch f {
	case FormatTar:
		return "tar"
	case FormatTarGzip:
		return "tar.gz"
	case FormatTarXz:
		return "tar.xz"
	case FormatTarBzip2:
		return "tar.bz2"
	case FormatZip:
		return "zip"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// isTar returns true if the format is a (possibly compressed) tar archive.
func (f Format) isTar() bool {
	return f != FormatZip
}

// formatSuffixes is the ordered list of suffixes checked by SelectFormat. The
// plain .tar suffix is last, since every compressed tar suffix contains it.
var formatSuffixes = []struct {
	suffix string
	format Format
}{
	{".tar.gz", FormatTarGzip},
	{".tgz", FormatTarGzip},
	{".tar.xz", FormatTarXz},
	{".tar.bz2", FormatTarBzip2},
	{".zip", FormatZip},
	{".tar", FormatTar},
}

// SupportedExtensions returns the file extensions that can be extracted.
func SupportedExtensions() []string {
	return []string{".tar", ".tar.gz", ".tgz", ".tar.xz", ".tar.bz2", ".zip"}
}

// SelectFormat determines the archive [Format] from the suffix of name. The
// comparison is case-insensitive. If no suffix matches, the returned error
// wraps [ErrUnsupportedFormat].
func SelectFormat(name string) (Format, error) {
	lower := strings.ToLower(name)
	for _, fs := range formatSuffixes {
		if strings.HasSuffix(lower, fs.suffix) {
			return fs.format, nil
		}
	}
	return 0, fmt.Errorf("%w. Please use a known extension (%s)", ErrUnsupportedFormat, strings.Join(SupportedExtensions(), ", "))
}
