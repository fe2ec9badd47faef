// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"io"
	"io/fs"
)

// archiveEntry is a single file or directory stored in an archive
type archiveEntry interface {
	// Name is the archive internal path
	Name() string

	// Size is the declared length of the data section
	Size() int64

	// IsDir returns true for directory entries
	IsDir() bool

	// IsRegular returns true for regular file entries
	IsRegular() bool

	// Mode returns the stored permission bits, zero if the archive does not carry any
	Mode() fs.FileMode

	// Open returns the data section of the entry
	Open() (io.ReadCloser, error)
}
