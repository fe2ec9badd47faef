// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import "github.com/pkg/errors"

var (
	// ErrUnsupportedFormat is returned when the archive name does not end with
	// one of the [SupportedExtensions].
	ErrUnsupportedFormat = errors.New("Unsupported archive format") //nolint:stylecheck // user facing message

	// ErrPathTraversal is returned when an entry would be written outside of
	// the destination directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrMaxInputSizeExceeded is returned when the archive is larger than the
	// configured maximum input size.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")

	// ErrMaxExtractionSizeExceeded is returned when the extracted files exceed
	// the configured maximum extraction size.
	ErrMaxExtractionSizeExceeded = errors.New("maximum extraction size exceeded")
)
