// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build unix

package untar

import (
	"io/fs"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// canRestorePermissions reports whether stored modes are applied on this platform.
const canRestorePermissions = true

// applyMode sets the permission and special bits of mode on path.
func applyMode(path string, mode fs.FileMode) error {
	if err := unix.Chmod(path, unixMode(mode)); err != nil {
		return errors.Wrapf(err, "cannot set permissions on %s", path)
	}
	return nil
}

// unixMode converts the portable mode bits of m into the raw st_mode bits
// expected by chmod(2).
func unixMode(m fs.FileMode) uint32 {
	mode := uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		mode |= unix.S_ISUID
	}
	if m&fs.ModeSetgid != 0 {
		mode |= unix.S_ISGID
	}
	if m&fs.ModeSticky != 0 {
		mode |= unix.S_ISVTX
	}
	return mode
}
