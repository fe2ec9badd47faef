// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package untar

import "io/fs"

// canRestorePermissions reports whether stored modes are applied on this platform.
// Only POSIX systems carry the permission model of tar headers.
const canRestorePermissions = false

// applyMode is a no-op on this platform.
func applyMode(_ string, _ fs.FileMode) error {
	return nil
}
