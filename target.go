// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/pkg/errors"
)

// defaultCreateFileMode is the mode for newly created files before the mode
// stored in the archive is applied (respecting umask).
const defaultCreateFileMode fs.FileMode = 0666

// securePath returns the location of the archive entry name below dst.
//
// Entry names use forward slashes. A leading slash is dropped, so absolute names
// are rooted in dst. If the cleaned name points outside of dst, an error wrapping
// [ErrPathTraversal] is returned. Symlinks that already exist below dst are
// resolved without leaving dst.
func securePath(dst string, name string) (string, error) {
	// check if a name is provided
	if len(name) == 0 {
		return "", errors.New("empty entry name")
	}

	// adjust path to be os specific
	parts := strings.Split(name, "/")
	rel := filepath.Join(parts...)
	if len(rel) == 0 {
		rel = "."
	}

	// check that the joined path stays local to dst
	r, err := filepath.Rel(dst, filepath.Join(dst, rel))
	if err != nil {
		return "", errors.Wrapf(err, "cannot resolve %s", name)
	}
	if !filepath.IsLocal(r) {
		return "", errors.Wrapf(ErrPathTraversal, "entry %s", name)
	}

	path, err := securejoin.SecureJoin(dst, rel)
	if err != nil {
		return "", errors.Wrapf(err, "cannot join %s", name)
	}
	return path, nil
}

// createDir creates the directory path and all missing parents. Existing
// directories are left untouched.
func createDir(path string, mode fs.FileMode) error {
	if err := os.MkdirAll(path, mode.Perm()); err != nil {
		return errors.Wrapf(err, "cannot create directory: %s", path)
	}
	return nil
}

// ensureParent creates the parent directory of path if it does not exist yet.
func ensureParent(path string, mode fs.FileMode) error {
	parent := filepath.Dir(path)
	if _, err := os.Stat(parent); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "cannot stat directory: %s", parent)
	}
	return createDir(parent, mode)
}

// createFile creates or truncates the file at path and copies src into it. At
// most maxSize bytes are written; if maxSize < 0, the file size is not limited.
// The number of bytes written is returned, also on error.
func createFile(path string, src io.Reader, maxSize int64) (int64, error) {
	dstFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultCreateFileMode)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot create file: %s", path)
	}

	n, err := io.Copy(limitWriter(dstFile, maxSize), src)
	if err != nil {
		dstFile.Close()
		return n, errors.Wrapf(err, "cannot write file: %s", path)
	}

	if err := dstFile.Close(); err != nil {
		return n, errors.Wrapf(err, "cannot write file: %s", path)
	}
	return n, nil
}

// hasPermissions returns true if mode carries permission or special bits.
func hasPermissions(mode fs.FileMode) bool {
	return mode&(fs.ModePerm|fs.ModeSetuid|fs.ModeSetgid|fs.ModeSticky) != 0
}
