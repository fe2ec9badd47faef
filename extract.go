// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// extraction holds the state of a single run, shared by the tar and zip walkers.
type extraction struct {
	ctx     context.Context
	dst     string
	cfg     *Config
	summary *Summary
}

// progressf writes a single progress line.
func (e *extraction) progressf(format string, args ...interface{}) {
	fmt.Fprintf(e.cfg.Progress(), format+"\n", args...)
}

// extractEntry materializes entry, the index-th entry of the archive, below the
// destination. If restoreMode is set, the permissions stored in the entry are
// applied after the file has been written. A failure to do so is logged and
// does not abort the extraction.
func (e *extraction) extractEntry(index int64, entry archiveEntry, restoreMode bool) error {
	// check if context is canceled
	if err := e.ctx.Err(); err != nil {
		return errors.Wrap(err, "context error")
	}

	if !entry.IsDir() && !entry.IsRegular() {
		e.cfg.Logger().Warn("skipping entry that is neither a file nor a directory", "name", entry.Name())
		e.summary.SkippedEntries++
		return nil
	}

	path, err := securePath(e.dst, entry.Name())
	if err != nil {
		return err
	}

	dirMode := e.cfg.CustomCreateDirMode()
	if err := ensureParent(path, dirMode); err != nil {
		return err
	}

	if entry.IsDir() {
		e.progressf("[%d] %s", index, entry.Name())
		if err := createDir(path, dirMode); err != nil {
			return err
		}
		e.summary.ExtractedDirs++
		return nil
	}

	// reject entries whose declared size already exceeds the budget
	if err := e.cfg.CheckExtractionSize(e.summary.ExtractionSize + entry.Size()); err != nil {
		return errors.Wrapf(err, "cannot extract %s", entry.Name())
	}

	e.progressf("[%d] %s (%s)", index, entry.Name(), FormatSize(entry.Size()))

	rc, err := entry.Open()
	if err != nil {
		return errors.Wrapf(err, "cannot open entry %s", entry.Name())
	}
	defer rc.Close()

	n, err := createFile(path, rc, e.remainingExtractionSize())
	e.summary.ExtractionSize += n
	if err != nil {
		return err
	}
	e.summary.ExtractedFiles++

	if restoreMode {
		e.restoreMode(path, entry)
	}
	return nil
}

// remainingExtractionSize returns how many bytes may still be written, or -1
// if the extraction size is not limited.
func (e *extraction) remainingExtractionSize() int64 {
	if e.cfg.MaxExtractionSize() < 0 {
		return -1
	}
	if rem := e.cfg.MaxExtractionSize() - e.summary.ExtractionSize; rem > 0 {
		return rem
	}
	return 0
}

// restoreMode applies the mode stored in entry to path.
func (e *extraction) restoreMode(path string, entry archiveEntry) {
	if e.cfg.DropFileAttributes() || !canRestorePermissions {
		return
	}
	mode := entry.Mode()
	if !hasPermissions(mode) {
		return
	}
	if err := applyMode(path, mode); err != nil {
		e.cfg.Logger().Warn("could not set permissions", "path", path, "mode", mode, "error", err.Error())
		e.summary.PermissionErrors++
	}
}
