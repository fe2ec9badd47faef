// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Unpack extracts the archive at archivePath into dst. The archive format is
// selected from the file extension with [SelectFormat].
//
// Entries are processed in stored order; the first error aborts the extraction
// and files written so far are left in place. If cfg is nil, the default
// configuration is used. The [SummaryHook] of cfg is called once when Unpack
// returns.
func Unpack(ctx context.Context, archivePath string, dst string, cfg *Config) (err error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	// prepare summary and emit it on return
	s := &Summary{}
	defer func() {
		s.LastError = err
		cfg.SummaryHook()(ctx, s)
	}()
	defer captureExtractionDuration(s, time.Now())

	// open archive
	f, err := os.Open(archivePath)
	if err != nil {
		return errors.Wrapf(err, "cannot open file: %s", archivePath)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, "cannot open file: %s", archivePath)
	}
	if stat.IsDir() {
		return errors.Errorf("cannot open file: %s is a directory", archivePath)
	}

	e := &extraction{ctx: ctx, dst: dst, cfg: cfg, summary: s}
	e.progressf("Archive: %s", archivePath)
	e.progressf("Size: %s", FormatSize(stat.Size()))

	format, err := SelectFormat(archivePath)
	if err != nil {
		return errors.WithStack(err)
	}
	s.Format = format.String()
	cfg.Logger().Info("extracting archive", "archive", archivePath, "format", s.Format, "destination", dst)

	if err := prepareDestination(dst, cfg); err != nil {
		return err
	}

	if !format.isTar() {
		return unpackZip(ctx, dst, f, stat.Size(), cfg, s)
	}
	return unpackTar(ctx, dst, f, format, cfg, s)
}

// prepareDestination ensures that dst exists as a directory. It is created with
// all missing parents if the configuration allows it; existing content is kept.
func prepareDestination(dst string, cfg *Config) error {
	if cfg.CreateDestination() {
		if err := os.MkdirAll(dst, cfg.CustomCreateDirMode().Perm()); err != nil {
			return errors.Wrapf(err, "cannot create directory: %s", dst)
		}
		return nil
	}

	stat, err := os.Stat(dst)
	if os.IsNotExist(err) {
		return errors.Errorf("destination does not exist: %s", dst)
	}
	if err != nil {
		return errors.Wrapf(err, "cannot access destination: %s", dst)
	}
	if !stat.IsDir() {
		return errors.Errorf("destination is not a directory: %s", dst)
	}
	return nil
}
