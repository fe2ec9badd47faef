// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config holds all options of an extraction. It is created with [NewConfig]
// and adjusted with the WithXxx options.
//
// The default configuration creates the destination directory, writes no
// progress output, logs to nowhere and does not limit input or output sizes.
type Config struct {
	// createDestination creates the destination directory if it does not exist
	createDestination bool

	// customCreateDirMode is the file mode for created directories (respecting umask)
	customCreateDirMode fs.FileMode

	// dropFileAttributes skips the restoration of permissions stored in the archive
	dropFileAttributes bool

	// logger for warnings and debug output
	logger logger

	// maxExtractionSize is the maximum number of bytes written to all files.
	// Set value to -1 to disable the check.
	maxExtractionSize int64

	// maxInputSize is the maximum size of the archive.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// progress receives the human readable progress lines
	progress io.Writer

	// summaryHook consumes the summary after the extraction finished
	summaryHook SummaryHook
}

// CreateDestination returns true if the destination directory should be
// created if it does not exist.
func (c *Config) CreateDestination() bool {
	return c.createDestination
}

// CustomCreateDirMode returns the file mode for created directories (respecting umask).
func (c *Config) CustomCreateDirMode() fs.FileMode {
	return c.customCreateDirMode
}

// DropFileAttributes returns true if permissions stored in the archive should be ignored.
func (c *Config) DropFileAttributes() bool {
	return c.dropFileAttributes
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxExtractionSize returns the maximum number of bytes written to all files.
func (c *Config) MaxExtractionSize() int64 {
	return c.maxExtractionSize
}

// MaxInputSize returns the maximum size of the archive.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// Progress returns the writer for progress lines.
func (c *Config) Progress() io.Writer {
	return c.progress
}

// SummaryHook returns the summary hook.
func (c *Config) SummaryHook() SummaryHook {
	if c.summaryHook == nil {
		return defaultSummaryHook
	}
	return c.summaryHook
}

// CheckExtractionSize checks if size exceeds the configured maximum. If the maximum
// is exceeded, [ErrMaxExtractionSizeExceeded] is returned.
func (c *Config) CheckExtractionSize(size int64) error {
	if c.MaxExtractionSize() == -1 {
		return nil
	}
	if size > c.MaxExtractionSize() {
		return ErrMaxExtractionSizeExceeded
	}
	return nil
}

// CheckInputSize checks if size exceeds the configured maximum. If the maximum
// is exceeded, [ErrMaxInputSizeExceeded] is returned.
func (c *Config) CheckInputSize(size int64) error {
	if c.MaxInputSize() == -1 {
		return nil
	}
	if size > c.MaxInputSize() {
		return ErrMaxInputSizeExceeded
	}
	return nil
}

const (
	defaultCreateDestination   = true  // behave like mkdir -p for the destination
	defaultCustomCreateDirMode = 0755  // rwxr-xr-x
	defaultDropFileAttributes  = false // restore permissions from tar headers
	defaultMaxExtractionSize   = -1    // unlimited
	defaultMaxInputSize        = -1    // unlimited
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	// no operation summary hook
	defaultSummaryHook = func(ctx context.Context, s *Summary) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {
	config := &Config{
		createDestination:   defaultCreateDestination,
		customCreateDirMode: defaultCustomCreateDirMode,
		dropFileAttributes:  defaultDropFileAttributes,
		logger:              defaultLogger,
		maxExtractionSize:   defaultMaxExtractionSize,
		maxInputSize:        defaultMaxInputSize,
		progress:            io.Discard,
		summaryHook:         defaultSummaryHook,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithCreateDestination options pattern function to create the
// destination directory if it does not exist.
func WithCreateDestination(create bool) ConfigOption {
	return func(c *Config) {
		c.createDestination = create
	}
}

// WithCustomCreateDirMode options pattern function to set the file mode
// for created directories. (respecting umask)
func WithCustomCreateDirMode(mode fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.customCreateDirMode = mode
	}
}

// WithDropFileAttributes options pattern function to skip the restoration
// of permissions stored in tar headers.
func WithDropFileAttributes(drop bool) ConfigOption {
	return func(c *Config) {
		c.dropFileAttributes = drop
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMaxExtractionSize options pattern function to set the maximum number of
// bytes written to all extracted files. (-1 to disable check)
func WithMaxExtractionSize(maxExtractionSize int64) ConfigOption {
	return func(c *Config) {
		c.maxExtractionSize = maxExtractionSize
	}
}

// WithMaxInputSize options pattern function to set the maximum archive size. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithProgress options pattern function to set the writer that receives
// progress lines. A nil writer discards them.
func WithProgress(w io.Writer) ConfigOption {
	return func(c *Config) {
		if w == nil {
			w = io.Discard
		}
		c.progress = w
	}
}

// WithSummaryHook options pattern function to set a [SummaryHook], which is
// called after extraction.
func WithSummaryHook(hook SummaryHook) ConfigOption {
	return func(c *Config) {
		c.summaryHook = hook
	}
}
