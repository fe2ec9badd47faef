// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import (
	"context"
	"encoding/json"
	"time"
)

// Summary holds the counters of a single extraction run.
type Summary struct {
	// Entries is the number of archive entries processed
	Entries int64 `json:"entries"`

	// ExtractedDirs is the number of extracted directories
	ExtractedDirs int64 `json:"extracted_dirs"`

	// ExtractedFiles is the number of extracted files
	ExtractedFiles int64 `json:"extracted_files"`

	// ExtractionDuration is the time it took to extract the archive
	ExtractionDuration time.Duration `json:"extraction_duration"`

	// ExtractionSize is the number of bytes written to extracted files
	ExtractionSize int64 `json:"extraction_size"`

	// Format is the detected archive format
	Format string `json:"format"`

	// InputSize is the number of archive bytes consumed
	InputSize int64 `json:"input_size"`

	// LastError is the error that aborted the extraction, if any
	LastError error `json:"last_error"`

	// PermissionErrors is the number of entries whose mode could not be restored
	PermissionErrors int64 `json:"permission_errors"`

	// SkippedEntries is the number of entries that are neither files nor directories
	SkippedEntries int64 `json:"skipped_entries"`
}

// String returns a JSON representation of [Summary].
func (s Summary) String() string {
	b, _ := json.Marshal(s)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (s Summary) MarshalJSON() ([]byte, error) {
	var lastError string
	if s.LastError != nil {
		lastError = s.LastError.Error()
	}

	type Alias Summary
	return json.Marshal(&struct {
		LastError string `json:"last_error"`
		*Alias
	}{
		LastError: lastError,
		Alias:     (*Alias)(&s),
	})
}

// SummaryHook is called exactly once per [Unpack] call with the final [Summary],
// regardless of whether the extraction succeeded.
type SummaryHook func(context.Context, *Summary)

// captureExtractionDuration sets the extraction duration on s. Meant to be deferred.
func captureExtractionDuration(s *Summary, start time.Time) {
	s.ExtractionDuration = time.Since(start)
}
