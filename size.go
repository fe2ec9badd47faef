// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package untar

import "fmt"

const (
	kilobyte = 1 << 10
	megabyte = 1 << 20
	gigabyte = 1 << 30
)

// FormatSize renders size as a human readable string with binary units and one
// decimal, e.g. "512 B", "1.5 KB" or "1.0 GB".
func FormatSize(size int64) string {
	switch {
	case size < kilobyte:
		return fmt.Sprintf("%d B", size)
	case size < megabyte:
		return fmt.Sprintf("%.1f KB", float64(size)/kilobyte)
	case size < gigabyte:
		return fmt.Sprintf("%.1f MB", float64(size)/megabyte)
	default:
		return fmt.Sprintf("%.1f GB", float64(size)/gigabyte)
	}
}
