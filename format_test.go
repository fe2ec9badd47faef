package untar_test

import (
	"testing"

	"github.com/hashicorp/go-untar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  untar.Format
	}{
		{name: "plain tar", input: "archive.tar", want: untar.FormatTar},
		{name: "tar.gz", input: "archive.tar.gz", want: untar.FormatTarGzip},
		{name: "tgz", input: "archive.tgz", want: untar.FormatTarGzip},
		{name: "tar.xz", input: "archive.tar.xz", want: untar.FormatTarXz},
		{name: "tar.bz2", input: "archive.tar.bz2", want: untar.FormatTarBzip2},
		{name: "zip", input: "archive.zip", want: untar.FormatZip},
		{name: "upper case", input: "ARCHIVE.TAR.GZ", want: untar.FormatTarGzip},
		{name: "mixed case", input: "archive.ZiP", want: untar.FormatZip},
		{name: "with directories", input: "/tmp/some.dir/archive.tar.bz2", want: untar.FormatTarBzip2},
		{name: "tar in the middle", input: "backup.tar.2024.zip", want: untar.FormatZip},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := untar.SelectFormat(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelectFormatUnsupported(t *testing.T) {
	for _, input := range []string{"test.rar", "test.gz", "test.xz", "test.bz2", "test.7z", "test", "", "test.tar.zst", "tar"} {
		t.Run(input, func(t *testing.T) {
			_, err := untar.SelectFormat(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, untar.ErrUnsupportedFormat)
			assert.Contains(t, err.Error(), "Unsupported archive format")
			assert.Contains(t, err.Error(), ".tar.bz2")
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format untar.Format
		want   string
	}{
		{untar.FormatTar, "tar"},
		{untar.FormatTarGzip, "tar.gz"},
		{untar.FormatTarXz, "tar.xz"},
		{untar.FormatTarBzip2, "tar.bz2"},
		{untar.FormatZip, "zip"},
		{untar.Format(42), "Format(42)"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.format.String())
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := untar.SupportedExtensions()
	assert.Equal(t, []string{".tar", ".tar.gz", ".tgz", ".tar.xz", ".tar.bz2", ".zip"}, exts)

	// every advertised extension is accepted by the selector
	for _, ext := range exts {
		_, err := untar.SelectFormat("file" + ext)
		assert.NoError(t, err, ext)
	}
}
