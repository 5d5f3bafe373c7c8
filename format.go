package exifmeta

import (
	"io"

	"github.com/simonhull/exifmeta/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatJPEG    = types.FormatJPEG
	FormatEXIF    = types.FormatEXIF
	FormatRAF     = types.FormatRAF
)

// DetectFormat is a wrapper around types.DetectFormat.
// It reports where the native parser would find the EXIF block, or an
// UnsupportedFormatError when there is none.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
