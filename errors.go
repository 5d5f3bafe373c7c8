package exifmeta

import (
	"github.com/simonhull/exifmeta/internal/types"
)

// Sentinel errors, re-exported from internal/types. Test with errors.Is.
var (
	ErrParseFailed       = types.ErrParseFailed
	ErrEntryNotFound     = types.ErrEntryNotFound
	ErrMakerNoteNotFound = types.ErrMakerNoteNotFound
	ErrMNoteTagNotFound  = types.ErrMNoteTagNotFound
	ErrExifFailed        = types.ErrExifFailed
	ErrInvalidText       = types.ErrInvalidText
	ErrClosed            = types.ErrClosed
)

// ParseError is an alias to types.ParseError.
// Re-exporting from internal/types to maintain public API.
type ParseError = types.ParseError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// EntryNotFoundError is an alias to types.EntryNotFoundError.
// Re-exporting from internal/types to maintain public API.
type EntryNotFoundError = types.EntryNotFoundError

// MakerNoteTagError is an alias to types.MakerNoteTagError.
// Re-exporting from internal/types to maintain public API.
type MakerNoteTagError = types.MakerNoteTagError

// InvalidTextError is an alias to types.InvalidTextError.
// Re-exporting from internal/types to maintain public API.
type InvalidTextError = types.InvalidTextError
