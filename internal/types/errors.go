package types

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below unwraps to exactly one of these,
// so callers can test the category with errors.Is.
var (
	// ErrParseFailed means the native parser rejected the input: a missing or
	// unreadable file, or content without a recognizable EXIF segment.
	ErrParseFailed = errors.New("exif parse failed")

	// ErrEntryNotFound means the requested IFD holds no entry for the tag.
	ErrEntryNotFound = errors.New("exif entry not found")

	// ErrMakerNoteNotFound means the image has no decodable maker note section.
	ErrMakerNoteNotFound = errors.New("maker note not found")

	// ErrMNoteTagNotFound means the maker note section exists but lacks the id.
	ErrMNoteTagNotFound = errors.New("maker note tag not found")

	// ErrExifFailed is a native failure with no more specific category.
	ErrExifFailed = errors.New("libexif call failed")

	// ErrInvalidText means the native layer produced text that is not UTF-8.
	ErrInvalidText = errors.New("native text is not valid UTF-8")

	// ErrClosed is returned by queries on an Exif that has been closed.
	ErrClosed = errors.New("exif data already closed")
)

// ParseError is returned when a native parse call yields no handle.
type ParseError struct {
	Path   string // "" for in-memory buffers
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	src := e.Path
	if src == "" {
		src = "<memory>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: exif parse failed: %s: %v", src, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: exif parse failed: %s", src, e.Reason)
}

// Unwrap exposes both ErrParseFailed and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParseFailed, e.Err}
	}
	return []error{ErrParseFailed}
}

// UnsupportedFormatError is returned when the input carries no EXIF segment
// the native parser would accept. It is a ParseFailed condition.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	src := e.Path
	if src == "" {
		src = "<memory>"
	}
	return fmt.Sprintf("%s: unsupported format: %s", src, e.Reason)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return ErrParseFailed
}

// EntryNotFoundError reports a tag absent from one IFD.
type EntryNotFoundError struct {
	IFD IFD
	Tag Tag
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("%s has no entry for tag %s", e.IFD, e.Tag.NameIn(e.IFD))
}

func (e *EntryNotFoundError) Unwrap() error {
	return ErrEntryNotFound
}

// MakerNoteTagError reports a maker note id absent from an existing section.
type MakerNoteTagError struct {
	ID uint32
}

func (e *MakerNoteTagError) Error() string {
	return fmt.Sprintf("maker note tag 0x%04x not found", e.ID)
}

func (e *MakerNoteTagError) Unwrap() error {
	return ErrMNoteTagNotFound
}

// InvalidTextError is returned when rendered native text fails UTF-8
// validation. Offset is the index of the first invalid byte.
type InvalidTextError struct {
	What   string // "IFD0 Make", "maker note 0x0084 title", ...
	Offset int
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("%s: invalid UTF-8 at byte %d", e.What, e.Offset)
}

func (e *InvalidTextError) Unwrap() error {
	return ErrInvalidText
}
