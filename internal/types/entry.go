package types

import "fmt"

// Entry is one rendered tag value, copied out of native memory.
type Entry struct {
	IFD   IFD
	Tag   Tag
	Value string
}

// Name returns the tag name as interpreted in the entry's IFD.
func (e Entry) Name() string {
	return e.Tag.NameIn(e.IFD)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s/%s: %s", e.IFD, e.Name(), e.Value)
}

// MakerNoteData is one decoded maker note tag.
//
// Maker note ids are manufacturer-defined; see
// https://exiftool.org/TagNames/index.html for per-vendor tables.
type MakerNoteData struct {
	// TagID is the id that was requested (or enumerated).
	TagID uint32
	// Title is the human readable name libexif knows for the tag.
	Title string
	// Value is the human readable value, e.g. "55-300mm 1:4.5 - 5.6".
	// Title and Value may be empty when libexif has no rendering.
	Value string
}

func (m MakerNoteData) String() string {
	return fmt.Sprintf("0x%04x %s: %s", m.TagID, m.Title, m.Value)
}
