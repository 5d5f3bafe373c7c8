package types

import (
	"fmt"
	"io"

	"github.com/simonhull/exifmeta/internal/binary"
)

// Format represents the container the EXIF block was found in.
type Format int

const (
	// FormatUnknown represents input without a recognisable EXIF block.
	FormatUnknown Format = iota
	// FormatJPEG is a JPEG stream with an APP1 "Exif" segment.
	FormatJPEG
	// FormatEXIF is a bare EXIF block starting with the "Exif\0\0" header.
	FormatEXIF
	// FormatRAF is a FUJIFILM RAW file whose embedded JPEG carries the
	// EXIF block.
	FormatRAF
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatEXIF:
		return "EXIF"
	case FormatRAF:
		return "RAF"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatJPEG:
		return []string{".jpg", ".jpeg", ".jpe", ".jfif"}
	case FormatEXIF:
		return []string{".exif"}
	case FormatRAF:
		return []string{".raf"}
	default:
		return nil
	}
}

const (
	exifHeader = "Exif\x00\x00"
	rafHeader  = "FUJIFILM"

	// Offset of the big-endian pointer to the embedded JPEG in a RAF file.
	rafJPEGOffset = 84

	markerSOF0 = 0xC0
	markerDHT  = 0xC4
	markerSOI  = 0xD8
	markerDQT  = 0xDB
	markerAPP1 = 0xE1
	markerCOM  = 0xFE
)

// skipped holds the markers whose segments libexif's loader steps over
// while looking for the EXIF APP1 segment. Any other marker ends the search.
var skipped = map[uint8]bool{
	markerSOF0: true,
	markerDHT:  true,
	markerDQT:  true,
	0xE0:       true, // APP0
	markerAPP1: true,
	0xE2:       true, // APP2
	0xE4:       true, // APP4
	0xE5:       true, // APP5
	0xEB:       true, // APP11
	0xED:       true, // APP13
	0xEE:       true, // APP14
	markerCOM:  true,
}

// Location is where the EXIF block ("Exif\0\0" header onwards) sits in
// the input.
type Location struct {
	Format Format
	Offset int64
	Length int64
}

// DetectFormat reports which container holds the EXIF block the native
// parser would load. See Locate.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	loc, err := Locate(r, size, path)
	return loc.Format, err
}

// Locate finds the EXIF block the native file loader would load.
//
// Accepted input is a bare EXIF block ("Exif\0\0" followed by a TIFF
// header), a JPEG stream, or a FUJIFILM RAF file pointing at an embedded
// JPEG. In a JPEG the EXIF APP1 segment must be reached by skipping only the
// segments libexif's loader skips (SOF0, DHT, DQT, APP0, non-EXIF APP1,
// APP2, APP4, APP5, APP11, APP13, APP14 and COM). The walk stops at the
// first other marker, the same way the loader gives up.
//
// Any other input yields an UnsupportedFormatError.
func Locate(r io.ReaderAt, size int64, path string) (Location, error) {
	if size < int64(len(exifHeader)) {
		return Location{}, &UnsupportedFormatError{Path: path, Reason: "input too small"}
	}

	sr := binary.NewSafeReader(r, size, path)

	head := make([]byte, len(exifHeader))
	if err := sr.ReadAt(head, 0, "file magic bytes"); err != nil {
		return Location{}, &UnsupportedFormatError{Path: path, Reason: "failed to read header"}
	}

	if string(head) == exifHeader {
		if _, _, err := binary.TIFFByteOrder(sr, int64(len(exifHeader))); err != nil {
			return Location{}, &UnsupportedFormatError{Path: path, Reason: err.Error()}
		}
		return Location{Format: FormatEXIF, Length: size}, nil
	}

	format, start := FormatJPEG, int64(0)
	switch {
	case size >= int64(len(rafHeader)) && readString(sr, len(rafHeader)) == rafHeader:
		jpeg, err := binary.Read[uint32](sr, rafJPEGOffset, "RAF JPEG offset")
		if err != nil {
			return Location{}, &UnsupportedFormatError{Path: path, Reason: err.Error()}
		}
		format, start = FormatRAF, int64(jpeg)
	case head[0] != 0xFF || head[1] != markerSOI:
		return Location{}, &UnsupportedFormatError{Path: path, Reason: "not a JPEG or EXIF block"}
	}

	off, n, err := findExifSegment(sr, start)
	if err != nil {
		return Location{}, &UnsupportedFormatError{Path: path, Reason: err.Error()}
	}
	return Location{Format: format, Offset: off, Length: n}, nil
}

// readString returns the first n bytes of sr, or "" if they cannot be read.
func readString(sr *binary.SafeReader, n int) string {
	buf := make([]byte, n)
	if sr.ReadAt(buf, 0, "file magic bytes") != nil {
		return ""
	}
	return string(buf)
}

// findExifSegment walks JPEG marker segments from start and returns the
// offset and length of the APP1 payload holding EXIF data.
func findExifSegment(sr *binary.SafeReader, start int64) (int64, int64, error) {
	r := binary.NewReader(sr, start)

	for r.Remaining() >= 3 {
		marker, err := nextMarker(r)
		if err != nil {
			return 0, 0, err
		}
		if marker == markerSOI {
			continue
		}
		if !skipped[marker] {
			return 0, 0, fmt.Errorf("EXIF marker not found (stopped at marker 0x%02X)", marker)
		}

		cr := binary.NewChainReader(r)
		length := binary.ReadChained[uint16](cr, "segment length")
		if err := cr.Err(); err != nil {
			return 0, 0, err
		}
		if length < 2 {
			return 0, 0, fmt.Errorf("invalid segment length %d at offset %d", length, r.Offset()-2)
		}
		payload := r.Offset()
		n := int64(length) - 2
		if payload+n > sr.Size() {
			return 0, 0, fmt.Errorf("segment at offset %d extends past end of input", payload-4)
		}

		if marker == markerAPP1 && n >= int64(len(exifHeader)) {
			hdr := cr.Bytes(len(exifHeader), "APP1 identifier")
			if err := cr.Err(); err != nil {
				return 0, 0, err
			}
			if string(hdr) == exifHeader {
				if _, _, err := binary.TIFFByteOrder(sr, payload+int64(len(exifHeader))); err != nil {
					return 0, 0, err
				}
				return payload, n, nil
			}
		}

		r.Skip(payload + n - r.Offset())
	}

	return 0, 0, fmt.Errorf("EXIF marker not found")
}

// nextMarker consumes one or more 0xFF fill bytes and returns the marker code.
func nextMarker(r *binary.Reader) (uint8, error) {
	b, err := binary.ReadValue[uint8](r, "marker prefix")
	if err != nil {
		return 0, err
	}
	if b != 0xFF {
		return 0, fmt.Errorf("expected marker at offset %d, found 0x%02X", r.Offset()-1, b)
	}
	for {
		b, err = binary.ReadValue[uint8](r, "marker code")
		if err != nil {
			return 0, err
		}
		if b != 0xFF {
			return b, nil
		}
	}
}
