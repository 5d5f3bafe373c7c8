package binary

import (
	"encoding/binary"
	"fmt"
)

// TIFF byte order marks.
const (
	littleEndianMark = "II"
	bigEndianMark    = "MM"
	tiffMagic        = 42
)

// TIFFByteOrder validates the 8-byte TIFF header at off and returns its
// byte order together with the offset of IFD0 (relative to off).
//
// EXIF data embeds a TIFF structure directly after the "Exif\0\0" header,
// so this is how an EXIF block is recognised before native parsing.
//
// Example:
//
//	order, ifd0, err := binary.TIFFByteOrder(sr, exifStart+6)
func TIFFByteOrder(sr *SafeReader, off int64) (binary.ByteOrder, uint32, error) {
	mark := make([]byte, 2)
	if err := sr.ReadAt(mark, off, "TIFF byte order"); err != nil {
		return nil, 0, err
	}

	var order binary.ByteOrder
	switch string(mark) {
	case littleEndianMark:
		order = binary.LittleEndian
	case bigEndianMark:
		order = binary.BigEndian
	default:
		return nil, 0, fmt.Errorf("%s: invalid TIFF byte order mark %q at offset %d", sr.path, mark, off)
	}

	magic, err := ReadOrder[uint16](sr, off+2, "TIFF magic", order)
	if err != nil {
		return nil, 0, err
	}
	if magic != tiffMagic {
		return nil, 0, fmt.Errorf("%s: invalid TIFF magic %d at offset %d", sr.path, magic, off+2)
	}

	ifd0, err := ReadOrder[uint32](sr, off+4, "IFD0 offset", order)
	if err != nil {
		return nil, 0, err
	}
	return order, ifd0, nil
}
