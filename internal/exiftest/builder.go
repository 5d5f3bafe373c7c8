// Package exiftest builds synthetic EXIF fixtures and provides an
// instrumented fake native backend for tests.
package exiftest

import (
	"bytes"
	stdbinary "encoding/binary"

	"github.com/simonhull/exifmeta/internal/binary"
)

// TIFF field types.
const (
	TypeByte      uint16 = 1
	TypeASCII     uint16 = 2
	TypeShort     uint16 = 3
	TypeLong      uint16 = 4
	TypeRational  uint16 = 5
	TypeUndefined uint16 = 7
)

const (
	tagExifPointer = 0x8769
	tagGPSPointer  = 0x8825
)

// Field is one IFD entry. Integer payloads are encoded with the byte order
// of the TIFF they end up in.
type Field struct {
	Tag   uint16
	Type  uint16
	Count uint32
	raw   []byte
	ints  []uint32
}

// ASCII returns a NUL-terminated ASCII field.
func ASCII(tag uint16, s string) Field {
	return Field{Tag: tag, Type: TypeASCII, Count: uint32(len(s) + 1), raw: append([]byte(s), 0)}
}

// Short returns a single SHORT field.
func Short(tag uint16, v uint16) Field {
	return Field{Tag: tag, Type: TypeShort, Count: 1, ints: []uint32{uint32(v)}}
}

// Long returns a single LONG field.
func Long(tag uint16, v uint32) Field {
	return Field{Tag: tag, Type: TypeLong, Count: 1, ints: []uint32{v}}
}

// Rational returns a single RATIONAL field.
func Rational(tag uint16, num, den uint32) Field {
	return Field{Tag: tag, Type: TypeRational, Count: 1, ints: []uint32{num, den}}
}

// Undefined returns an UNDEFINED field carrying b verbatim.
func Undefined(tag uint16, b []byte) Field {
	return Field{Tag: tag, Type: TypeUndefined, Count: uint32(len(b)), raw: b}
}

func (f Field) encode(order stdbinary.ByteOrder) []byte {
	if f.raw != nil {
		return f.raw
	}
	var buf bytes.Buffer
	sw := binary.NewSafeWriter(&buf, order)
	for _, v := range f.ints {
		if f.Type == TypeShort {
			binary.Write(sw, uint16(v))
		} else {
			binary.Write(sw, v)
		}
	}
	return buf.Bytes()
}

// TIFF describes a TIFF structure with up to three directories. Pointer
// entries for the EXIF and GPS sub-directories are added to IFD0 when
// those directories are non-empty.
type TIFF struct {
	Order stdbinary.ByteOrder // defaults to big-endian
	IFD0  []Field
	Exif  []Field
	GPS   []Field
}

// Bytes lays the structure out: header, IFD0, EXIF IFD, GPS IFD, each
// directory followed by its out-of-line values.
func (t TIFF) Bytes() []byte {
	order := t.Order
	if order == nil {
		order = stdbinary.BigEndian
	}

	ifd0 := append([]Field(nil), t.IFD0...)
	exifAt, gpsAt := -1, -1
	if len(t.Exif) > 0 {
		exifAt = len(ifd0)
		ifd0 = append(ifd0, Long(tagExifPointer, 0))
	}
	if len(t.GPS) > 0 {
		gpsAt = len(ifd0)
		ifd0 = append(ifd0, Long(tagGPSPointer, 0))
	}

	off0 := uint32(8)
	offExif := off0 + dirSize(ifd0, order)
	offGPS := offExif + dirSize(t.Exif, order)
	if exifAt >= 0 {
		ifd0[exifAt] = Long(tagExifPointer, offExif)
	}
	if gpsAt >= 0 {
		ifd0[gpsAt] = Long(tagGPSPointer, offGPS)
	}

	var buf bytes.Buffer
	sw := binary.NewSafeWriter(&buf, order)
	if order == stdbinary.LittleEndian {
		sw.WriteString("II")
	} else {
		sw.WriteString("MM")
	}
	binary.Write(sw, uint16(42))
	binary.Write(sw, off0)

	writeDir(sw, ifd0, off0)
	if len(t.Exif) > 0 {
		writeDir(sw, t.Exif, offExif)
	}
	if len(t.GPS) > 0 {
		writeDir(sw, t.GPS, offGPS)
	}
	return buf.Bytes()
}

func dirSize(fields []Field, order stdbinary.ByteOrder) uint32 {
	if len(fields) == 0 {
		return 0
	}
	size := uint32(2 + 12*len(fields) + 4)
	for _, f := range fields {
		if n := len(f.encode(order)); n > 4 {
			size += uint32(n + n%2)
		}
	}
	return size
}

func writeDir(sw *binary.SafeWriter, fields []Field, start uint32) {
	order := sw.Order()
	dataOff := start + uint32(2+12*len(fields)+4)
	var data [][]byte

	binary.Write(sw, uint16(len(fields)))
	for _, f := range fields {
		v := f.encode(order)
		binary.Write(sw, f.Tag)
		binary.Write(sw, f.Type)
		binary.Write(sw, f.Count)
		if len(v) <= 4 {
			inline := make([]byte, 4)
			copy(inline, v)
			sw.WriteBytes(inline)
			continue
		}
		binary.Write(sw, dataOff)
		if len(v)%2 == 1 {
			v = append(append([]byte(nil), v...), 0)
		}
		data = append(data, v)
		dataOff += uint32(len(v))
	}
	binary.Write(sw, uint32(0))

	for _, v := range data {
		sw.WriteBytes(v)
	}
}

// ExifBlock prefixes tiff with the "Exif\0\0" header.
func ExifBlock(tiff []byte) []byte {
	return append([]byte("Exif\x00\x00"), tiff...)
}

// Segment encodes one JPEG marker segment (marker, length, payload).
func Segment(marker byte, payload []byte) []byte {
	var buf bytes.Buffer
	sw := binary.NewSafeWriter(&buf, stdbinary.BigEndian)
	sw.WriteBytes([]byte{0xFF, marker})
	binary.Write(sw, uint16(len(payload)+2))
	sw.WriteBytes(payload)
	return buf.Bytes()
}

// JFIF returns a minimal APP0 JFIF segment.
func JFIF() []byte {
	return Segment(0xE0, []byte("JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00"))
}

// JPEG wraps segments between SOI and EOI. It is not a decodable image,
// only enough structure for EXIF loaders.
func JPEG(segments ...[]byte) []byte {
	out := []byte{0xFF, 0xD8}
	for _, s := range segments {
		out = append(out, s...)
	}
	return append(out, 0xFF, 0xD9)
}

// NikonD7000 describes the reference image used throughout the tests.
func NikonD7000() TIFF {
	return TIFF{
		IFD0: []Field{
			ASCII(0x010f, "NIKON CORPORATION"),
			ASCII(0x0110, "NIKON D7000"),
			Short(0x0112, 1),
		},
		Exif: []Field{
			ASCII(0x9003, "2023:07:25 05:29:51"),
			ASCII(0x9004, "2023:07:25 05:29:51"),
		},
	}
}

// NikonJPEG returns NikonD7000 embedded in a JPEG with a leading JFIF
// segment.
func NikonJPEG() []byte {
	return JPEG(JFIF(), Segment(0xE1, ExifBlock(NikonD7000().Bytes())))
}
