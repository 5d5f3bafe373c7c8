package types

import "fmt"

// IFD selects one of the standard EXIF image file directories.
//
// The numeric values match libexif's ExifIfd enumeration and are passed
// to the native layer unchanged.
type IFD int

const (
	// IFD0 is the primary image directory (Make, Model, Orientation, ...).
	IFD0 IFD = iota
	// IFD1 is the thumbnail directory.
	IFD1
	// IFDExif is the EXIF sub-directory (exposure, lens, timestamps).
	IFDExif
	// IFDGPS is the GPS sub-directory.
	IFDGPS
	// IFDInteroperability is the interoperability sub-directory.
	IFDInteroperability

	// IFDCount is the number of directories. Not a valid selector.
	IFDCount
)

// IFDs lists every valid selector in native order.
var IFDs = [IFDCount]IFD{IFD0, IFD1, IFDExif, IFDGPS, IFDInteroperability}

// Valid reports whether i names a real directory.
func (i IFD) Valid() bool {
	return i >= IFD0 && i < IFDCount
}

func (i IFD) String() string {
	switch i {
	case IFD0:
		return "IFD0"
	case IFD1:
		return "IFD1"
	case IFDExif:
		return "EXIF"
	case IFDGPS:
		return "GPS"
	case IFDInteroperability:
		return "Interoperability"
	default:
		return fmt.Sprintf("IFD(%d)", int(i))
	}
}
