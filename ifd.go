package exifmeta

import (
	"github.com/simonhull/exifmeta/internal/types"
)

// IFD is an alias to types.IFD.
// Re-exporting from internal/types to maintain public API.
type IFD = types.IFD

// Re-export all IFD selectors.
const (
	IFD0                = types.IFD0
	IFD1                = types.IFD1
	IFDExif             = types.IFDExif
	IFDGPS              = types.IFDGPS
	IFDInteroperability = types.IFDInteroperability
)

// IFDs lists every valid selector in native order.
var IFDs = types.IFDs

// Entry is an alias to types.Entry.
// Re-exporting from internal/types to maintain public API.
type Entry = types.Entry

// MakerNoteData is an alias to types.MakerNoteData.
// Re-exporting from internal/types to maintain public API.
type MakerNoteData = types.MakerNoteData
