package types

import "testing"

func TestIFD_Valid(t *testing.T) {
	for _, ifd := range IFDs {
		if !ifd.Valid() {
			t.Errorf("%v should be valid", ifd)
		}
	}
	for _, ifd := range []IFD{-1, IFDCount, 42} {
		if ifd.Valid() {
			t.Errorf("%v should be invalid", ifd)
		}
	}
}

func TestIFD_String(t *testing.T) {
	tests := []struct {
		ifd  IFD
		want string
	}{
		{IFD0, "IFD0"},
		{IFD1, "IFD1"},
		{IFDExif, "EXIF"},
		{IFDGPS, "GPS"},
		{IFDInteroperability, "Interoperability"},
		{IFDCount, "IFD(5)"},
	}

	for _, tt := range tests {
		if got := tt.ifd.String(); got != tt.want {
			t.Errorf("IFD(%d).String() = %q, want %q", int(tt.ifd), got, tt.want)
		}
	}
}

func TestEntry_String(t *testing.T) {
	e := Entry{IFD: IFDGPS, Tag: TagGPSLatitude, Value: "48, 51, 24.0"}
	if got, want := e.String(), "GPS/GPSLatitude: 48, 51, 24.0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	m := MakerNoteData{TagID: 0x84, Title: "Lens", Value: "55-300mm 1:4.5 - 5.6"}
	if got, want := m.String(), "0x0084 Lens: 55-300mm 1:4.5 - 5.6"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
