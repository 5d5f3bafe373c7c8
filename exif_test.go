package exifmeta_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/simonhull/exifmeta"
	"github.com/simonhull/exifmeta/internal/exiftest"
)

// writeJPEG writes the reference JPEG to a temp file and returns its path.
func writeJPEG(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "DSC_5613.jpg")
	if err := os.WriteFile(path, exiftest.NikonJPEG(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// nikon is the fake image matching exiftest.NikonD7000, plus a Nikon-style
// maker note section.
func nikon() exiftest.Image {
	return exiftest.Image{
		Entries: map[exifmeta.IFD][]exiftest.Entry{
			exifmeta.IFD0: {
				{Tag: exifmeta.TagMake, Value: "NIKON CORPORATION"},
				{Tag: exifmeta.TagModel, Value: "NIKON D7000"},
				{Tag: exifmeta.TagOrientation, Value: "Top-left"},
			},
			exifmeta.IFDExif: {
				{Tag: exifmeta.TagFNumber, Value: "f/4.8"},
				{Tag: exifmeta.TagDateTimeOriginal, Value: "2023:07:25 05:29:51"},
				{Tag: exifmeta.TagFocalLength, Value: "120.0 mm"},
			},
		},
		MakerNotes: []exiftest.Note{
			{ID: 0x0001, Title: "Firmware Version", Value: "0210"},
			{ID: 0x0084, Title: "Lens", Value: "55-300mm 1:4.5 - 5.6"},
			{ID: 0x0084, Title: "Lens", Value: "shadowed duplicate"},
		},
	}
}

// open installs b and opens the reference JPEG through it.
func open(t *testing.T, b *exiftest.Backend, opts ...exifmeta.Option) *exifmeta.Exif {
	t.Helper()

	name := exiftest.Install(t, b)
	x, err := exifmeta.Open(writeJPEG(t), append([]exifmeta.Option{exifmeta.WithBackend(name)}, opts...)...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { x.Close() })
	return x
}

func TestOpen_AcquireRelease(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	name := exiftest.Install(t, b)
	path := writeJPEG(t)

	x, err := exifmeta.Open(path, exifmeta.WithBackend(name))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if x.Path != path {
		t.Errorf("Path = %q, want %q", x.Path, path)
	}
	if x.Format != exifmeta.FormatJPEG {
		t.Errorf("Format = %v, want JPEG", x.Format)
	}
	if b.LastPath() != path {
		t.Errorf("backend parsed %q, want %q", b.LastPath(), path)
	}
	if b.Acquired() != 1 || b.Released() != 0 {
		t.Fatalf("after Open: acquired=%d released=%d", b.Acquired(), b.Released())
	}

	for range 3 {
		if err := x.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	if b.Released() != 1 {
		t.Errorf("released = %d, want 1", b.Released())
	}
	if b.DoubleFrees() != 0 {
		t.Errorf("double frees = %d, want 0", b.DoubleFrees())
	}
}

func TestOpen_ParseFailed(t *testing.T) {
	tests := []struct {
		name string
		open func(name string) (*exifmeta.Exif, error)
	}{
		{"file", func(name string) (*exifmeta.Exif, error) {
			return exifmeta.Open(writeJPEG(t), exifmeta.WithBackend(name))
		}},
		{"bytes", func(name string) (*exifmeta.Exif, error) {
			return exifmeta.OpenBytes(exiftest.NikonJPEG(), exifmeta.WithBackend(name))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &exiftest.Backend{Reject: true}
			name := exiftest.Install(t, b)

			x, err := tt.open(name)
			if err == nil {
				x.Close()
				t.Fatal("expected error from rejecting backend")
			}
			if !errors.Is(err, exifmeta.ErrParseFailed) {
				t.Errorf("error = %v, want ErrParseFailed", err)
			}

			var perr *exifmeta.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if b.Parses() != 1 {
				t.Errorf("parses = %d, want 1", b.Parses())
			}
			if b.Acquired() != 0 || b.Released() != 0 {
				t.Errorf("acquired=%d released=%d, want 0/0", b.Acquired(), b.Released())
			}
		})
	}
}

func TestOpen_TablesBeforeExif(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	name := exiftest.Install(t, b)

	data := exiftest.JPEG(
		exiftest.JFIF(),
		exiftest.Segment(0xDB, make([]byte, 65)),
		exiftest.Segment(0xE1, exiftest.ExifBlock(exiftest.NikonD7000().Bytes())),
	)
	path := filepath.Join(t.TempDir(), "dqt.jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	x, err := exifmeta.Open(path, exifmeta.WithBackend(name))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer x.Close()

	if x.Format != exifmeta.FormatJPEG {
		t.Errorf("Format = %v, want JPEG", x.Format)
	}
	if b.Parses() != 1 {
		t.Errorf("parses = %d, want 1", b.Parses())
	}
}

func TestOpen_FileNotFound(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	name := exiftest.Install(t, b)

	_, err := exifmeta.Open("/nonexistent/DSC_0000.jpg", exifmeta.WithBackend(name))
	if !errors.Is(err, exifmeta.ErrParseFailed) {
		t.Errorf("error = %v, want ErrParseFailed", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
	}
	if b.Parses() != 0 {
		t.Errorf("parses = %d, want 0", b.Parses())
	}
}

func TestOpen_NoExif(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	name := exiftest.Install(t, b)

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := exifmeta.Open(path, exifmeta.WithBackend(name))
	if !errors.Is(err, exifmeta.ErrParseFailed) {
		t.Errorf("error = %v, want ErrParseFailed", err)
	}

	var uerr *exifmeta.UnsupportedFormatError
	if !errors.As(err, &uerr) {
		t.Errorf("error type = %T, want *UnsupportedFormatError", err)
	}
	if b.Parses() != 0 {
		t.Errorf("parses = %d, want 0", b.Parses())
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := exifmeta.Open(writeJPEG(t), exifmeta.WithBackend("no-such-backend"))
	if !errors.Is(err, exifmeta.ErrParseFailed) {
		t.Fatalf("error = %v, want ErrParseFailed", err)
	}
	if !strings.Contains(err.Error(), "no-such-backend") {
		t.Errorf("error %q should name the backend", err)
	}
}

func TestOpen_MaxSize(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	name := exiftest.Install(t, b)

	_, err := exifmeta.Open(writeJPEG(t), exifmeta.WithBackend(name), exifmeta.WithMaxSize(16))
	if !errors.Is(err, exifmeta.ErrParseFailed) {
		t.Errorf("error = %v, want ErrParseFailed", err)
	}
	if b.Parses() != 0 {
		t.Errorf("parses = %d, want 0", b.Parses())
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	name := exiftest.Install(t, b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exifmeta.OpenContext(ctx, writeJPEG(t), exifmeta.WithBackend(name))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if b.Parses() != 0 {
		t.Errorf("parses = %d, want 0", b.Parses())
	}
}

func TestOpenBytes(t *testing.T) {
	block := exiftest.ExifBlock(exiftest.NikonD7000().Bytes())
	xmp := exiftest.Segment(0xE1, []byte("http://ns.adobe.com/xap/1.0/\x00<x/>"))

	tests := []struct {
		name   string
		data   []byte
		format exifmeta.Format
	}{
		{"jpeg", exiftest.NikonJPEG(), exifmeta.FormatJPEG},
		{"jpeg with xmp first", exiftest.JPEG(exiftest.JFIF(), xmp, exiftest.Segment(0xE1, block)), exifmeta.FormatJPEG},
		{"jpeg with tables first", exiftest.JPEG(exiftest.Segment(0xDB, make([]byte, 65)), exiftest.Segment(0xE1, block)), exifmeta.FormatJPEG},
		{"exif block", block, exifmeta.FormatEXIF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &exiftest.Backend{Image: nikon()}
			name := exiftest.Install(t, b)

			x, err := exifmeta.OpenBytes(tt.data, exifmeta.WithBackend(name))
			if err != nil {
				t.Fatalf("OpenBytes failed: %v", err)
			}
			defer x.Close()

			if x.Format != tt.format {
				t.Errorf("Format = %v, want %v", x.Format, tt.format)
			}
			if x.Path != "" {
				t.Errorf("Path = %q, want empty", x.Path)
			}
			if x.Size != int64(len(tt.data)) {
				t.Errorf("Size = %d, want %d", x.Size, len(tt.data))
			}
			if b.LastBytes() != len(block) {
				t.Errorf("backend saw %d bytes, want only the %d byte EXIF block", b.LastBytes(), len(block))
			}
		})
	}
}

func TestOpenBytes_Rejected(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("hello, world")},
		{"jpeg without exif", exiftest.JPEG(exiftest.JFIF())},
		{"exif header without tiff", []byte("Exif\x00\x00XX\x00\x2a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &exiftest.Backend{Image: nikon()}
			name := exiftest.Install(t, b)

			_, err := exifmeta.OpenBytes(tt.data, exifmeta.WithBackend(name))
			if !errors.Is(err, exifmeta.ErrParseFailed) {
				t.Errorf("error = %v, want ErrParseFailed", err)
			}
			if b.Parses() != 0 {
				t.Errorf("parses = %d, want 0", b.Parses())
			}
		})
	}
}

func TestExif_QueriesAfterClose(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	x := open(t, b)
	x.Close()

	if _, err := x.EntryValue(exifmeta.IFD0, exifmeta.TagMake); !errors.Is(err, exifmeta.ErrClosed) {
		t.Errorf("EntryValue error = %v, want ErrClosed", err)
	}
	if _, err := x.Entries(exifmeta.IFD0); !errors.Is(err, exifmeta.ErrClosed) {
		t.Errorf("Entries error = %v, want ErrClosed", err)
	}
	if _, err := x.MakerNote(0x0084); !errors.Is(err, exifmeta.ErrClosed) {
		t.Errorf("MakerNote error = %v, want ErrClosed", err)
	}
	if _, err := x.MakerNotes(); !errors.Is(err, exifmeta.ErrClosed) {
		t.Errorf("MakerNotes error = %v, want ErrClosed", err)
	}
	if x.HasMakerNotes() {
		t.Error("HasMakerNotes should be false after Close")
	}
	if b.UseAfterFree() != 0 {
		t.Errorf("use after free = %d, want 0", b.UseAfterFree())
	}
}

func TestExif_EntryValue(t *testing.T) {
	img := nikon()
	img.Entries[exifmeta.IFD1] = []exiftest.Entry{
		{Tag: exifmeta.TagCompression, Fail: true},
		{Tag: exifmeta.TagImageDescription, Value: "caf\xe9 au lait"},
	}
	x := open(t, &exiftest.Backend{Image: img})

	tests := []struct {
		name    string
		ifd     exifmeta.IFD
		tag     exifmeta.Tag
		want    string
		wantErr error
	}{
		{"make", exifmeta.IFD0, exifmeta.TagMake, "NIKON CORPORATION", nil},
		{"model", exifmeta.IFD0, exifmeta.TagModel, "NIKON D7000", nil},
		{"date taken", exifmeta.IFDExif, exifmeta.TagDateTimeOriginal, "2023:07:25 05:29:51", nil},
		{"fnumber", exifmeta.IFDExif, exifmeta.TagFNumber, "f/4.8", nil},
		{"absent tag", exifmeta.IFDGPS, exifmeta.TagGPSLatitude, "", exifmeta.ErrEntryNotFound},
		{"tag in wrong ifd", exifmeta.IFD0, exifmeta.TagDateTimeOriginal, "", exifmeta.ErrEntryNotFound},
		{"invalid ifd", exifmeta.IFD(42), exifmeta.TagMake, "", exifmeta.ErrEntryNotFound},
		{"render fails", exifmeta.IFD1, exifmeta.TagCompression, "", exifmeta.ErrExifFailed},
		{"invalid utf8", exifmeta.IFD1, exifmeta.TagImageDescription, "", exifmeta.ErrInvalidText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x.EntryValue(tt.ifd, tt.tag)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("value = %q on error, want empty", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExif_EntryValue_ErrorDetails(t *testing.T) {
	img := nikon()
	img.Entries[exifmeta.IFD1] = []exiftest.Entry{
		{Tag: exifmeta.TagImageDescription, Value: "caf\xe9 au lait"},
	}
	x := open(t, &exiftest.Backend{Image: img})

	_, err := x.EntryValue(exifmeta.IFDGPS, exifmeta.TagGPSLatitude)
	var nf *exifmeta.EntryNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error type = %T, want *EntryNotFoundError", err)
	}
	if nf.IFD != exifmeta.IFDGPS || nf.Tag != exifmeta.TagGPSLatitude {
		t.Errorf("EntryNotFoundError = %+v", nf)
	}
	if !strings.Contains(err.Error(), "GPSLatitude") {
		t.Errorf("error %q should name the GPS tag", err)
	}

	_, err = x.EntryValue(exifmeta.IFD1, exifmeta.TagImageDescription)
	var te *exifmeta.InvalidTextError
	if !errors.As(err, &te) {
		t.Fatalf("error type = %T, want *InvalidTextError", err)
	}
	if te.Offset != 3 {
		t.Errorf("Offset = %d, want 3", te.Offset)
	}
}

func TestExif_EntryValue_Repeatable(t *testing.T) {
	x := open(t, &exiftest.Backend{Image: nikon()})

	first, err := x.EntryValue(exifmeta.IFD0, exifmeta.TagModel)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		again, err := x.EntryValue(exifmeta.IFD0, exifmeta.TagModel)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("value changed between calls: %q then %q", first, again)
		}
	}
}

func TestExif_BufferSize(t *testing.T) {
	long := strings.Repeat("a", 2000)

	tests := []struct {
		name string
		opts []exifmeta.Option
		want int
	}{
		{"default truncates", nil, exifmeta.MinBufferSize - 1},
		{"small is clamped", []exifmeta.Option{exifmeta.WithBufferSize(16)}, exifmeta.MinBufferSize - 1},
		{"negative is clamped", []exifmeta.Option{exifmeta.WithBufferSize(-1)}, exifmeta.MinBufferSize - 1},
		{"large fits", []exifmeta.Option{exifmeta.WithBufferSize(4096)}, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := exiftest.Image{Entries: map[exifmeta.IFD][]exiftest.Entry{
				exifmeta.IFDExif: {{Tag: exifmeta.TagUserComment, Value: long}},
			}}
			x := open(t, &exiftest.Backend{Image: img}, tt.opts...)

			got, err := x.EntryValue(exifmeta.IFDExif, exifmeta.TagUserComment)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Errorf("len(value) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestExif_Entries(t *testing.T) {
	img := nikon()
	img.Entries[exifmeta.IFD0] = append(img.Entries[exifmeta.IFD0],
		exiftest.Entry{Tag: exifmeta.TagSoftware, Fail: true},
		exiftest.Entry{Tag: exifmeta.TagArtist, Value: "\xff"},
	)
	x := open(t, &exiftest.Backend{Image: img})

	entries, err := x.Entries(exifmeta.IFD0)

	want := []string{"NIKON CORPORATION", "NIKON D7000", "Top-left"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(entries), len(want), entries)
	}
	for i, e := range entries {
		if e.Value != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Value, want[i])
		}
		if e.IFD != exifmeta.IFD0 {
			t.Errorf("entry %d IFD = %v", i, e.IFD)
		}
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("error type = %T, want *multierror.Error", err)
	}
	if len(merr.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(merr.Errors), err)
	}
	if !errors.Is(err, exifmeta.ErrExifFailed) {
		t.Error("aggregate should contain ErrExifFailed")
	}
	if !errors.Is(err, exifmeta.ErrInvalidText) {
		t.Error("aggregate should contain ErrInvalidText")
	}
}

func TestExif_Entries_Empty(t *testing.T) {
	x := open(t, &exiftest.Backend{Image: nikon()})

	entries, err := x.Entries(exifmeta.IFDGPS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}

	if _, err := x.Entries(exifmeta.IFD(-1)); !errors.Is(err, exifmeta.ErrEntryNotFound) {
		t.Errorf("invalid IFD error = %v, want ErrEntryNotFound", err)
	}
}

func TestExif_MakerNote(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	x := open(t, b)

	if !x.HasMakerNotes() {
		t.Fatal("HasMakerNotes = false, want true")
	}

	note, err := x.MakerNote(0x0084)
	if err != nil {
		t.Fatalf("MakerNote failed: %v", err)
	}
	if note.TagID != 0x0084 {
		t.Errorf("TagID = 0x%04x, want 0x0084", note.TagID)
	}
	if note.Title != "Lens" {
		t.Errorf("Title = %q, want %q", note.Title, "Lens")
	}
	if note.Value != "55-300mm 1:4.5 - 5.6" {
		t.Errorf("Value = %q, want first match", note.Value)
	}

	if b.CountCalls() != 1 {
		t.Errorf("count calls = %d, want 1", b.CountCalls())
	}
	if b.IDCalls() != 2 {
		t.Errorf("id calls = %d, want 2 (scan stops at first match)", b.IDCalls())
	}
}

func TestExif_MakerNote_Errors(t *testing.T) {
	tests := []struct {
		name    string
		img     exiftest.Image
		id      uint32
		wantErr error
	}{
		{
			name:    "no section",
			img:     exiftest.Image{},
			id:      0x0084,
			wantErr: exifmeta.ErrMakerNoteNotFound,
		},
		{
			name:    "empty section",
			img:     exiftest.Image{HasMakerNotes: true},
			id:      0x0084,
			wantErr: exifmeta.ErrMNoteTagNotFound,
		},
		{
			name:    "id absent",
			img:     nikon(),
			id:      0x00ff,
			wantErr: exifmeta.ErrMNoteTagNotFound,
		},
		{
			name: "title fails",
			img: exiftest.Image{MakerNotes: []exiftest.Note{
				{ID: 0x0084, Value: "55-300mm", FailTitle: true},
			}},
			id:      0x0084,
			wantErr: exifmeta.ErrExifFailed,
		},
		{
			name: "value fails",
			img: exiftest.Image{MakerNotes: []exiftest.Note{
				{ID: 0x0084, Title: "Lens", FailValue: true},
			}},
			id:      0x0084,
			wantErr: exifmeta.ErrExifFailed,
		},
		{
			name: "title not utf8",
			img: exiftest.Image{MakerNotes: []exiftest.Note{
				{ID: 0x0084, Title: "Len\xc3", Value: "55-300mm"},
			}},
			id:      0x0084,
			wantErr: exifmeta.ErrInvalidText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := open(t, &exiftest.Backend{Image: tt.img})

			note, err := x.MakerNote(tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if note != (exifmeta.MakerNoteData{}) {
				t.Errorf("note = %+v on error, want zero value", note)
			}
		})
	}
}

func TestExif_MakerNote_TagError(t *testing.T) {
	x := open(t, &exiftest.Backend{Image: nikon()})

	_, err := x.MakerNote(0x0099)
	var terr *exifmeta.MakerNoteTagError
	if !errors.As(err, &terr) {
		t.Fatalf("error type = %T, want *MakerNoteTagError", err)
	}
	if terr.ID != 0x0099 {
		t.Errorf("ID = 0x%04x, want 0x0099", terr.ID)
	}
	if !strings.Contains(err.Error(), "0x0099") {
		t.Errorf("error %q should contain the id", err)
	}
}

func TestExif_MakerNotes(t *testing.T) {
	img := nikon()
	img.MakerNotes = append(img.MakerNotes, exiftest.Note{ID: 0x0005, Title: "White Balance", FailValue: true})
	x := open(t, &exiftest.Backend{Image: img})

	notes, err := x.MakerNotes()
	if len(notes) != 3 {
		t.Fatalf("got %d notes, want 3: %v", len(notes), notes)
	}
	if notes[1].Value != "55-300mm 1:4.5 - 5.6" || notes[2].Value != "shadowed duplicate" {
		t.Errorf("notes out of native order: %v", notes)
	}
	if !errors.Is(err, exifmeta.ErrExifFailed) {
		t.Errorf("error = %v, want ErrExifFailed in aggregate", err)
	}
}

func TestExif_MakerNotes_None(t *testing.T) {
	x := open(t, &exiftest.Backend{Image: exiftest.Image{}})

	if x.HasMakerNotes() {
		t.Error("HasMakerNotes = true, want false")
	}
	if _, err := x.MakerNotes(); !errors.Is(err, exifmeta.ErrMakerNoteNotFound) {
		t.Errorf("error = %v, want ErrMakerNoteNotFound", err)
	}
}

func TestExif_ConcurrentClose(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	x := open(t, b)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%4 == 0 {
				x.Close()
				return
			}
			_, err := x.EntryValue(exifmeta.IFD0, exifmeta.TagMake)
			if err != nil && !errors.Is(err, exifmeta.ErrClosed) {
				t.Errorf("unexpected error: %v", err)
			}
			_, _ = x.MakerNote(0x0084)
		}()
	}
	wg.Wait()

	if b.Released() != 1 {
		t.Errorf("released = %d, want 1", b.Released())
	}
	if b.DoubleFrees() != 0 || b.UseAfterFree() != 0 {
		t.Errorf("double frees=%d use after free=%d", b.DoubleFrees(), b.UseAfterFree())
	}
}

func TestExif_CleanupWithoutClose(t *testing.T) {
	b := &exiftest.Backend{Image: nikon()}
	name := exiftest.Install(t, b)
	path := writeJPEG(t)

	func() {
		x, err := exifmeta.Open(path, exifmeta.WithBackend(name))
		if err != nil {
			t.Fatal(err)
		}
		_, _ = x.EntryValue(exifmeta.IFD0, exifmeta.TagMake)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for b.Released() == 0 && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}

	if b.Released() != 1 {
		t.Errorf("released = %d, want 1 after the Exif became unreachable", b.Released())
	}
	if b.DoubleFrees() != 0 {
		t.Errorf("double frees = %d, want 0", b.DoubleFrees())
	}
}
