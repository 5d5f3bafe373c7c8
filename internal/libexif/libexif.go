//go:build cgo

package libexif

/*
#cgo pkg-config: libexif
#include <stdlib.h>
#include <string.h>
#include <libexif/exif-data.h>
#include <libexif/exif-content.h>
#include <libexif/exif-entry.h>
#include <libexif/exif-mnote-data.h>

static ExifEntry *gx_get_entry(ExifData *d, int ifd, unsigned int tag) {
	if (!d || ifd < 0 || ifd >= EXIF_IFD_COUNT) return NULL;
	return exif_content_get_entry(d->ifd[ifd], (ExifTag)tag);
}

static unsigned int gx_entry_count(ExifData *d, int ifd) {
	if (!d || ifd < 0 || ifd >= EXIF_IFD_COUNT || !d->ifd[ifd]) return 0;
	return d->ifd[ifd]->count;
}

static ExifEntry *gx_entry_at(ExifData *d, int ifd, unsigned int i) {
	if (i >= gx_entry_count(d, ifd)) return NULL;
	return d->ifd[ifd]->entries[i];
}

static unsigned int gx_entry_tag(ExifEntry *e) {
	return (unsigned int)e->tag;
}

// exif_mnote_data_get_title returns a pointer into a static table.
// Copy it so callers only ever read their own buffer.
static char *gx_mnote_title(ExifMnoteData *m, unsigned int i, char *buf, unsigned int maxlen) {
	const char *t;
	if (!buf || !maxlen) return NULL;
	t = exif_mnote_data_get_title(m, i);
	if (!t) return NULL;
	strncpy(buf, t, maxlen - 1);
	buf[maxlen - 1] = '\0';
	return buf;
}
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

func init() {
	registry.Register(registry.DefaultBackend, Backend{})
}

// Backend implements registry.Backend on top of libexif.
type Backend struct{}

// ParseFile calls exif_data_new_from_file.
func (Backend) ParseFile(path string) (registry.Data, bool) {
	d := NewFromFile(path)
	if d == nil {
		return nil, false
	}
	return d, true
}

// ParseBytes calls exif_data_new_from_data.
func (Backend) ParseBytes(b []byte) (registry.Data, bool) {
	d := NewFromData(b)
	if d == nil {
		return nil, false
	}
	return d, true
}

// Data wraps an ExifData handle.
type Data struct {
	p *C.ExifData
}

// NewFromFile parses the file at path. Returns nil when libexif returns
// null (missing file, unreadable file, no EXIF block).
func NewFromFile(path string) *Data {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	p := C.exif_data_new_from_file(cpath)
	if p == nil {
		return nil
	}
	return &Data{p: p}
}

// NewFromData parses b. The bytes are copied to C memory for the duration
// of the call; libexif keeps its own copies of everything it decodes.
func NewFromData(b []byte) *Data {
	if len(b) == 0 || uint64(len(b)) > math.MaxUint32 {
		return nil
	}
	cbuf := C.CBytes(b)
	defer C.free(cbuf)

	p := C.exif_data_new_from_data((*C.uchar)(cbuf), C.uint(len(b)))
	if p == nil {
		return nil
	}
	return &Data{p: p}
}

// Free calls exif_data_unref on the handle.
func (d *Data) Free() {
	C.exif_data_unref(d.p)
}

// Entry calls exif_content_get_entry on d->ifd[ifd].
func (d *Data) Entry(ifd types.IFD, tag types.Tag) (registry.Entry, bool) {
	p := C.gx_get_entry(d.p, C.int(ifd), C.uint(tag))
	if p == nil {
		return nil, false
	}
	return &Entry{p: p}, true
}

// EntryCount returns d->ifd[ifd]->count.
func (d *Data) EntryCount(ifd types.IFD) int {
	return int(C.gx_entry_count(d.p, C.int(ifd)))
}

// EntryAt returns d->ifd[ifd]->entries[i].
func (d *Data) EntryAt(ifd types.IFD, i int) (registry.Entry, bool) {
	if i < 0 {
		return nil, false
	}
	p := C.gx_entry_at(d.p, C.int(ifd), C.uint(i))
	if p == nil {
		return nil, false
	}
	return &Entry{p: p}, true
}

// MakerNotes calls exif_data_get_mnote_data.
func (d *Data) MakerNotes() (registry.MakerNotes, bool) {
	p := C.exif_data_get_mnote_data(d.p)
	if p == nil {
		return nil, false
	}
	return &MakerNotes{p: p}, true
}

// Entry wraps an ExifEntry owned by its ExifData.
type Entry struct {
	p *C.ExifEntry
}

// Tag returns the entry's tag id.
func (e *Entry) Tag() types.Tag {
	return types.Tag(C.gx_entry_tag(e.p))
}

// Value calls exif_entry_get_value into buf.
func (e *Entry) Value(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	return C.exif_entry_get_value(e.p, bufPtr(buf), C.uint(len(buf))) != nil
}

// MakerNotes wraps an ExifMnoteData owned by its ExifData.
type MakerNotes struct {
	p *C.ExifMnoteData
}

// Count calls exif_mnote_data_count.
func (m *MakerNotes) Count() uint32 {
	return uint32(C.exif_mnote_data_count(m.p))
}

// ID calls exif_mnote_data_get_id.
func (m *MakerNotes) ID(i uint32) uint32 {
	return uint32(C.exif_mnote_data_get_id(m.p, C.uint(i)))
}

// Title copies exif_mnote_data_get_title into buf.
func (m *MakerNotes) Title(i uint32, buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	return C.gx_mnote_title(m.p, C.uint(i), bufPtr(buf), C.uint(len(buf))) != nil
}

// Value calls exif_mnote_data_get_value into buf.
func (m *MakerNotes) Value(i uint32, buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	return C.exif_mnote_data_get_value(m.p, C.uint(i), bufPtr(buf), C.uint(len(buf))) != nil
}

// bufPtr passes a Go byte slice as a char* output buffer. libexif writes
// into it during the call and does not retain it.
func bufPtr(buf []byte) *C.char {
	return (*C.char)(unsafe.Pointer(&buf[0]))
}
