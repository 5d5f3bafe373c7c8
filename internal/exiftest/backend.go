package exiftest

import (
	"strings"
	"sync"
	"testing"

	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

// Entry is a fake IFD entry. Value may hold arbitrary bytes, including
// invalid UTF-8.
type Entry struct {
	Tag   types.Tag
	Value string
	Fail  bool // render returns null
}

// Note is a fake maker note position.
type Note struct {
	ID        uint32
	Title     string
	Value     string
	FailTitle bool
	FailValue bool
}

// Image is what every successful parse of a Backend yields.
type Image struct {
	Entries map[types.IFD][]Entry

	// MakerNotes is the maker note section. A nil slice means the image
	// has none unless HasMakerNotes forces an empty section.
	MakerNotes    []Note
	HasMakerNotes bool
}

// Backend is an instrumented fake of the native layer. It counts handle
// acquisition and release and records misuse (double free, use after free).
type Backend struct {
	Image  Image
	Reject bool // every parse returns null

	mu           sync.Mutex
	parses       int
	acquired     int
	released     int
	doubleFrees  int
	useAfterFree int
	countCalls   int
	idCalls      int
	lastPath     string
	lastBytes    int
}

// Install registers b under a name unique to t and unregisters it when the
// test ends. The returned name is passed to WithBackend.
func Install(t testing.TB, b *Backend) string {
	t.Helper()
	name := "fake/" + strings.ReplaceAll(t.Name(), " ", "_")
	registry.Register(name, b)
	t.Cleanup(func() { registry.Unregister(name) })
	return name
}

// InstallDefault registers b as the default backend for the duration of
// the test, restoring whatever was registered before. Tests using it must
// not run in parallel.
func InstallDefault(t testing.TB, b *Backend) {
	t.Helper()
	prev := registry.Get(registry.DefaultBackend)
	registry.Register(registry.DefaultBackend, b)
	t.Cleanup(func() {
		if prev == nil {
			registry.Unregister(registry.DefaultBackend)
			return
		}
		registry.Register(registry.DefaultBackend, prev)
	})
}

// ParseFile implements registry.Backend.
func (b *Backend) ParseFile(path string) (registry.Data, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.parses++
	b.lastPath = path
	return b.acquire()
}

// ParseBytes implements registry.Backend.
func (b *Backend) ParseBytes(data []byte) (registry.Data, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.parses++
	b.lastBytes = len(data)
	return b.acquire()
}

func (b *Backend) acquire() (registry.Data, bool) {
	if b.Reject {
		return nil, false
	}
	b.acquired++
	return &data{b: b}, true
}

// Parses returns the number of parse calls, successful or not.
func (b *Backend) Parses() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parses
}

// Acquired returns the number of handles handed out.
func (b *Backend) Acquired() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.acquired
}

// Released returns the number of first-time Free calls.
func (b *Backend) Released() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

// DoubleFrees returns the number of Free calls on already freed handles.
func (b *Backend) DoubleFrees() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doubleFrees
}

// UseAfterFree returns the number of calls made on freed handles.
func (b *Backend) UseAfterFree() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.useAfterFree
}

// CountCalls returns how many times a maker note count was requested.
func (b *Backend) CountCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.countCalls
}

// IDCalls returns how many maker note ids were read.
func (b *Backend) IDCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.idCalls
}

// LastPath returns the path of the most recent ParseFile call.
func (b *Backend) LastPath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastPath
}

// LastBytes returns the buffer length of the most recent ParseBytes call.
func (b *Backend) LastBytes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastBytes
}

type data struct {
	b     *Backend
	freed bool
}

// touch records a call on d and reports whether d is still live.
func (d *data) touch() bool {
	d.b.mu.Lock()
	defer d.b.mu.Unlock()
	if d.freed {
		d.b.useAfterFree++
		return false
	}
	return true
}

func (d *data) Free() {
	d.b.mu.Lock()
	defer d.b.mu.Unlock()
	if d.freed {
		d.b.doubleFrees++
		return
	}
	d.freed = true
	d.b.released++
}

func (d *data) Entry(ifd types.IFD, tag types.Tag) (registry.Entry, bool) {
	if !d.touch() {
		return nil, false
	}
	for _, e := range d.b.Image.Entries[ifd] {
		if e.Tag == tag {
			return &entry{d: d, e: e}, true
		}
	}
	return nil, false
}

func (d *data) EntryCount(ifd types.IFD) int {
	if !d.touch() {
		return 0
	}
	return len(d.b.Image.Entries[ifd])
}

func (d *data) EntryAt(ifd types.IFD, i int) (registry.Entry, bool) {
	if !d.touch() {
		return nil, false
	}
	entries := d.b.Image.Entries[ifd]
	if i < 0 || i >= len(entries) {
		return nil, false
	}
	return &entry{d: d, e: entries[i]}, true
}

func (d *data) MakerNotes() (registry.MakerNotes, bool) {
	if !d.touch() {
		return nil, false
	}
	if d.b.Image.MakerNotes == nil && !d.b.Image.HasMakerNotes {
		return nil, false
	}
	return &notes{d: d}, true
}

type entry struct {
	d *data
	e Entry
}

func (e *entry) Tag() types.Tag {
	return e.e.Tag
}

func (e *entry) Value(buf []byte) bool {
	if !e.d.touch() || e.e.Fail {
		return false
	}
	return fill(buf, e.e.Value)
}

type notes struct {
	d *data
}

func (n *notes) Count() uint32 {
	if !n.d.touch() {
		return 0
	}
	n.d.b.mu.Lock()
	n.d.b.countCalls++
	n.d.b.mu.Unlock()
	return uint32(len(n.d.b.Image.MakerNotes))
}

func (n *notes) ID(i uint32) uint32 {
	if !n.d.touch() {
		return 0
	}
	n.d.b.mu.Lock()
	n.d.b.idCalls++
	n.d.b.mu.Unlock()
	return n.d.b.Image.MakerNotes[i].ID
}

func (n *notes) Title(i uint32, buf []byte) bool {
	if !n.d.touch() {
		return false
	}
	note := n.d.b.Image.MakerNotes[i]
	if note.FailTitle {
		return false
	}
	return fill(buf, note.Title)
}

func (n *notes) Value(i uint32, buf []byte) bool {
	if !n.d.touch() {
		return false
	}
	note := n.d.b.Image.MakerNotes[i]
	if note.FailValue {
		return false
	}
	return fill(buf, note.Value)
}

// fill writes s into buf as NUL-terminated text, truncating like libexif.
// Bytes past the terminator are left as garbage to catch callers that read
// the whole buffer.
func fill(buf []byte, s string) bool {
	if len(buf) == 0 {
		return false
	}
	for i := range buf {
		buf[i] = 'x'
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
	return true
}
