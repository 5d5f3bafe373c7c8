// Package registry is the seam between the safe wrapper and a native EXIF
// library. Backends register themselves from init functions.
//
// The interfaces mirror the native C API one call at a time. They carry no
// policy: a null result is reported as ok == false, and every buffer is
// allocated by the caller. Checking results, sizing buffers, validating
// text and freeing handles exactly once is the wrapper's job.
package registry

import (
	"maps"
	"slices"
	"sync"

	"github.com/simonhull/exifmeta/internal/types"
)

// DefaultBackend is the name the cgo libexif binding registers under.
const DefaultBackend = "libexif"

// Backend acquires native metadata handles.
type Backend interface {
	// ParseFile parses the file at path. ok is false when the native call
	// returned null; no handle exists in that case.
	ParseFile(path string) (d Data, ok bool)

	// ParseBytes parses an in-memory JPEG stream or EXIF block.
	ParseBytes(b []byte) (d Data, ok bool)
}

// Data is one owned native handle.
type Data interface {
	// Entry looks up tag in ifd. ok is false when the entry is absent.
	// ifd must be valid.
	Entry(ifd types.IFD, tag types.Tag) (e Entry, ok bool)

	// EntryCount returns the number of entries stored in ifd.
	EntryCount(ifd types.IFD) int

	// EntryAt returns the entry at position i in ifd, 0 <= i < EntryCount.
	EntryAt(ifd types.IFD, i int) (e Entry, ok bool)

	// MakerNotes returns the maker note collection, ok is false when the
	// handle exposes none. The collection is owned by the handle.
	MakerNotes() (m MakerNotes, ok bool)

	// Free releases the handle. Calling it twice is undefined.
	Free()
}

// Entry is one tag inside one IFD of a handle.
type Entry interface {
	Tag() types.Tag

	// Value renders the entry as NUL-terminated text into buf. ok is false
	// when the native call returned null.
	Value(buf []byte) (ok bool)
}

// MakerNotes is a maker note collection addressed by position.
type MakerNotes interface {
	Count() uint32
	ID(i uint32) uint32

	// Title copies the human readable title of position i into buf as
	// NUL-terminated text, truncating to fit.
	Title(i uint32, buf []byte) (ok bool)

	// Value renders the value of position i into buf as NUL-terminated text.
	Value(i uint32, buf []byte) (ok bool)
}

var (
	mu       sync.RWMutex
	backends = make(map[string]Backend)
)

// Register registers a backend under name, replacing any previous one.
// This is called by backend packages during initialization (init functions).
func Register(name string, b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backends[name] = b
}

// Get returns the backend registered under name, or nil.
func Get(name string) Backend {
	mu.RLock()
	defer mu.RUnlock()
	return backends[name]
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

// Unregister removes the backend registered under name.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(backends, name)
}
