package exifmeta

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"sync"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

// MinBufferSize is the capacity of the output buffer handed to every native
// render call. libexif silently truncates text that does not fit; the size
// can be raised with WithBufferSize but never lowered.
const MinBufferSize = 1024

// Exif owns one parsed native metadata handle.
//
// All values returned by its methods are independent Go strings; nothing
// refers back into native memory. Methods are serialized on an internal
// mutex, so an Exif may be shared between goroutines, but calls never run
// concurrently against the same handle.
//
// Always call Close when done to release the native handle:
//
//	x, err := exifmeta.Open("DSC_5613.jpg")
//	if err != nil {
//		return err
//	}
//	defer x.Close()
type Exif struct {
	// Path of the parsed file, "" for in-memory input
	Path string

	// Container the EXIF block was found in
	Format Format

	// Input size in bytes
	Size int64

	mu         sync.Mutex
	data       registry.Data // nil once closed
	bufferSize int
	cleanup    runtime.Cleanup
}

// Open parses the EXIF metadata of the JPEG file at path.
//
// The file is checked for an EXIF block before the native parser runs.
// Every failure (missing file, unreadable file, no EXIF block, native
// rejection) satisfies errors.Is(err, ErrParseFailed) and no native handle
// is held afterwards.
//
// Example:
//
//	x, err := exifmeta.Open("DSC_5613.jpg")
//	if err != nil {
//		return err
//	}
//	defer x.Close()
//	camera, _ := x.EntryValue(exifmeta.IFD0, exifmeta.TagMake)
func Open(path string, opts ...Option) (*Exif, error) {
	options := applyOptions(opts)

	backend, err := options.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "open file", Err: err}
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	stat, err := f.Stat()
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "stat file", Err: err}
	}
	size := stat.Size()

	if err := options.checkSize(path, size); err != nil {
		return nil, err
	}

	format, err := DetectFormat(f, size, path)
	if err != nil {
		return nil, err
	}

	data, ok := backend.ParseFile(path)
	if !ok {
		return nil, &ParseError{Path: path, Reason: "native parser returned no data"}
	}

	return newExif(data, path, format, size, options), nil
}

// OpenBytes parses EXIF metadata from an in-memory JPEG stream or bare EXIF
// block ("Exif\0\0" header followed by TIFF data).
//
// The EXIF block is located in Go and only that block reaches the native
// parser.
//
// Buffers without a recognisable EXIF segment fail with ErrParseFailed
// before any native call is made. data is not retained.
func OpenBytes(data []byte, opts ...Option) (*Exif, error) {
	options := applyOptions(opts)

	backend, err := options.resolveBackend("")
	if err != nil {
		return nil, err
	}

	size := int64(len(data))
	if uint64(len(data)) > math.MaxUint32 {
		return nil, &ParseError{Reason: fmt.Sprintf("buffer of %d bytes exceeds native length limit", size)}
	}
	if err := options.checkSize("", size); err != nil {
		return nil, err
	}

	loc, err := types.Locate(bytes.NewReader(data), size, "")
	if err != nil {
		return nil, err
	}

	// Hand over only the EXIF block so in-memory input is loaded the same
	// way as files, whatever APP1 segments precede it.
	d, ok := backend.ParseBytes(data[loc.Offset : loc.Offset+loc.Length])
	if !ok {
		return nil, &ParseError{Reason: "native parser returned no data"}
	}

	return newExif(d, "", loc.Format, size, options), nil
}

// newExif takes ownership of data. The cleanup frees the handle if the
// Exif becomes unreachable without Close; Close cancels it.
func newExif(data registry.Data, path string, format Format, size int64, options *openOptions) *Exif {
	x := &Exif{
		Path:       path,
		Format:     format,
		Size:       size,
		data:       data,
		bufferSize: options.bufferSize,
	}
	x.cleanup = runtime.AddCleanup(x, func(d registry.Data) { d.Free() }, data)
	return x
}

// Close releases the native handle.
//
// The handle is freed exactly once: later calls are no-ops returning nil,
// and any query after Close returns ErrClosed.
func (x *Exif) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.data == nil {
		return nil
	}
	x.cleanup.Stop()
	x.data.Free()
	x.data = nil
	return nil
}

// EntryValue returns the human readable value of tag in ifd.
//
// A tag absent from ifd returns an error satisfying
// errors.Is(err, ErrEntryNotFound); this is the common case, most
// directories lack most tags. The value is rendered fresh on every call.
//
// Example:
//
//	taken, err := x.EntryValue(exifmeta.IFDExif, exifmeta.TagDateTimeOriginal)
//	// taken == "2023:07:25 05:29:51"
func (x *Exif) EntryValue(ifd IFD, tag Tag) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.data == nil {
		return "", ErrClosed
	}
	if !ifd.Valid() {
		return "", &EntryNotFoundError{IFD: ifd, Tag: tag}
	}

	e, ok := x.data.Entry(ifd, tag)
	if !ok {
		return "", &EntryNotFoundError{IFD: ifd, Tag: tag}
	}
	return x.render(e.Value, fmt.Sprintf("%s %s", ifd, tag.NameIn(ifd)))
}

// Entries returns every entry stored in ifd, in native order.
//
// Entries whose value cannot be rendered are left out and reported in the
// returned error (a *multierror.Error); the remaining entries are still
// returned.
func (x *Exif) Entries(ifd IFD) ([]Entry, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.data == nil {
		return nil, ErrClosed
	}
	if !ifd.Valid() {
		return nil, fmt.Errorf("entries of %s: %w", ifd, ErrEntryNotFound)
	}

	n := x.data.EntryCount(ifd)
	entries := make([]Entry, 0, n)
	var errs *multierror.Error

	for i := range n {
		e, ok := x.data.EntryAt(ifd, i)
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("%s entry %d: %w", ifd, i, ErrExifFailed))
			continue
		}
		tag := e.Tag()
		value, err := x.render(e.Value, fmt.Sprintf("%s %s", ifd, tag.NameIn(ifd)))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		entries = append(entries, Entry{IFD: ifd, Tag: tag, Value: value})
	}

	return entries, errs.ErrorOrNil()
}

// HasMakerNotes reports whether libexif decoded a maker note section.
func (x *Exif) HasMakerNotes() bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.data == nil {
		return false
	}
	_, ok := x.data.MakerNotes()
	return ok
}

// MakerNote looks up a manufacturer-specific maker note tag by id.
//
// The section is scanned in native order and the first position with a
// matching id wins. Errors:
//   - ErrMakerNoteNotFound: the image has no (decodable) maker note section
//   - ErrMNoteTagNotFound: the section exists but lacks id
//   - ErrExifFailed: libexif could not render the title or value
//
// Title and value are returned together or not at all.
//
// Example:
//
//	// 0x0084 is the lens type in Nikon maker notes.
//	lens, err := x.MakerNote(0x0084)
//	// lens.Value == "55-300mm 1:4.5 - 5.6"
func (x *Exif) MakerNote(id uint32) (MakerNoteData, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.data == nil {
		return MakerNoteData{}, ErrClosed
	}

	notes, ok := x.data.MakerNotes()
	if !ok {
		return MakerNoteData{}, ErrMakerNoteNotFound
	}

	count := notes.Count()
	for i := range count {
		if notes.ID(i) != id {
			continue
		}
		return x.makerNoteAt(notes, i, id)
	}

	return MakerNoteData{}, &MakerNoteTagError{ID: id}
}

// MakerNotes returns the whole maker note section in native order.
//
// Positions that cannot be rendered are left out and reported in the
// returned error (a *multierror.Error).
func (x *Exif) MakerNotes() ([]MakerNoteData, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.data == nil {
		return nil, ErrClosed
	}

	notes, ok := x.data.MakerNotes()
	if !ok {
		return nil, ErrMakerNoteNotFound
	}

	count := notes.Count()
	out := make([]MakerNoteData, 0, count)
	var errs *multierror.Error

	for i := range count {
		note, err := x.makerNoteAt(notes, i, notes.ID(i))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		out = append(out, note)
	}

	return out, errs.ErrorOrNil()
}

// makerNoteAt renders title and value of position i into separate buffers.
func (x *Exif) makerNoteAt(notes registry.MakerNotes, i, id uint32) (MakerNoteData, error) {
	title, err := x.render(func(buf []byte) bool { return notes.Title(i, buf) },
		fmt.Sprintf("maker note 0x%04x title", id))
	if err != nil {
		return MakerNoteData{}, err
	}

	value, err := x.render(func(buf []byte) bool { return notes.Value(i, buf) },
		fmt.Sprintf("maker note 0x%04x value", id))
	if err != nil {
		return MakerNoteData{}, err
	}

	return MakerNoteData{TagID: id, Title: title, Value: value}, nil
}

// render runs one native render call into a fresh buffer and copies the
// text out.
func (x *Exif) render(fill func(buf []byte) bool, what string) (string, error) {
	buf := make([]byte, x.bufferSize)
	if !fill(buf) {
		return "", fmt.Errorf("%s: %w", what, ErrExifFailed)
	}
	return copyText(buf, what)
}

// copyText cuts buf at the first NUL and converts it to a string. Text that
// is not valid UTF-8 is rejected rather than repaired.
func copyText(buf []byte, what string) (string, error) {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	if !utf8.Valid(buf) {
		off := 0
		for off < len(buf) {
			r, size := utf8.DecodeRune(buf[off:])
			if r == utf8.RuneError && size <= 1 {
				break
			}
			off += size
		}
		return "", &InvalidTextError{What: what, Offset: off}
	}

	return string(buf), nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before starting; a native parse call in progress
// cannot be interrupted.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Exif, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines, each
// file getting its own handle. Results are returned in input order.
//
// If any file fails to open, every successfully opened file is closed and
// the first error is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := exifmeta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, x := range files {
//			x.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths ...string) ([]*Exif, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Exif, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			x, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = x
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, x := range results {
			if x != nil {
				x.Close() //nolint:errcheck // Close never fails
			}
		}
		return nil, err
	}

	return results, nil
}
