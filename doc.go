// Package exifmeta provides memory-safe access to EXIF metadata parsed by
// libexif.
//
// libexif does the decoding. exifmeta owns the native handle it returns,
// copies every rendered value into a Go string before handing it out, and
// turns every null result into a typed error. No native pointer ever
// reaches the caller.
//
// # Quick Start
//
// Reading metadata from a JPEG file:
//
//	x, err := exifmeta.Open("DSC_5613.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer x.Close()
//
//	taken, err := x.EntryValue(exifmeta.IFDExif, exifmeta.TagDateTimeOriginal)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("The picture was taken on:", taken)
//
// # Maker Notes
//
// Most camera manufacturers store extra data in the MakerNote tag. Ids are
// vendor specific (see https://exiftool.org/TagNames/index.html) and
// libexif cannot decode every vendor's encoding:
//
//	camera, _ := x.EntryValue(exifmeta.IFD0, exifmeta.TagMake)
//	if camera == "NIKON CORPORATION" {
//		// 0x0084 is the lens type in Nikon maker notes.
//		lens, err := x.MakerNote(0x0084)
//		if err == nil {
//			fmt.Println("The lens used was:", lens.Value)
//		}
//	}
//
// # Architecture
//
//	[Exif]                - owns one native handle (Open / OpenBytes / Close)
//	  ├─ EntryValue       - one tag of one IFD, rendered as text
//	  ├─ Entries          - every tag of one IFD
//	  └─ MakerNote(s)     - manufacturer tags, linear scan by id
//	[internal/registry]   - backend interfaces, one call per C function
//	[internal/libexif]    - cgo binding, registered as "libexif"
//
// # Resource Handling
//
// Each Exif owns exactly one handle. Close frees it exactly once; further
// Close calls are no-ops and queries return ErrClosed. A handle whose Exif
// becomes unreachable without Close is freed by a runtime cleanup. A failed
// Open or OpenBytes never leaves a handle behind.
//
// Values are rendered into a fixed buffer of MinBufferSize bytes (raise it
// with WithBufferSize). libexif truncates longer values.
//
// # Error Handling
//
// Every failure is a returned error, testable with errors.Is:
//
//   - ErrParseFailed: input rejected at construction (bad path, no EXIF)
//   - ErrEntryNotFound: the IFD has no such tag (common, not fatal)
//   - ErrMakerNoteNotFound: no maker note section at all
//   - ErrMNoteTagNotFound: section present, id absent
//   - ErrExifFailed: libexif returned null mid-render
//   - ErrInvalidText: libexif produced text that is not UTF-8
//
// # Concurrency
//
// Calls on one Exif are serialized by an internal mutex; libexif does not
// promise thread safety for a single handle. For parallel reads open one
// Exif per goroutine, or use OpenMany:
//
//	files, err := exifmeta.OpenMany(ctx, paths...)
//
// # Building
//
// The libexif backend needs cgo and libexif >= 0.6.24 visible to
// pkg-config. Without cgo the package still builds but Backends() is empty.
package exifmeta
