// Command exif-dump prints every EXIF entry and maker note libexif decodes.
//
// Useful to confirm what we're able to actually read from a given camera.
//
// Usage:
//
//	exif-dump [-mnote 0x84] [-buffer 4096] [-max-size 67108864] <file.jpg|file.jpg.gz|file.jpg.zst>...
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/simonhull/exifmeta"
)

// defaultMaxSize caps both plain input and decompressed output.
const defaultMaxSize = 64 << 20

func main() {
	log.SetFlags(0)
	log.SetPrefix("exif-dump: ")

	mnote := flag.String("mnote", "", "look up a single maker note id (e.g. 0x84) instead of dumping the section")
	buffer := flag.Int("buffer", exifmeta.MinBufferSize, "render buffer size in bytes")
	maxSize := flag.Int64("max-size", defaultMaxSize, "largest input accepted, after decompression (0 = no limit)")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: exif-dump [flags] <file>...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var id *uint32
	if *mnote != "" {
		v, err := strconv.ParseUint(*mnote, 0, 32)
		if err != nil {
			log.Fatalf("invalid -mnote %q: %v", *mnote, err)
		}
		u := uint32(v)
		id = &u
	}

	var errs *multierror.Error
	for _, path := range flag.Args() {
		if err := dump(os.Stdout, path, id, *maxSize, exifmeta.WithBufferSize(*buffer)); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// dump prints path to w. limit bounds the input size in bytes, and for
// compressed input the decompressed size; 0 means no limit.
func dump(w io.Writer, path string, id *uint32, limit int64, opts ...exifmeta.Option) error {
	x, err := open(path, limit, append(opts, exifmeta.WithMaxSize(limit))...)
	if err != nil {
		return err
	}
	defer x.Close()

	fmt.Fprintf(w, "%s (%s, %d bytes)\n", path, x.Format, x.Size)

	if id != nil {
		note, err := x.MakerNote(*id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\n", note)
		return nil
	}

	var errs *multierror.Error
	for _, ifd := range exifmeta.IFDs {
		entries, err := x.Entries(ifd)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "  [%s]\n", ifd)
		for _, e := range entries {
			fmt.Fprintf(w, "    %-28s %s\n", e.Name(), e.Value)
		}
	}

	notes, err := x.MakerNotes()
	if errors.Is(err, exifmeta.ErrMakerNoteNotFound) {
		return errs.ErrorOrNil()
	}
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if len(notes) > 0 {
		fmt.Fprintf(w, "  [MakerNote]\n")
		for _, n := range notes {
			fmt.Fprintf(w, "    0x%04x %-21s %s\n", n.TagID, n.Title, n.Value)
		}
	}

	return errs.ErrorOrNil()
}

// open parses path directly, or from memory when it is compressed.
// Decompression stops once more than limit bytes have been produced.
func open(path string, limit int64, opts ...exifmeta.Option) (*exifmeta.Exif, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		data, err := gunzip(path, limit)
		if err != nil {
			return nil, err
		}
		return exifmeta.OpenBytes(data, opts...)
	case strings.HasSuffix(path, ".zst"):
		data, err := unzstd(path, limit)
		if err != nil {
			return nil, err
		}
		return exifmeta.OpenBytes(data, opts...)
	default:
		return exifmeta.Open(path, opts...)
	}
}

func gunzip(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()

	var src io.Reader = zr
	if limit > 0 {
		src = io.LimitReader(zr, limit+1)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, src); err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	if limit > 0 && int64(buf.Len()) > limit {
		return nil, fmt.Errorf("gzip: decompressed size exceeds limit %d", limit)
	}
	return buf.Bytes(), nil
}

func unzstd(path string, limit int64) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dopts []zstd.DOption
	if limit > 0 {
		dopts = append(dopts, zstd.WithDecoderMaxMemory(uint64(limit)))
	}
	dec, err := zstd.NewReader(nil, dopts...)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	data, err := dec.DecodeAll(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("zstd: decompressed size exceeds limit %d", limit)
	}
	return data, nil
}
