package exifmeta

import (
	"fmt"
	"strings"

	"github.com/simonhull/exifmeta/internal/registry"
)

// Option configures behavior when opening EXIF data.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	x, err := exifmeta.Open("DSC_5613.jpg",
//	    exifmeta.WithBufferSize(4096),
//	    exifmeta.WithMaxSize(64<<20),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	bufferSize int    // Native render buffer capacity, >= MinBufferSize
	maxSize    int64  // Maximum input size in bytes (0 = no limit)
	backend    string // Registered backend name
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		bufferSize: MinBufferSize,
		maxSize:    0, // No limit
		backend:    registry.DefaultBackend,
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// resolveBackend looks up the configured backend. A missing backend is a
// parse failure: nothing can be parsed and no handle is created.
func (o *openOptions) resolveBackend(path string) (registry.Backend, error) {
	b := registry.Get(o.backend)
	if b == nil {
		reason := fmt.Sprintf("no %q backend registered", o.backend)
		if names := registry.Names(); len(names) > 0 {
			reason += " (available: " + strings.Join(names, ", ") + ")"
		}
		return nil, &ParseError{Path: path, Reason: reason}
	}
	return b, nil
}

func (o *openOptions) checkSize(path string, size int64) error {
	if o.maxSize > 0 && size > o.maxSize {
		return &ParseError{
			Path:   path,
			Reason: fmt.Sprintf("input size %d exceeds limit %d", size, o.maxSize),
		}
	}
	return nil
}

// WithBufferSize sets the capacity of the buffer each tag or maker note
// value is rendered into.
//
// libexif truncates values that do not fit; the default of MinBufferSize
// (1024 bytes) is enough for everything but long comments and binary
// dumps. Sizes below MinBufferSize are raised to it.
//
// Example:
//
//	x, err := exifmeta.Open("scan.jpg", exifmeta.WithBufferSize(64*1024))
func WithBufferSize(n int) Option {
	return func(o *openOptions) {
		o.bufferSize = max(n, MinBufferSize)
	}
}

// WithMaxSize rejects input larger than the given number of bytes before
// it reaches the native parser.
//
// Default is 0 (no limit).
//
// Example:
//
//	// Refuse anything over 64MB
//	x, err := exifmeta.OpenBytes(upload, exifmeta.WithMaxSize(64<<20))
func WithMaxSize(bytes int64) Option {
	return func(o *openOptions) {
		o.maxSize = bytes
	}
}

// WithBackend selects a registered native backend by name.
//
// The default is "libexif", available when built with cgo. See Backends.
func WithBackend(name string) Option {
	return func(o *openOptions) {
		o.backend = name
	}
}
