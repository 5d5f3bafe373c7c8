package exifmeta

import (
	"github.com/simonhull/exifmeta/internal/registry"

	_ "github.com/simonhull/exifmeta/internal/libexif" // Register libexif backend (cgo builds)
)

// Backends returns the names of the registered native backends.
//
// Builds without cgo have none, and every Open call fails with
// ErrParseFailed.
func Backends() []string {
	return registry.Names()
}
