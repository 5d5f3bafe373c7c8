//go:build !cgo

package libexif
