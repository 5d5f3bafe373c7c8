// Package libexif binds the libexif C library (>= 0.6.24) through cgo.
//
// The binding is a one-to-one declaration surface: it checks nothing
// beyond turning null results into ok == false and never frees anything on
// its own. It registers itself as the "libexif" backend on init.
//
// libexif is located with pkg-config at build time:
//
//	curl -L https://github.com/libexif/libexif/releases/download/v0.6.24/libexif-0.6.24.tar.bz2 | tar -jx
//	cd libexif-0.6.24 && ./configure && make && sudo make install
//
// Without cgo the package is empty and no backend is registered.
package libexif
