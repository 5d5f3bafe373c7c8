package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer with position tracking and a fixed byte order.
// Test fixtures use it to lay out JPEG segments and TIFF directories.
type SafeWriter struct {
	w      io.Writer
	order  binary.ByteOrder
	offset int64
	err    error
}

// NewSafeWriter creates a SafeWriter that encodes integers using order.
func NewSafeWriter(w io.Writer, order binary.ByteOrder) *SafeWriter {
	return &SafeWriter{w: w, order: order}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// Order returns the writer's byte order.
func (sw *SafeWriter) Order() binary.ByteOrder {
	return sw.order
}

// WriteBytes writes raw bytes. After the first failure it does nothing.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	if sw.err != nil {
		return sw.err
	}
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	sw.err = err
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// Err returns the first write error, if any.
func (sw *SafeWriter) Err() error {
	return sw.err
}

// Write encodes val using the writer's byte order.
func Write[T Unsigned](sw *SafeWriter, val T) error {
	buf := make([]byte, sizeOf[T]())
	switch len(buf) {
	case 1:
		buf[0] = byte(val)
	case 2:
		sw.order.PutUint16(buf, uint16(val))
	case 4:
		sw.order.PutUint32(buf, uint32(val))
	default:
		sw.order.PutUint64(buf, uint64(val))
	}
	return sw.WriteBytes(buf)
}
