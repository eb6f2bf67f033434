// Package wire implements the two pipe wire formats: the frame payload
// (8-byte little-endian width/height header followed by raw pixel bytes)
// and the transform payload (64 bytes, 16 little-endian float32, row-major
// 4×4 matrix).
package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

const (
	// FrameHeaderSize is the fixed prefix of every outbound frame payload.
	FrameHeaderSize = 8
	// TransformRecordSize is the exact size of one inbound transform record.
	TransformRecordSize = 16 * 4
)

var (
	ErrMalformedFrame   = errors.New("wire: frame payload shorter than 8-byte header")
	ErrCorruptTransform = errors.New("wire: transform record is not 64 bytes")
)

// Matrix is a row-major 4×4 transform matrix.
type Matrix [16]float32

// EncodeFrame frames a pixel buffer for the outbound pipe. Pixel length is
// forwarded verbatim; it is never validated against width*height.
func EncodeFrame(width, height uint32, pixels []byte) []byte {
	buf := make([]byte, FrameHeaderSize+len(pixels))
	binary.LittleEndian.PutUint32(buf[0:4], width)
	binary.LittleEndian.PutUint32(buf[4:8], height)
	copy(buf[FrameHeaderSize:], pixels)
	return buf
}

// FrameHeader extracts width and height from a framed payload.
func FrameHeader(payload []byte) (width, height uint32, err error) {
	if len(payload) < FrameHeaderSize {
		return 0, 0, ErrMalformedFrame
	}
	return binary.LittleEndian.Uint32(payload[0:4]), binary.LittleEndian.Uint32(payload[4:8]), nil
}

// EncodeTransform serializes a matrix into one 64-byte record.
func EncodeTransform(m Matrix) []byte {
	buf := make([]byte, TransformRecordSize)
	for i, f := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// DecodeTransform reads one 64-byte record. A wrong-size buffer yields the
// all-zero matrix together with ErrCorruptTransform; callers keep the zero
// matrix and count the corruption rather than tearing down the stream.
func DecodeTransform(buf []byte) (Matrix, error) {
	var m Matrix
	if len(buf) != TransformRecordSize {
		return m, ErrCorruptTransform
	}
	for i := range m {
		m[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return m, nil
}
