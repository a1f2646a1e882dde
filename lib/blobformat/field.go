// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Encoded widths of the primitive fields.
const (
	uint16Size   = 2
	uint32Size   = 4
	float32Size  = 4
	float64Size  = 8
	vec2Size     = 2 * float32Size
	vec3Size     = 3 * float32Size
	triangleSize = 3 * uint32Size

	// reservedWordSize is the width of one reserved placeholder word.
	reservedWordSize = uint32Size
)

// fieldReader decodes little-endian fields from a fully materialized
// buffer. It never indexes past len(data): every read is bounds-checked
// and fails with an IOError naming the field and offset.
type fieldReader struct {
	data   []byte
	offset int
}

func newFieldReader(data []byte) *fieldReader {
	return &fieldReader{data: data}
}

// remaining returns the number of unread bytes.
func (r *fieldReader) remaining() int {
	return len(r.data) - r.offset
}

// need verifies that count elements of elementSize bytes fit in the
// unread portion of the buffer. Array decoders call this before
// allocating so that a corrupt count cannot trigger a huge allocation.
func (r *fieldReader) need(count uint32, elementSize int, field string) error {
	return r.needBytes(uint64(count)*uint64(elementSize), field)
}

// needBytes verifies that total bytes remain unread.
func (r *fieldReader) needBytes(total uint64, field string) error {
	if total > uint64(r.remaining()) {
		return &IOError{
			Field:  field,
			Offset: r.offset,
			Err: fmt.Errorf("declared payload needs %d bytes, %d remain: %w",
				total, r.remaining(), io.ErrUnexpectedEOF),
		}
	}
	return nil
}

// take returns the next n bytes and advances past them.
func (r *fieldReader) take(n int, field string) ([]byte, error) {
	if n > r.remaining() {
		return nil, &IOError{
			Field:  field,
			Offset: r.offset,
			Err: fmt.Errorf("need %d bytes, %d remain: %w",
				n, r.remaining(), io.ErrUnexpectedEOF),
		}
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *fieldReader) uint16(field string) (uint16, error) {
	b, err := r.take(uint16Size, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *fieldReader) uint32(field string) (uint32, error) {
	b, err := r.take(uint32Size, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *fieldReader) float64(field string) (float64, error) {
	b, err := r.take(float64Size, field)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// flag reads a uint32 boolean. Any non-zero value is true.
func (r *fieldReader) flag(field string) (bool, error) {
	value, err := r.uint32(field)
	if err != nil {
		return false, err
	}
	return value != 0, nil
}

func (r *fieldReader) vec2(field string) ([2]float32, error) {
	b, err := r.take(vec2Size, field)
	if err != nil {
		return [2]float32{}, err
	}
	return [2]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
	}, nil
}

func (r *fieldReader) vec3(field string) ([3]float32, error) {
	b, err := r.take(vec3Size, field)
	if err != nil {
		return [3]float32{}, err
	}
	return [3]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}, nil
}

func (r *fieldReader) triangle(field string) ([3]uint32, error) {
	b, err := r.take(triangleSize, field)
	if err != nil {
		return [3]uint32{}, err
	}
	return [3]uint32{
		binary.LittleEndian.Uint32(b[0:]),
		binary.LittleEndian.Uint32(b[4:]),
		binary.LittleEndian.Uint32(b[8:]),
	}, nil
}

// string reads a uint32 length followed by exactly that many bytes. The
// format carries no terminator and the logical length is the declared
// length; embedded NUL bytes are kept.
func (r *fieldReader) string(field string) (string, error) {
	length, err := r.uint32(field + " length")
	if err != nil {
		return "", err
	}
	if err := r.need(length, 1, field); err != nil {
		return "", err
	}
	b, err := r.take(int(length), field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// indices reads a uint32 count followed by that many uint32 values.
func (r *fieldReader) indices(field string) ([]uint32, error) {
	count, err := r.uint32(field + " count")
	if err != nil {
		return nil, err
	}
	if err := r.need(count, uint32Size, field); err != nil {
		return nil, err
	}
	values := make([]uint32, count)
	for i := range values {
		values[i], err = r.uint32(field)
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// skipReserved consumes words reserved placeholder words without
// interpreting them. Reserved bytes only gain meaning in a later
// revision that repurposes the offset.
func (r *fieldReader) skipReserved(words int, field string) error {
	_, err := r.take(words*reservedWordSize, field)
	return err
}

// fieldWriter appends little-endian fields to a buffer. Encoders size
// the buffer exactly up front from the revision's encodedSize, so a
// finished write never reallocates.
type fieldWriter struct {
	data []byte
}

func newFieldWriter(size int) *fieldWriter {
	return &fieldWriter{data: make([]byte, 0, size)}
}

func (w *fieldWriter) uint16(value uint16) {
	w.data = binary.LittleEndian.AppendUint16(w.data, value)
}

func (w *fieldWriter) uint32(value uint32) {
	w.data = binary.LittleEndian.AppendUint32(w.data, value)
}

func (w *fieldWriter) float32(value float32) {
	w.data = binary.LittleEndian.AppendUint32(w.data, math.Float32bits(value))
}

func (w *fieldWriter) float64(value float64) {
	w.data = binary.LittleEndian.AppendUint64(w.data, math.Float64bits(value))
}

func (w *fieldWriter) flag(value bool) {
	if value {
		w.uint32(1)
		return
	}
	w.uint32(0)
}

func (w *fieldWriter) vec2(v [2]float32) {
	w.float32(v[0])
	w.float32(v[1])
}

func (w *fieldWriter) vec3(v [3]float32) {
	w.float32(v[0])
	w.float32(v[1])
	w.float32(v[2])
}

func (w *fieldWriter) triangle(t [3]uint32) {
	w.uint32(t[0])
	w.uint32(t[1])
	w.uint32(t[2])
}

// string writes the length prefix and the raw bytes. No terminator.
func (w *fieldWriter) string(s string) {
	w.uint32(uint32(len(s)))
	w.data = append(w.data, s...)
}

func (w *fieldWriter) indices(values []uint32) {
	w.uint32(uint32(len(values)))
	for _, v := range values {
		w.uint32(v)
	}
}

// reserved writes words zero placeholder words.
func (w *fieldWriter) reserved(words int) {
	for i := 0; i < words; i++ {
		w.uint32(0)
	}
}

// stringSize is the encoded size of s.
func stringSize(s string) int {
	return uint32Size + len(s)
}

// indicesSize is the encoded size of a count-prefixed index list.
func indicesSize(values []uint32) int {
	return uint32Size + len(values)*uint32Size
}
