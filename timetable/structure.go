package timetable

import "fmt"

// FieldType is the width of one field within a flattened record.
type FieldType int

const (
	U8 FieldType = iota
	U16
	S32
)

func (t FieldType) size() int {
	switch t {
	case U8:
		return 1
	case U16:
		return 2
	case S32:
		return 4
	default:
		panic(fmt.Sprintf("timetable: unknown field type %d", t))
	}
}

// Structure describes a flattened record layout: an ordered sequence of
// fixed-width fields. Field offsets are computed once at construction.
type Structure struct {
	offsets   []int
	totalSize int
}

// NewStructure builds a Structure from the given field types, in order.
func NewStructure(fields ...FieldType) Structure {
	offsets := make([]int, len(fields))
	total := 0
	for i, f := range fields {
		offsets[i] = total
		total += f.size()
	}
	return Structure{offsets: offsets, totalSize: total}
}

// TotalSize returns the size in bytes of one record.
func (s Structure) TotalSize() int {
	return s.totalSize
}

// Offset returns the byte offset of fieldIndex within elementIndex's record.
func (s Structure) Offset(fieldIndex, elementIndex int) int {
	return elementIndex*s.totalSize + s.offsets[fieldIndex]
}

// StructuredBuffer is a byte slice interpreted as a contiguous array of
// fixed-size records described by a Structure.
type StructuredBuffer struct {
	structure Structure
	buf       []byte
	size      int
}

// NewStructuredBuffer wraps buf, which must have a length that is an exact
// multiple of structure.TotalSize().
func NewStructuredBuffer(structure Structure, buf []byte) StructuredBuffer {
	recordSize := structure.TotalSize()
	if recordSize == 0 {
		panic("timetable: structure has zero record size")
	}
	if len(buf)%recordSize != 0 {
		panic(fmt.Sprintf("timetable: buffer length %d is not a multiple of record size %d", len(buf), recordSize))
	}
	return StructuredBuffer{structure: structure, buf: buf, size: len(buf) / recordSize}
}

// Size returns the number of records in the buffer.
func (b StructuredBuffer) Size() int {
	return b.size
}

// GetU8 reads an unsigned 8-bit field.
func (b StructuredBuffer) GetU8(fieldIndex, elementIndex int) int {
	off := b.structure.Offset(fieldIndex, elementIndex)
	return int(b.buf[off])
}

// GetU16 reads a big-endian unsigned 16-bit field.
func (b StructuredBuffer) GetU16(fieldIndex, elementIndex int) int {
	off := b.structure.Offset(fieldIndex, elementIndex)
	return int(b.buf[off])<<8 | int(b.buf[off+1])
}

// GetS32 reads a big-endian signed 32-bit field.
func (b StructuredBuffer) GetS32(fieldIndex, elementIndex int) int32 {
	off := b.structure.Offset(fieldIndex, elementIndex)
	return int32(b.buf[off])<<24 | int32(b.buf[off+1])<<16 | int32(b.buf[off+2])<<8 | int32(b.buf[off+3])
}
