package ste

import (
	"encoding/binary"
	"fmt"
)

// TagSize is the size in bytes of an STE bit-mask, byte-mask or tag.
const TagSize = 16

// Field locates one hardware field inside an STE record. Records are four
// big-endian 32-bit words and bit offset 0 is the most significant bit of
// byte 0. A field never crosses a word.
type Field struct {
	Name   string
	Offset uint16
	Width  uint8
}

// NewField returns the field of width bits starting at offset. It panics on
// a descriptor that does not fit in a single record word.
func NewField(name string, offset, width int) Field {
	if width < 1 || width > 32 {
		panic(fmt.Errorf("field %s: width %d out of range", name, width))
	}
	if offset < 0 || offset+width > TagSize*8 || offset/32 != (offset+width-1)/32 {
		panic(fmt.Errorf("field %s: offset %#x width %d crosses a record word", name, offset, width))
	}
	return Field{Name: name, Offset: uint16(offset), Width: uint8(width)}
}

// Ones is the all-ones value of the field.
func (f Field) Ones() uint32 {
	if f.Width == 32 {
		return ^uint32(0)
	}
	return uint32(1)<<f.Width - 1
}

func (f Field) word() int {
	return int(f.Offset/32) * 4
}

func (f Field) shift() uint {
	return uint(32 - f.Offset%32 - uint16(f.Width))
}

// Set ORs v, truncated to the field width, into buf.
func (f Field) Set(buf []byte, v uint32) {
	w := f.word()
	cur := binary.BigEndian.Uint32(buf[w : w+4])
	binary.BigEndian.PutUint32(buf[w:w+4], cur|(v&f.Ones())<<f.shift())
}

// Get reads the field back from buf.
func (f Field) Get(buf []byte) uint32 {
	w := f.word()
	return binary.BigEndian.Uint32(buf[w:w+4]) >> f.shift() & f.Ones()
}

type specField interface {
	~uint8 | ~uint16 | ~uint32
}

// SetTag writes a match field into buf and consumes it. A zero field is
// left alone, so an absent mask field stays a don't-care.
func SetTag[T specField](buf []byte, f Field, spec *T) {
	if *spec == 0 {
		return
	}
	f.Set(buf, uint32(*spec))
	*spec = 0
}

// SetOnes writes the all-ones value of f when the match field is present
// and consumes the match field.
func SetOnes[T specField](buf []byte, f Field, spec *T) {
	if *spec == 0 {
		return
	}
	f.Set(buf, f.Ones())
	*spec = 0
}
