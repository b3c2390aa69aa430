// Package serializer implements the byte-buffer primitives the SHAMap
// node codec is built on: append/read fixed-width fields, chop bytes
// off the end, and hash the buffer (optionally with a
// domain-separation prefix prepended).
//
// The shape of this type is a direct transliteration of the
// Serializer class used throughout ripple_SHAMapTreeNode.cpp
// (add8/add32/add256/addRaw/get8/get256/chop/removeLastByte/
// getPrefixHash) into Go's slice idiom.
package serializer

import (
	"encoding/binary"

	"github.com/xrplf/go-shamap/common"
	"github.com/xrplf/go-shamap/crypto"
)

// Serializer is a byte buffer that grows by appending and shrinks only
// from the end (Chop, StripLastByte), with typed accessors.
type Serializer struct {
	buf []byte
}

// New returns an empty Serializer.
func New() *Serializer {
	return &Serializer{}
}

// NewFromBytes returns a Serializer wrapping a copy of b.
func NewFromBytes(b []byte) *Serializer {
	s := &Serializer{buf: make([]byte, len(b))}
	copy(s.buf, b)
	return s
}

// Len returns the number of bytes currently in the buffer.
func (s *Serializer) Len() int { return len(s.buf) }

// Bytes returns the buffer's current contents. The caller must not
// mutate the returned slice.
func (s *Serializer) Bytes() []byte { return s.buf }

// Add8 appends a single byte.
func (s *Serializer) Add8(v uint8) {
	s.buf = append(s.buf, v)
}

// Add32 appends a 32-bit value, big-endian.
func (s *Serializer) Add32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

// Add256 appends a 256-bit value.
func (s *Serializer) Add256(h common.Hash256) {
	s.buf = append(s.buf, h[:]...)
}

// AddRaw appends b verbatim.
func (s *Serializer) AddRaw(b []byte) {
	s.buf = append(s.buf, b...)
}

// Get8 reads a byte at offset off.
func (s *Serializer) Get8(off int) (uint8, error) {
	if off < 0 || off >= len(s.buf) {
		return 0, common.ErrShortBuffer
	}
	return s.buf[off], nil
}

// Get256 reads a 256-bit value at offset off.
func (s *Serializer) Get256(off int) (common.Hash256, error) {
	var h common.Hash256
	if off < 0 || off+common.HashLength > len(s.buf) {
		return h, common.ErrShortBuffer
	}
	copy(h[:], s.buf[off:off+common.HashLength])
	return h, nil
}

// Chop removes n bytes from the end of the buffer.
func (s *Serializer) Chop(n int) error {
	if n < 0 || n > len(s.buf) {
		return common.ErrShortBuffer
	}
	s.buf = s.buf[:len(s.buf)-n]
	return nil
}

// StripLastByte removes and returns the last byte of the buffer.
func (s *Serializer) StripLastByte() (uint8, error) {
	if len(s.buf) == 0 {
		return 0, common.ErrShortBuffer
	}
	last := s.buf[len(s.buf)-1]
	s.buf = s.buf[:len(s.buf)-1]
	return last, nil
}

// Hash returns the truncated-512 hash of the buffer's current contents.
func (s *Serializer) Hash() common.Hash256 {
	return crypto.Sha512HalfHash(s.buf)
}

// PrefixHash returns the truncated-512 hash of a 4-byte big-endian
// prefix concatenated with parts, without mutating the receiver.
func PrefixHash(prefix uint32, parts ...[]byte) common.Hash256 {
	var p [4]byte
	binary.BigEndian.PutUint32(p[:], prefix)
	all := make([][]byte, 0, len(parts)+1)
	all = append(all, p[:])
	all = append(all, parts...)
	return crypto.Sha512HalfHash(all...)
}
