// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

package common

import (
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
)

// HashLength is the expected length of a Hash256 in bytes.
const HashLength = 32

// Domain-separation prefixes for the four hash-prefixed encodings this
// module produces/consumes. Values match the reference network's own
// HashPrefix table byte-for-byte; peers reject a node whose PREFIX
// encoding or hash uses anything else.
const (
	PrefixTransactionID uint32 = 0x54584E00 // 'TXN\0'
	PrefixTxNode        uint32 = 0x534E4400 // 'SND\0'
	PrefixLeafNode      uint32 = 0x4D4C4E00 // 'MLN\0'
	PrefixInnerNode     uint32 = 0x4D494E00 // 'MIN\0'
)

// Hash256 represents a 256-bit digest or tag: a SHAMap node hash, a
// transaction id, or an account-state key. The zero value is the zero
// hash/tag.
type Hash256 [HashLength]byte

// BytesToHash256 sets h to the big-endian value of b. If b is longer
// than HashLength it is cropped from the left.
func BytesToHash256(b []byte) Hash256 {
	var h Hash256
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// Bytes returns the big-endian byte representation of h.
func (h Hash256) Bytes() []byte { return h[:] }

// IsZero reports whether h is the zero hash. Backed by uint256 so the
// check is a few word compares instead of a 32-byte loop.
func (h Hash256) IsZero() bool {
	return new(uint256.Int).SetBytes(h[:]).IsZero()
}

// Eq reports whether h equals o.
func (h Hash256) Eq(o Hash256) bool {
	return h == o
}

// Hex returns the 0x-prefixed hex encoding of h.
func (h Hash256) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

// String implements fmt.Stringer.
func (h Hash256) String() string { return h.Hex() }

// Format implements fmt.Formatter so Hash256 prints sensibly under
// %x/%v/%s in log lines and test failures.
func (h Hash256) Format(s fmt.State, c rune) {
	switch c {
	case 'x', 'X':
		fmt.Fprintf(s, "%"+string(c), h[:])
	default:
		fmt.Fprint(s, h.Hex())
	}
}
