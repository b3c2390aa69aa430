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

// Package crypto provides the single hash primitive the SHAMap node
// core needs: a truncated-512 hash producing a 256-bit digest
// ("SHA-512Half" in the reference network's own terms).
package crypto

import (
	"crypto/sha512"
	"hash"

	"github.com/xrplf/go-shamap/common"
)

// DigestLength is the length in bytes of a Sha512Half digest.
const DigestLength = common.HashLength

// Sha512State wraps a running SHA-512 hash. It mirrors the
// write-then-read shape of a streaming hash state so callers can feed
// it pieces of a node's encoding without concatenating them first.
type Sha512State interface {
	hash.Hash
}

// NewSha512State creates a new Sha512State.
func NewSha512State() Sha512State {
	return sha512.New()
}

// Sha512Half calculates the truncated-512 hash of the concatenation of
// data, returning the first 256 bits of the SHA-512 digest.
func Sha512Half(data ...[]byte) []byte {
	d := NewSha512State()
	for _, b := range data {
		d.Write(b)
	}
	sum := d.Sum(nil)
	return sum[:common.HashLength]
}

// Sha512HalfHash is Sha512Half, returning a common.Hash256 instead of a
// raw byte slice.
func Sha512HalfHash(data ...[]byte) (h common.Hash256) {
	copy(h[:], Sha512Half(data...))
	return h
}
