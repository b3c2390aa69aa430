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

// Package shamap implements the node abstraction of a radix-16 Merkle
// trie ("SHA-map"): a tagged-union node that is either a 16-slot inner
// branch node or a leaf carrying one content item, plus the codecs
// that decode it from two wire formats, emit it in three, and
// recompute its content hash under four type-dependent schemes.
//
// The enclosing trie (insert/delete/walk, copy-on-write snapshot
// management, proof generation), the persistence layer, and the
// logging subsystem's policy are owned elsewhere; this package only
// implements the node object itself.
package shamap

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/xrplf/go-shamap/common"
	"github.com/xrplf/go-shamap/item"
)

// branchFactor is the number of child slots an inner node carries.
const branchFactor = 16

// minLeafPayload is the minimum payload length a freshly constructed
// leaf must carry (spec invariant 4). Decoders do not enforce this —
// see decode.go and DESIGN.md's "open question" notes.
const minLeafPayload = 12

// Type discriminates the node's kind. TypeError exists only as the
// transient state of a not-yet-filled constructor scratch buffer; no
// successful public operation ever returns it (spec invariant 6).
type Type uint8

const (
	TypeError Type = iota
	TypeInner
	TypeTxNoMeta
	TypeTxMeta
	TypeAccountState
)

func (t Type) String() string {
	switch t {
	case TypeError:
		return "ERROR"
	case TypeInner:
		return "INNER"
	case TypeTxNoMeta:
		return "TX_NOMETA"
	case TypeTxMeta:
		return "TX_META"
	case TypeAccountState:
		return "ACCOUNT_STATE"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// IsLeafType reports whether t is one of the three leaf kinds.
func IsLeafType(t Type) bool {
	switch t {
	case TypeTxNoMeta, TypeTxMeta, TypeAccountState:
		return true
	default:
		return false
	}
}

// NodeID positions a Node within the trie: depth plus path prefix.
// It is supplied by the caller and never interpreted by this package.
type NodeID struct {
	Depth uint8
	Path  common.Hash256
}

// String renders the id the way the original's getString() does:
// "NodeID(depth,hex)".
func (id NodeID) String() string {
	return fmt.Sprintf("NodeID(%d,%s)", id.Depth, id.Path.Hex())
}

// Node is a single SHAMap tree node: either an inner branch node (16
// child hash slots) or a leaf carrying one content item.
type Node struct {
	id NodeID

	typ  Type
	hash common.Hash256
	seq  uint32

	// accessSeq is advisory bookkeeping for an external cache, the Go
	// analogue of the original's mAccessSeq (SPEC_FULL.md §14.2). It is
	// not part of serialization or hashing and carries no invariant.
	accessSeq uint32

	branches   [branchFactor]common.Hash256
	branchMask uint16

	item *item.Item

	// fullBelow is advisory prefetch bookkeeping for the enclosing trie;
	// not part of serialization or hashing (spec §3).
	fullBelow bool
}

// NewEmpty returns a scratch node with type ERROR, used only as a
// buffer before a decoder fills it.
func NewEmpty(seq uint32, id NodeID) *Node {
	return &Node{id: id, seq: seq, accessSeq: seq, typ: TypeError}
}

// Clone returns a deep copy of n under a new sequence number,
// preserving type, hash and branch mask; the item (for a leaf) is
// deep-copied and the branches (for an inner) are copied by value.
// fullBelow resets to false on the clone.
func (n *Node) Clone(newSeq uint32) *Node {
	c := &Node{
		id:         n.id,
		typ:        n.typ,
		hash:       n.hash,
		seq:        newSeq,
		accessSeq:  newSeq,
		branchMask: n.branchMask,
	}
	if n.item != nil {
		c.item = n.item.Clone()
	} else {
		c.branches = n.branches
	}
	return c
}

// NewLeaf returns a freshly constructed leaf node holding it under
// leafType, recomputing its hash. leafType must be one of the three
// leaf kinds and it.Payload must be at least minLeafPayload bytes.
func NewLeaf(id NodeID, it *item.Item, leafType Type, seq uint32) (*Node, error) {
	if !IsLeafType(leafType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLeafType, leafType)
	}
	if it == nil || len(it.Payload) < minLeafPayload {
		return nil, ErrShortPayload
	}
	n := &Node{id: id, typ: leafType, seq: seq, accessSeq: seq, item: it, fullBelow: true}
	n.RecomputeHash()
	return n, nil
}

// MakeInner resets n to an empty INNER node with no children and a
// zero hash, discarding any prior item or branches.
func (n *Node) MakeInner() {
	n.item = nil
	n.branches = [branchFactor]common.Hash256{}
	n.branchMask = 0
	n.typ = TypeInner
	n.hash = common.Hash256{}
}

// ID returns the node's position in the trie.
func (n *Node) ID() NodeID { return n.id }

// Type returns the node's current type.
func (n *Node) Type() Type { return n.typ }

// Hash returns the node's cached content hash.
func (n *Node) Hash() common.Hash256 { return n.hash }

// Seq returns the snapshot sequence that owns this node version.
func (n *Node) Seq() uint32 { return n.seq }

// Touch updates the node's advisory access sequence, used by an
// external cache to decide what to evict; it does not affect the
// node's identity, hash, or copy-on-write seq.
func (n *Node) Touch(seq uint32) { n.accessSeq = seq }

// AccessSeq returns the node's advisory access sequence.
func (n *Node) AccessSeq() uint32 { return n.accessSeq }

// FullBelow reports the advisory prefetch flag.
func (n *Node) FullBelow() bool { return n.fullBelow }

// SetFullBelow sets the advisory prefetch flag.
func (n *Node) SetFullBelow(v bool) { n.fullBelow = v }

// IsLeaf reports whether n carries a content item.
func (n *Node) IsLeaf() bool { return IsLeafType(n.typ) }

// IsInner reports whether n is an inner branch node.
func (n *Node) IsInner() bool { return n.typ == TypeInner }

// IsEmpty reports whether n is an inner node with no non-empty
// branches. Only meaningful for inner nodes.
func (n *Node) IsEmpty() bool { return n.branchMask == 0 }

// IsEmptyBranch reports whether branch slot i is empty.
func (n *Node) IsEmptyBranch(i int) bool {
	assertf(i >= 0 && i < branchFactor, "branch index out of range: %d", i)
	return n.branchMask&(1<<uint(i)) == 0
}

// BranchCount returns the number of non-empty branch slots. Only
// meaningful for inner nodes.
func (n *Node) BranchCount() int {
	assertf(n.IsInner(), "BranchCount on non-inner node")
	count := 0
	for i := 0; i < branchFactor; i++ {
		if !n.IsEmptyBranch(i) {
			count++
		}
	}
	return count
}

// BranchHash returns the child hash stored at slot i.
func (n *Node) BranchHash(i int) common.Hash256 {
	assertf(i >= 0 && i < branchFactor, "branch index out of range: %d", i)
	return n.branches[i]
}

// SetChildHash updates branch slot i to h, adjusting the branch mask
// and recomputing the hash. Requires n to be an inner node. Returns
// whether the node's hash changed.
func (n *Node) SetChildHash(slot int, h common.Hash256) (bool, error) {
	if !n.IsInner() {
		return false, ErrNotInner
	}
	if slot < 0 || slot >= branchFactor {
		return false, ErrIndexOutOfRange
	}
	if n.branches[slot] == h {
		return false, nil
	}
	n.branches[slot] = h
	if !h.IsZero() {
		n.branchMask |= 1 << uint(slot)
	} else {
		n.branchMask &^= 1 << uint(slot)
	}
	return n.RecomputeHash(), nil
}

// SetItem replaces n's content item, requiring n to already be a
// leaf. Recomputes the hash and returns whether it changed.
func (n *Node) SetItem(it *item.Item, leafType Type) (bool, error) {
	if !n.IsLeaf() {
		return false, ErrNotLeaf
	}
	if !IsLeafType(leafType) {
		return false, fmt.Errorf("%w: %s", ErrInvalidLeafType, leafType)
	}
	prev := n.hash
	n.typ = leafType
	n.item = it
	n.RecomputeHash()
	return n.hash != prev, nil
}

// Item returns a deep copy of the stored item. Returns ErrNotLeaf if
// n is not a leaf.
func (n *Node) Item() (*item.Item, error) {
	if !n.IsLeaf() {
		return nil, ErrNotLeaf
	}
	return n.item.Clone(), nil
}

// Dump renders n's branch table / item for debug logging, the Go
// analogue of the original's getString()/dump().
func (n *Node) Dump() string {
	out := fmt.Sprintf("%s\n  Type=%s\n  Hash=%s\n", n.id, n.typ, n.hash.Hex())
	if n.IsInner() {
		out += spew.Sdump(n.branches)
	}
	if n.IsLeaf() && n.item != nil {
		out += fmt.Sprintf("  Tag=%s\n  PayloadLen=%d\n", n.item.Tag.Hex(), len(n.item.Payload))
	}
	return out
}

// String implements fmt.Stringer with a compact one-line summary.
func (n *Node) String() string {
	return fmt.Sprintf("Node(%s, %s, hash=%s)", n.id, n.typ, n.hash.Hex())
}
