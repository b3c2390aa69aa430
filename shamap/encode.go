package shamap

import (
	"github.com/xrplf/go-shamap/common"
	"github.com/xrplf/go-shamap/serializer"
)

// Format selects an on-wire representation for Decode/Encode.
type Format uint8

const (
	// FormatWire is the compact peer-to-peer wire format: a trailing
	// 1-byte type tag with a type-dependent body before it.
	FormatWire Format = iota
	// FormatPrefix is the hash-prefixed format used for content
	// addressed by its own hash (4-byte big-endian domain prefix,
	// then body).
	FormatPrefix
	// FormatHash writes only the node's cached 256-bit hash.
	FormatHash
)

// compressedThreshold is the branch-count cutoff (spec §4.3): strictly
// fewer than this many non-empty branches uses the compressed WIRE
// inner encoding; this many or more uses the full 16-hash form.
const compressedThreshold = 12

// wireTag values, spec §4.2/§4.3.
const (
	wireTagTxNoMeta      = 0
	wireTagAccountState  = 1
	wireTagInnerFull     = 2
	wireTagInnerCompress = 3
	wireTagTxMeta        = 4
)

// Encode appends n's encoding in the given format to out. Encoding a
// TypeError node is a precondition violation, as is encoding an empty
// (branchMask == 0) inner node in FormatWire or FormatPrefix — such a
// node has no meaningful bytes to emit; callers are expected to avoid
// this (spec §4.3).
func (n *Node) Encode(out *serializer.Serializer, format Format) {
	assertf(n.typ != TypeError, "Encode on ERROR node")

	if format == FormatHash {
		out.Add256(n.hash)
		return
	}

	switch n.typ {
	case TypeInner:
		assertf(!n.IsEmpty(), "Encode empty inner node in format %d", format)
		n.encodeInner(out, format)
	case TypeAccountState:
		if format == FormatPrefix {
			out.Add32(common.PrefixLeafNode)
			out.AddRaw(n.item.Payload)
			out.Add256(n.item.Tag)
		} else {
			out.AddRaw(n.item.Payload)
			out.Add256(n.item.Tag)
			out.Add8(wireTagAccountState)
		}
	case TypeTxNoMeta:
		if format == FormatPrefix {
			out.Add32(common.PrefixTransactionID)
			out.AddRaw(n.item.Payload)
		} else {
			out.AddRaw(n.item.Payload)
			out.Add8(wireTagTxNoMeta)
		}
	case TypeTxMeta:
		if format == FormatPrefix {
			out.Add32(common.PrefixTxNode)
			out.AddRaw(n.item.Payload)
			out.Add256(n.item.Tag)
		} else {
			out.AddRaw(n.item.Payload)
			out.Add256(n.item.Tag)
			out.Add8(wireTagTxMeta)
		}
	default:
		assertf(false, "Encode on node of type %s", n.typ)
	}
}

func (n *Node) encodeInner(out *serializer.Serializer, format Format) {
	if format == FormatPrefix {
		out.Add32(common.PrefixInnerNode)
		for i := 0; i < branchFactor; i++ {
			out.Add256(n.branches[i])
		}
		return
	}

	// FormatWire: compressed vs full is a strict threshold on branch
	// count, not a size-optimal choice — the tie-break itself is
	// observable on the wire (spec §4.3, §8 scenario 3).
	if n.BranchCount() < compressedThreshold {
		for i := 0; i < branchFactor; i++ {
			if !n.IsEmptyBranch(i) {
				out.Add256(n.branches[i])
				out.Add8(uint8(i))
			}
		}
		out.Add8(wireTagInnerCompress)
	} else {
		for i := 0; i < branchFactor; i++ {
			out.Add256(n.branches[i])
		}
		out.Add8(wireTagInnerFull)
	}
}
