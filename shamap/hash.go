package shamap

import (
	"github.com/xrplf/go-shamap/common"
	"github.com/xrplf/go-shamap/serializer"
)

// RecomputeHash recomputes n's hash from its current fields under the
// type-dependent scheme in spec §4.4, updates n.hash, and reports
// whether the new value differs from the previous one — supporting
// dirty-propagation in the enclosing trie. Idempotent: a second call
// with no intervening mutation returns false.
func (n *Node) RecomputeHash() bool {
	var next common.Hash256

	switch n.typ {
	case TypeInner:
		if n.branchMask != 0 {
			parts := make([][]byte, branchFactor)
			for i := 0; i < branchFactor; i++ {
				parts[i] = n.branches[i].Bytes()
			}
			next = serializer.PrefixHash(common.PrefixInnerNode, parts...)
		}
		// branchMask == 0: next stays the zero value (spec invariant 5's
		// single exception — an empty inner never hashes to
		// HP(INNER_NODE, 16 zero words)).

	case TypeTxNoMeta:
		next = serializer.PrefixHash(common.PrefixTransactionID, n.item.Payload)

	case TypeAccountState:
		next = serializer.PrefixHash(common.PrefixLeafNode, n.item.Payload, n.item.Tag.Bytes())

	case TypeTxMeta:
		next = serializer.PrefixHash(common.PrefixTxNode, n.item.Payload, n.item.Tag.Bytes())

	default:
		assertf(false, "RecomputeHash on node of type %s", n.typ)
	}

	if next == n.hash {
		return false
	}
	n.hash = next
	return true
}
