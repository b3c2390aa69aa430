// Package item implements the content-item abstraction a SHAMap leaf
// carries: a (tag, payload) pair, shared by reference across node
// versions and deep-copied when a node is cloned or its item is read
// back through Node.Item.
package item

import "github.com/xrplf/go-shamap/common"

// Item is a leaf's content: a 256-bit tag (transaction id or
// account-state key) and an opaque payload. Payload bytes are never
// interpreted or canonicalized here.
type Item struct {
	Tag     common.Hash256
	Payload []byte
}

// New returns an Item wrapping payload directly (no copy). Use this
// when the caller is handing over ownership of payload, mirroring
// fresh-leaf construction's "share, don't copy" behavior.
func New(tag common.Hash256, payload []byte) *Item {
	return &Item{Tag: tag, Payload: payload}
}

// Clone returns a deep copy of it, used by Node.Clone to preserve the
// immutability of a cloned-from node's item.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	payload := make([]byte, len(it.Payload))
	copy(payload, it.Payload)
	return &Item{Tag: it.Tag, Payload: payload}
}

// Len returns the payload length in bytes.
func (it *Item) Len() int {
	if it == nil {
		return 0
	}
	return len(it.Payload)
}
