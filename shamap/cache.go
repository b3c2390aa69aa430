package shamap

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/xrplf/go-shamap/common"
	"github.com/xrplf/go-shamap/item"
)

// defaultItemCacheSize bounds the interning cache absent an explicit
// size; chosen to be generous for a single validator's working set
// without requiring the caller to size it.
const defaultItemCacheSize = 16384

// ItemCache interns leaf content items by tag so that items passed
// through Intern with the same tag end up as one shared *item.Item
// (spec §5). NewLeaf and Decode do not consult it; items are interned
// only where a caller calls Intern.
type ItemCache struct {
	lru *lru.Cache
}

// NewItemCache returns an ItemCache holding up to size entries. A
// non-positive size is replaced with defaultItemCacheSize.
func NewItemCache(size int) (*ItemCache, error) {
	if size <= 0 {
		size = defaultItemCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &ItemCache{lru: c}, nil
}

// Intern returns it unchanged if its tag is not yet cached, recording
// it for future lookups; otherwise it returns the previously cached
// item sharing the same tag, discarding the caller's copy. Either way
// the caller should use the returned item, not its argument.
func (c *ItemCache) Intern(it *item.Item) *item.Item {
	if it == nil {
		return nil
	}
	if cached, ok := c.lru.Get(it.Tag); ok {
		return cached.(*item.Item)
	}
	c.lru.Add(it.Tag, it)
	return it
}

// Get looks up a previously interned item by tag.
func (c *ItemCache) Get(tag common.Hash256) (*item.Item, bool) {
	v, ok := c.lru.Get(tag)
	if !ok {
		return nil, false
	}
	return v.(*item.Item), true
}

// Purge discards every cached entry.
func (c *ItemCache) Purge() { c.lru.Purge() }

// Len reports the number of entries currently cached.
func (c *ItemCache) Len() int { return c.lru.Len() }
