package pathmap

import (
	"github.com/tidwall/btree"

	"ordmap/pkg/common"
	"ordmap/pkg/core/cursor"
)

type pathCursor[T common.Ordered] struct {
	b     *body[T]
	epoch uint64
	key   T
	end   bool
	// Last descent through the tree, reused by lookups and Insert.
	path btree.PathHint
}

func (c *pathCursor[T]) check() {
	if c.epoch != c.b.epoch {
		panic(cursor.ErrInvalidated)
	}
}

func (c *pathCursor[T]) Equal(o *pathCursor[T]) bool {
	if c.b != o.b || c.epoch != o.epoch || c.end != o.end {
		return false
	}
	return c.end || common.SameKey(c.key, o.key)
}

func (c *pathCursor[T]) Next() {
	c.check()
	if c.end {
		panic(cursor.ErrOutOfRange)
	}
	found := false
	c.b.tree.Ascend(common.Entry[T]{Key: c.key}, func(e common.Entry[T]) bool {
		if common.SameKey(e.Key, c.key) {
			return true
		}
		c.key = e.Key
		found = true
		return false
	})
	if !found {
		*c = pathCursor[T]{b: c.b, epoch: c.epoch, end: true}
	}
}

func (c *pathCursor[T]) Prev() {
	c.check()
	if c.end {
		last, ok := c.b.tree.Max()
		if !ok {
			panic(cursor.ErrOutOfRange)
		}
		c.key, c.end = last.Key, false
		return
	}
	found := false
	c.b.tree.Descend(common.Entry[T]{Key: c.key}, func(e common.Entry[T]) bool {
		if common.SameKey(e.Key, c.key) {
			return true
		}
		c.key = e.Key
		found = true
		return false
	})
	if !found {
		panic(cursor.ErrOutOfRange)
	}
}

func (c *pathCursor[T]) Entry() common.Entry[T] {
	c.check()
	if c.end {
		panic(cursor.ErrOutOfRange)
	}
	e, ok := c.b.tree.GetHint(common.Entry[T]{Key: c.key}, &c.path)
	if !ok {
		panic(cursor.ErrInvalidated)
	}
	return e
}

func (c *pathCursor[T]) SetValue(v T) {
	c.check()
	if c.end {
		panic(cursor.ErrOutOfRange)
	}
	if _, ok := c.b.tree.GetHint(common.Entry[T]{Key: c.key}, &c.path); !ok {
		panic(cursor.ErrInvalidated)
	}
	c.b.tree.SetHint(common.Entry[T]{Key: c.key, Value: v}, &c.path)
}
