package sorted

import (
	"ordmap/pkg/common"
	"ordmap/pkg/core/cursor"
)

type seqCursor[T common.Ordered] struct {
	b   *body[T]
	pos int
	gen uint64
}

func (c *seqCursor[T]) check() {
	if c.gen != c.b.gen {
		panic(cursor.ErrInvalidated)
	}
}

func (c *seqCursor[T]) Equal(o *seqCursor[T]) bool {
	return c.b == o.b && c.pos == o.pos && c.gen == o.gen
}

func (c *seqCursor[T]) Next() {
	c.check()
	if c.pos >= len(c.b.items) {
		panic(cursor.ErrOutOfRange)
	}
	c.pos++
}

func (c *seqCursor[T]) Prev() {
	c.check()
	if c.pos == 0 {
		panic(cursor.ErrOutOfRange)
	}
	c.pos--
}

func (c *seqCursor[T]) Entry() common.Entry[T] {
	c.check()
	if c.pos >= len(c.b.items) {
		panic(cursor.ErrOutOfRange)
	}
	return c.b.items[c.pos]
}

func (c *seqCursor[T]) SetValue(v T) {
	c.check()
	if c.pos >= len(c.b.items) {
		panic(cursor.ErrOutOfRange)
	}
	c.b.items[c.pos].Value = v
}
