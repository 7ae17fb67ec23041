package cursor

import (
	"github.com/anacrolix/missinggo/v2/panicif"
	"github.com/pkg/errors"

	"ordmap/pkg/common"
)

// base couples an owned handle with the table generated for its cursor type.
// The zero value is the null iterator.
type base[T common.Ordered] struct {
	h   any
	ops *Ops[T]
}

func (b *base[T]) mustLive() {
	if b.ops == nil {
		panic(ErrNullIterator)
	}
	panicif.Nil(b.h)
}

func (b *base[T]) clone() base[T] {
	if b.ops == nil {
		return base[T]{}
	}
	return base[T]{h: b.ops.copy(b.h), ops: b.ops}
}

// assign copies src into b. A shared table allows an in-place copy of the
// native cursor; otherwise the old handle is released before adopting a copy of
// the source.
func (b *base[T]) assign(src *base[T]) {
	switch {
	case b == src:
	case src.ops == nil:
		b.release()
	case b.ops == src.ops:
		b.ops.assign(b.h, src.h)
	default:
		b.release()
		b.h = src.ops.copy(src.h)
		b.ops = src.ops
	}
}

func (b *base[T]) release() {
	if b.ops == nil {
		return
	}
	b.ops.destroy(b.h)
	b.h = nil
	b.ops = nil
}

func (b *base[T]) equal(o *base[T]) bool {
	if b.ops == nil || o.ops == nil {
		return b.ops == o.ops
	}
	if b.ops != o.ops {
		panic(errors.Wrapf(ErrMismatchedCursor, "comparing %v with %v", b.ops.name, o.ops.name))
	}
	return b.ops.equal(b.h, o.h)
}

func (b *base[T]) advance() {
	b.mustLive()
	b.ops.advance(b.h)
}

func (b *base[T]) retreat() {
	b.mustLive()
	b.ops.retreat(b.h)
}

func (b *base[T]) entry() common.Entry[T] {
	b.mustLive()
	return b.ops.entry(b.h)
}

func (b *base[T]) cursorType() string {
	if b.ops == nil {
		return "<null>"
	}
	return b.ops.name
}
