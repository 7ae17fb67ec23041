package cursor

import (
	"reflect"

	"github.com/pkg/errors"

	"ordmap/pkg/common"
	"ordmap/pkg/monitor"
)

// Native is what a backing store's cursor provides to the erasure layer. C is
// the concrete cursor struct. Handles hold a *C and the layer copies cursors
// with plain assignment, so C must be safe to copy by value.
type Native[T common.Ordered, C any] interface {
	*C
	Equal(other *C) bool
	Next()
	Prev()
	Entry() common.Entry[T]
	SetValue(v T)
}

// Overrides replaces individual operations when building a custom table with
// NewOps. Nil fields fall back to the methods of the native cursor.
type Overrides[T common.Ordered, C any] struct {
	Equal    func(a, b *C) bool
	Next     func(c *C)
	Prev     func(c *C)
	Entry    func(c *C) common.Entry[T]
	SetValue func(c *C, v T)
	// ReadOnly builds a table without set-value.
	ReadOnly bool
}

// Ops is the operation table of one native cursor type. Tables are immutable
// once built and shared by every iterator over that type.
type Ops[T common.Ordered] struct {
	name       string
	cursorType reflect.Type
	counters   *monitor.CursorCounters

	copy     func(src any) any
	assign   func(dst, src any)
	destroy  func(h any)
	equal    func(a, b any) bool
	advance  func(h any)
	retreat  func(h any)
	entry    func(h any) common.Entry[T]
	setValue func(h any, v T)
}

// Name is the Go type name of the native cursor.
func (o *Ops[T]) Name() string {
	return o.name
}

// CanSetValue reports whether iterators using the table may mutate values.
func (o *Ops[T]) CanSetValue() bool {
	return o.setValue != nil
}

// NewOps builds an unregistered table for C. Iterators built with it are only
// comparable with iterators sharing the same table.
func NewOps[T common.Ordered, C any, P Native[T, C]](o Overrides[T, C]) *Ops[T] {
	return buildOps[T, C, P](o)
}

func buildOps[T common.Ordered, C any, P Native[T, C]](o Overrides[T, C]) *Ops[T] {
	ct := reflect.TypeFor[C]()
	counters := monitor.Cursors.For(ct.String())

	eq := o.Equal
	if eq == nil {
		eq = func(a, b *C) bool { return P(a).Equal(b) }
	}
	next := o.Next
	if next == nil {
		next = func(c *C) { P(c).Next() }
	}
	prev := o.Prev
	if prev == nil {
		prev = func(c *C) { P(c).Prev() }
	}
	entry := o.Entry
	if entry == nil {
		entry = func(c *C) common.Entry[T] { return P(c).Entry() }
	}
	set := o.SetValue
	if set == nil && !o.ReadOnly {
		set = func(c *C, v T) { P(c).SetValue(v) }
	}

	ops := &Ops[T]{
		name:       ct.String(),
		cursorType: ct,
		counters:   counters,
		copy: func(src any) any {
			h := new(C)
			*h = *src.(*C)
			counters.Alloc()
			return h
		},
		assign: func(dst, src any) {
			*dst.(*C) = *src.(*C)
		},
		destroy: func(h any) {
			var zero C
			*h.(*C) = zero
			counters.Release()
		},
		equal: func(a, b any) bool {
			return eq(a.(*C), b.(*C))
		},
		advance: func(h any) { next(h.(*C)) },
		retreat: func(h any) { prev(h.(*C)) },
		entry: func(h any) common.Entry[T] {
			return entry(h.(*C))
		},
	}
	if set != nil {
		ops.setValue = func(h any, v T) { set(h.(*C), v) }
	}
	return ops
}

// adopt allocates a handle holding a copy of native for ops.
func adopt[T common.Ordered, C any](ops *Ops[T], native C) any {
	if ct := reflect.TypeFor[C](); ops.cursorType != ct {
		panic(errors.Wrapf(ErrMismatchedCursor, "table for %v given %v", ops.name, ct))
	}
	h := new(C)
	*h = native
	ops.counters.Alloc()
	return h
}
