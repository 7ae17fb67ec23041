// Package cursor erases the concrete type of a backing store's native cursor.
//
// An iterator owns a handle holding one native cursor value and points at the
// operation table generated for that cursor type. Tables are built once per
// type and shared, so iterators from unrelated stores have the same Go type and
// can be passed between containers implementing the same contract.
//
// Iterators are used through pointers. Copying an Iterator struct aliases its
// handle; use Clone for an independent copy and Release when done so handle
// accounting stays balanced.
package cursor

import (
	"fmt"

	"github.com/pkg/errors"

	"ordmap/pkg/common"
)

// Iterator is a mutable erased cursor.
type Iterator[T common.Ordered] struct {
	base[T]
}

// New wraps native using the default table of its type.
func New[T common.Ordered, C any, P Native[T, C]](native C) *Iterator[T] {
	return NewWithOps(DefaultOps[T, C, P](), native)
}

// NewWithOps wraps native with a caller supplied table, which must have been
// built for C.
func NewWithOps[T common.Ordered, C any](ops *Ops[T], native C) *Iterator[T] {
	return &Iterator[T]{base[T]{h: adopt(ops, native), ops: ops}}
}

// Reset points it at native. When it already uses the default table of C the
// handle is reused, otherwise the old handle is released first.
func Reset[T common.Ordered, C any, P Native[T, C]](it *Iterator[T], native C) {
	ops := DefaultOps[T, C, P]()
	if it.ops == ops {
		*it.h.(*C) = native
		return
	}
	it.release()
	it.h = adopt(ops, native)
	it.ops = ops
}

// Unwrap returns the native cursor held by it when it wraps a C. The result
// aliases the handle and must not outlive it.
func Unwrap[C any, T common.Ordered](it *Iterator[T]) (*C, bool) {
	if it == nil || it.ops == nil {
		return nil, false
	}
	c, ok := it.h.(*C)
	return c, ok
}

// IsNull reports whether it is the zero value or has been released.
func (it *Iterator[T]) IsNull() bool {
	return it.ops == nil
}

// Ops returns the table shared by iterators over the same cursor type.
func (it *Iterator[T]) Ops() *Ops[T] {
	return it.ops
}

// SameCursorType reports whether it and other may be compared.
func (it *Iterator[T]) SameCursorType(other *Iterator[T]) bool {
	return it.ops == other.ops
}

// Clone returns an iterator with its own copy of the native cursor.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{it.clone()}
}

// Assign makes it an independent copy of src.
func (it *Iterator[T]) Assign(src *Iterator[T]) *Iterator[T] {
	it.assign(&src.base)
	return it
}

// Release destroys the handle, leaving it null. Releasing a null iterator is a
// no-op.
func (it *Iterator[T]) Release() {
	it.release()
}

// Equal reports whether both iterators are at the same position. Null
// iterators are only equal to each other. Iterators over different cursor
// types panic with ErrMismatchedCursor.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.equal(&other.base)
}

// Next advances and returns it.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.advance()
	return it
}

// PostNext advances it and returns a copy of the previous position.
func (it *Iterator[T]) PostNext() *Iterator[T] {
	prev := it.Clone()
	it.advance()
	return prev
}

// Prev retreats and returns it.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.retreat()
	return it
}

// PostPrev retreats it and returns a copy of the previous position.
func (it *Iterator[T]) PostPrev() *Iterator[T] {
	prev := it.Clone()
	it.retreat()
	return prev
}

// Entry returns the current entry by value.
func (it *Iterator[T]) Entry() common.Entry[T] {
	return it.entry()
}

// Key returns the key of the current entry.
func (it *Iterator[T]) Key() T {
	return it.entry().Key
}

// Value returns the value of the current entry.
func (it *Iterator[T]) Value() T {
	return it.entry().Value
}

// SetValue replaces the value of the current entry in place. The key is never
// changed.
func (it *Iterator[T]) SetValue(v T) {
	it.mustLive()
	if it.ops.setValue == nil {
		panic(errors.Wrap(ErrReadOnly, it.ops.name))
	}
	it.ops.setValue(it.h, v)
}

// ReadOnly returns an independent read-only copy of it.
func (it *Iterator[T]) ReadOnly() *ReadIterator[T] {
	return &ReadIterator[T]{it.clone()}
}

func (it *Iterator[T]) String() string {
	return fmt.Sprintf("Iterator{%s}", it.cursorType())
}
