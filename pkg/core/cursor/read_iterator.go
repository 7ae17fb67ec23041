package cursor

import (
	"fmt"

	"ordmap/pkg/common"
)

// ReadIterator is an erased cursor without value mutation. It shares tables
// with Iterator, so a store can build both from the same native cursor.
type ReadIterator[T common.Ordered] struct {
	base[T]
}

// NewRead wraps native using the default table of its type.
func NewRead[T common.Ordered, C any, P Native[T, C]](native C) *ReadIterator[T] {
	ops := DefaultOps[T, C, P]()
	return &ReadIterator[T]{base[T]{h: adopt(ops, native), ops: ops}}
}

// IsNull reports whether it is the zero value or has been released.
func (it *ReadIterator[T]) IsNull() bool {
	return it.ops == nil
}

// Ops returns the table shared by iterators over the same cursor type.
func (it *ReadIterator[T]) Ops() *Ops[T] {
	return it.ops
}

// Clone returns an iterator with its own copy of the native cursor.
func (it *ReadIterator[T]) Clone() *ReadIterator[T] {
	return &ReadIterator[T]{it.clone()}
}

// Assign makes it an independent copy of src.
func (it *ReadIterator[T]) Assign(src *ReadIterator[T]) *ReadIterator[T] {
	it.assign(&src.base)
	return it
}

// Release destroys the handle, leaving it null. Releasing a null iterator is a
// no-op.
func (it *ReadIterator[T]) Release() {
	it.release()
}

// Equal reports whether both iterators are at the same position, with the
// same rules as Iterator.Equal.
func (it *ReadIterator[T]) Equal(other *ReadIterator[T]) bool {
	return it.equal(&other.base)
}

// Next advances and returns it.
func (it *ReadIterator[T]) Next() *ReadIterator[T] {
	it.advance()
	return it
}

// PostNext advances it and returns a copy of the previous position.
func (it *ReadIterator[T]) PostNext() *ReadIterator[T] {
	prev := it.Clone()
	it.advance()
	return prev
}

// Prev retreats and returns it.
func (it *ReadIterator[T]) Prev() *ReadIterator[T] {
	it.retreat()
	return it
}

// PostPrev retreats it and returns a copy of the previous position.
func (it *ReadIterator[T]) PostPrev() *ReadIterator[T] {
	prev := it.Clone()
	it.retreat()
	return prev
}

// Entry returns the current entry by value.
func (it *ReadIterator[T]) Entry() common.Entry[T] {
	return it.entry()
}

// Key returns the key of the current entry.
func (it *ReadIterator[T]) Key() T {
	return it.entry().Key
}

// Value returns the value of the current entry.
func (it *ReadIterator[T]) Value() T {
	return it.entry().Value
}

func (it *ReadIterator[T]) String() string {
	return fmt.Sprintf("ReadIterator{%s}", it.cursorType())
}
