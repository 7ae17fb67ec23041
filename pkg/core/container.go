package core

import (
	"ordmap/pkg/common"
	"ordmap/pkg/core/cursor"
)

// Container is the contract shared by every backing store. It hides whether
// entries live in a tree or a sorted sequence; the erased iterators it hands
// out can be passed to Insert of any other Container.
type Container[T common.Ordered] interface {
	// Insert adds e, keeping the store's ordering. hint is advisory: it may be
	// null, stale or produced by another container, which only costs time.
	// On return a non-nil hint points at the inserted entry.
	Insert(hint *cursor.Iterator[T], e common.Entry[T])
	Len() int
	// Clear removes every entry and invalidates outstanding iterators.
	Clear()
	Begin() *cursor.Iterator[T]
	End() *cursor.Iterator[T]
	ReadBegin() *cursor.ReadIterator[T]
	ReadEnd() *cursor.ReadIterator[T]
	Kind() string
}

// Finder is implemented by stores with a faster lookup than a scan.
type Finder[T common.Ordered] interface {
	// Find returns an iterator at the first entry with key, or End.
	Find(key T) *cursor.Iterator[T]
}

// Swapper is implemented by stores that can exchange content with another
// container of the same concrete type in constant time.
type Swapper[T common.Ordered] interface {
	// SwapContainer reports false when other has a different type.
	SwapContainer(other Container[T]) bool
}
