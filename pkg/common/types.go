package common

import (
	"cmp"
	"fmt"
)

// Ordered is the key type accepted by every container. Keys and values share
// the same type.
type Ordered = cmp.Ordered

// Entry is a by-value snapshot of one key/value pair. Mutating an Entry never
// touches the container it was read from.
type Entry[T Ordered] struct {
	Key   T
	Value T
}

func MakeEntry[T Ordered](key, value T) Entry[T] {
	return Entry[T]{Key: key, Value: value}
}

// Less orders entries by key only. NaN keys sort first and equal each other.
func (e Entry[T]) Less(than Entry[T]) bool {
	return cmp.Less(e.Key, than.Key)
}

// Equal compares both fields with cmp.Compare, so NaN equals NaN.
func (e Entry[T]) Equal(o Entry[T]) bool {
	return SameKey(e.Key, o.Key) && SameKey(e.Value, o.Value)
}

// SameKey reports whether a and b are the same key in container order.
func SameKey[T Ordered](a, b T) bool {
	return cmp.Compare(a, b) == 0
}

// String renders the entry as key~value.
func (e Entry[T]) String() string {
	return fmt.Sprintf("%v~%v", e.Key, e.Value)
}
