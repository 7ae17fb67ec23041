package core

import (
	"strings"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"

	"ordmap/pkg/common"
)

var logger = log.Default.WithNames("core")

// Equal reports whether a and b hold the same entries in the same iteration
// order. The stores may have different concrete types; the result is only
// meaningful when both order keys the same way. Entries compare with
// cmp.Compare, so a NaN key or value equals NaN.
func Equal[T common.Ordered](a, b Container[T]) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	i, end := a.ReadBegin(), a.ReadEnd()
	j := b.ReadBegin()
	defer i.Release()
	defer end.Release()
	defer j.Release()
	for ; !i.Equal(end); i.Next() {
		if !i.Entry().Equal(j.Entry()) {
			return false
		}
		j.Next()
	}
	return true
}

// Assign replaces the content of dst with the entries of src, inserted in
// src's iteration order through a single hint. dst keeps its own ordering
// policy, so assigning a sequence with repeated keys to a tree map collapses
// them.
func Assign[T common.Ordered](dst, src Container[T]) {
	if dst == src {
		return
	}
	dst.Clear()
	hint := dst.Begin()
	defer hint.Release()
	i, end := src.ReadBegin(), src.ReadEnd()
	defer i.Release()
	defer end.Release()
	for ; !i.Equal(end); i.Next() {
		dst.Insert(hint, i.Entry())
	}
	logger.WithDefaultLevel(log.Debug).Printf("assigned %d entries from %s to %s", src.Len(), src.Kind(), dst.Kind())
}

// Fill assigns src to dst and returns dst, for constructing a store from any
// other container.
func Fill[C Container[T], T common.Ordered](dst C, src Container[T]) C {
	Assign[T](dst, src)
	return dst
}

// Swap exchanges the content of a and b. Stores of the same concrete type swap
// in constant time; otherwise content is exchanged through assignment and each
// side applies its own ordering policy.
func Swap[T common.Ordered](a, b Container[T]) {
	if a == b {
		return
	}
	if s, ok := a.(Swapper[T]); ok && s.SwapContainer(b) {
		return
	}
	saved := Collect(a)
	Assign(a, b)
	b.Clear()
	hint := b.Begin()
	defer hint.Release()
	for _, e := range saved {
		b.Insert(hint, e)
	}
}

// Collect returns the entries of c in iteration order.
func Collect[T common.Ordered](c Container[T]) []common.Entry[T] {
	out := make([]common.Entry[T], 0, c.Len())
	Fold(c, struct{}{}, func(acc struct{}, e common.Entry[T]) struct{} {
		out = append(out, e)
		return acc
	})
	return out
}

// Fold visits the entries of c in order through read-only iterators.
func Fold[T common.Ordered, A any](c Container[T], init A, f func(A, common.Entry[T]) A) A {
	acc := init
	i, end := c.ReadBegin(), c.ReadEnd()
	defer i.Release()
	defer end.Release()
	for ; !i.Equal(end); i.Next() {
		acc = f(acc, i.Entry())
	}
	return acc
}

// Sums adds up all keys and all values.
func Sums[T common.Ordered](c Container[T]) (keys, values T) {
	s := Fold(c, [2]T{}, func(acc [2]T, e common.Entry[T]) [2]T {
		acc[0] += e.Key
		acc[1] += e.Value
		return acc
	})
	return s[0], s[1]
}

// Lookup returns the value of the first entry with key.
func Lookup[T common.Ordered](c Container[T], key T) (_ g.Option[T]) {
	if f, ok := c.(Finder[T]); ok {
		it, end := f.Find(key), c.End()
		defer it.Release()
		defer end.Release()
		if it.Equal(end) {
			return
		}
		return g.Some(it.Value())
	}
	i, end := c.ReadBegin(), c.ReadEnd()
	defer i.Release()
	defer end.Release()
	for ; !i.Equal(end); i.Next() {
		if e := i.Entry(); common.SameKey(e.Key, key) {
			return g.Some(e.Value)
		}
	}
	return
}

// Format renders c as [k1~v1,k2~v2,...].
func Format[T common.Ordered](c Container[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	Fold(c, 0, func(n int, e common.Entry[T]) int {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(e.String())
		return n + 1
	})
	sb.WriteByte(']')
	return sb.String()
}
