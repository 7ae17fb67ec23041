// Package pathmap is a tree-ordered map whose cursors carry a btree path hint.
// Passing one of its iterators back to Insert lets the tree resume the descent
// where the previous operation ended, which makes runs of nearby inserts cheap.
package pathmap

import (
	"github.com/anacrolix/log"
	"github.com/tidwall/btree"

	"ordmap/pkg/common"
	"ordmap/pkg/core"
	"ordmap/pkg/core/cursor"
)

const Kind = "path"

var logger = log.Default.WithNames("pathmap")

func less[T common.Ordered](a, b common.Entry[T]) bool {
	return a.Less(b)
}

type body[T common.Ordered] struct {
	tree *btree.BTreeG[common.Entry[T]]
	// Bumped by Clear. Cursors from older epochs are invalid.
	epoch uint64
}

// Map has unique keys; inserting an existing key replaces its value.
type Map[T common.Ordered] struct {
	b *body[T]
}

var _ core.Container[int] = (*Map[int])(nil)

func New[T common.Ordered](degree int) *Map[T] {
	return &Map[T]{b: &body[T]{
		tree: btree.NewBTreeGOptions(less[T], btree.Options{
			Degree:  degree,
			NoLocks: true,
		}),
	}}
}

func NewFrom[T common.Ordered](degree int, src core.Container[T]) *Map[T] {
	return core.Fill(New[T](degree), src)
}

// Insert uses the path of hint when it is one of this map's cursors. Any other
// hint starts the descent from the root.
func (m *Map[T]) Insert(hint *cursor.Iterator[T], e common.Entry[T]) {
	var path btree.PathHint
	if c, ok := cursor.Unwrap[pathCursor[T]](hint); ok && c.b == m.b {
		path = c.path
	}
	m.b.tree.SetHint(e, &path)
	if hint != nil {
		c := m.at(e.Key)
		c.path = path
		cursor.Reset[T](hint, c)
	}
}

func (m *Map[T]) Len() int {
	return m.b.tree.Len()
}

func (m *Map[T]) Clear() {
	n := m.b.tree.Len()
	m.b.tree.Clear()
	m.b.epoch++
	logger.WithDefaultLevel(log.Debug).Printf("cleared %d entries", n)
}

func (m *Map[T]) Kind() string {
	return Kind
}

func (m *Map[T]) at(key T) pathCursor[T] {
	return pathCursor[T]{b: m.b, epoch: m.b.epoch, key: key}
}

func (m *Map[T]) first() pathCursor[T] {
	if first, ok := m.b.tree.Min(); ok {
		return m.at(first.Key)
	}
	return m.end()
}

func (m *Map[T]) end() pathCursor[T] {
	return pathCursor[T]{b: m.b, epoch: m.b.epoch, end: true}
}

func (m *Map[T]) Begin() *cursor.Iterator[T] {
	return cursor.New[T](m.first())
}

func (m *Map[T]) End() *cursor.Iterator[T] {
	return cursor.New[T](m.end())
}

func (m *Map[T]) ReadBegin() *cursor.ReadIterator[T] {
	return cursor.NewRead[T](m.first())
}

func (m *Map[T]) ReadEnd() *cursor.ReadIterator[T] {
	return cursor.NewRead[T](m.end())
}

func (m *Map[T]) Find(key T) *cursor.Iterator[T] {
	c := m.at(key)
	if _, ok := m.b.tree.GetHint(common.Entry[T]{Key: key}, &c.path); ok {
		return cursor.New[T](c)
	}
	return m.End()
}

func (m *Map[T]) Swap(other *Map[T]) {
	m.b, other.b = other.b, m.b
}

func (m *Map[T]) SwapContainer(other core.Container[T]) bool {
	o, ok := other.(*Map[T])
	if ok {
		m.Swap(o)
	}
	return ok
}

func (m *Map[T]) String() string {
	return core.Format[T](m)
}
