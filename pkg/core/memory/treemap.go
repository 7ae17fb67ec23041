package memory

import (
	"github.com/anacrolix/log"
	"github.com/google/btree"

	"ordmap/pkg/common"
	"ordmap/pkg/core"
	"ordmap/pkg/core/cursor"
)

const Kind = "tree"

var logger = log.Default.WithNames("memory")

func less[T common.Ordered](a, b common.Entry[T]) bool {
	return a.Less(b)
}

// body is the content of a TreeMap. Cursors point at the body so they follow
// entries across Swap.
type body[T common.Ordered] struct {
	tree *btree.BTreeG[common.Entry[T]]
	// Bumped by Clear. Cursors from older epochs are invalid.
	epoch uint64
}

// TreeMap is a tree-ordered map with unique keys. Inserting an existing key
// replaces its value.
type TreeMap[T common.Ordered] struct {
	b      *body[T]
	degree int
}

var _ core.Container[int] = (*TreeMap[int])(nil)

func NewTreeMap[T common.Ordered](degree int) *TreeMap[T] {
	return &TreeMap[T]{
		b:      &body[T]{tree: btree.NewG(degree, less[T])},
		degree: degree,
	}
}

// NewTreeMapFrom copies the entries of src.
func NewTreeMapFrom[T common.Ordered](degree int, src core.Container[T]) *TreeMap[T] {
	return core.Fill(NewTreeMap[T](degree), src)
}

// Insert adds e or replaces the value stored under e.Key. The btree has no
// positional insert, so the hint is only repointed at the entry.
func (tm *TreeMap[T]) Insert(hint *cursor.Iterator[T], e common.Entry[T]) {
	tm.b.tree.ReplaceOrInsert(e)
	if hint != nil {
		cursor.Reset[T](hint, tm.at(e.Key))
	}
}

func (tm *TreeMap[T]) Len() int {
	return tm.b.tree.Len()
}

func (tm *TreeMap[T]) Clear() {
	n := tm.b.tree.Len()
	tm.b.tree.Clear(false)
	tm.b.epoch++
	logger.WithDefaultLevel(log.Debug).Printf("cleared %d entries", n)
}

func (tm *TreeMap[T]) Kind() string {
	return Kind
}

func (tm *TreeMap[T]) at(key T) treeCursor[T] {
	return treeCursor[T]{b: tm.b, epoch: tm.b.epoch, key: key}
}

func (tm *TreeMap[T]) first() treeCursor[T] {
	if first, ok := tm.b.tree.Min(); ok {
		return tm.at(first.Key)
	}
	return tm.end()
}

func (tm *TreeMap[T]) end() treeCursor[T] {
	return treeCursor[T]{b: tm.b, epoch: tm.b.epoch, end: true}
}

func (tm *TreeMap[T]) Begin() *cursor.Iterator[T] {
	return cursor.New[T](tm.first())
}

func (tm *TreeMap[T]) End() *cursor.Iterator[T] {
	return cursor.New[T](tm.end())
}

func (tm *TreeMap[T]) ReadBegin() *cursor.ReadIterator[T] {
	return cursor.NewRead[T](tm.first())
}

func (tm *TreeMap[T]) ReadEnd() *cursor.ReadIterator[T] {
	return cursor.NewRead[T](tm.end())
}

// Find returns an iterator at key, or End.
func (tm *TreeMap[T]) Find(key T) *cursor.Iterator[T] {
	if tm.b.tree.Has(common.Entry[T]{Key: key}) {
		return cursor.New[T](tm.at(key))
	}
	return tm.End()
}

// Swap exchanges content with other. Iterators keep following the entries
// they pointed at.
func (tm *TreeMap[T]) Swap(other *TreeMap[T]) {
	tm.b, other.b = other.b, tm.b
	tm.degree, other.degree = other.degree, tm.degree
}

func (tm *TreeMap[T]) SwapContainer(other core.Container[T]) bool {
	o, ok := other.(*TreeMap[T])
	if ok {
		tm.Swap(o)
	}
	return ok
}

func (tm *TreeMap[T]) String() string {
	return core.Format[T](tm)
}
