// Package sorted is a sorted-sequence store: entries live in one slice kept in
// key order and inserts locate their slot by binary search. Repeated keys are
// kept, ordered by insertion.
package sorted

import (
	"cmp"
	"sort"

	"github.com/anacrolix/log"

	"ordmap/pkg/common"
	"ordmap/pkg/core"
	"ordmap/pkg/core/cursor"
	"ordmap/pkg/core/structure"
)

const Kind = "seq"

var logger = log.Default.WithNames("sorted")

type Options struct {
	BloomCapacity  uint
	BloomFalseProb float64
}

func DefaultOptions() Options {
	return Options{
		BloomCapacity:  100000,
		BloomFalseProb: 0.01,
	}
}

// body is the content of a Seq. Cursors point at the body rather than the Seq
// so they follow entries across Swap.
type body[T common.Ordered] struct {
	items []common.Entry[T]
	bloom *structure.BloomFilter[T]
	// Bumped by every structural change. Cursors from older generations are
	// invalid.
	gen uint64
}

type Seq[T common.Ordered] struct {
	b *body[T]
}

var _ core.Container[int] = (*Seq[int])(nil)

func New[T common.Ordered](opts Options) *Seq[T] {
	return &Seq[T]{b: &body[T]{
		bloom: structure.NewBloomFilter[T](opts.BloomCapacity, opts.BloomFalseProb),
	}}
}

func NewFrom[T common.Ordered](opts Options, src core.Container[T]) *Seq[T] {
	return core.Fill(New[T](opts), src)
}

// Insert places e after every entry whose key is not greater than e.Key. A
// current hint from this Seq bounds the search from below; any other hint
// falls back to searching the whole slice.
func (s *Seq[T]) Insert(hint *cursor.Iterator[T], e common.Entry[T]) {
	items := s.b.items
	low := 0
	if c, ok := cursor.Unwrap[seqCursor[T]](hint); ok && c.b == s.b && c.gen == s.b.gen {
		if c.pos == 0 || cmp.Compare(items[c.pos-1].Key, e.Key) <= 0 {
			low = c.pos
		}
	}
	pos := low + sort.Search(len(items)-low, func(i int) bool {
		return cmp.Less(e.Key, items[low+i].Key)
	})

	items = append(items, common.Entry[T]{})
	copy(items[pos+1:], items[pos:])
	items[pos] = e
	s.b.items = items
	s.b.gen++
	s.b.bloom.Add(e.Key)

	if hint != nil {
		cursor.Reset[T](hint, s.at(pos))
	}
}

func (s *Seq[T]) Len() int {
	return len(s.b.items)
}

func (s *Seq[T]) Clear() {
	n := len(s.b.items)
	clear(s.b.items)
	s.b.items = s.b.items[:0]
	s.b.gen++
	s.b.bloom.Reset()
	logger.WithDefaultLevel(log.Debug).Printf("cleared %d entries", n)
}

func (s *Seq[T]) Kind() string {
	return Kind
}

func (s *Seq[T]) at(pos int) seqCursor[T] {
	return seqCursor[T]{b: s.b, pos: pos, gen: s.b.gen}
}

func (s *Seq[T]) Begin() *cursor.Iterator[T] {
	return cursor.New[T](s.at(0))
}

func (s *Seq[T]) End() *cursor.Iterator[T] {
	return cursor.New[T](s.at(len(s.b.items)))
}

func (s *Seq[T]) ReadBegin() *cursor.ReadIterator[T] {
	return cursor.NewRead[T](s.at(0))
}

func (s *Seq[T]) ReadEnd() *cursor.ReadIterator[T] {
	return cursor.NewRead[T](s.at(len(s.b.items)))
}

// Find returns an iterator at the earliest entry with key, or End. Keys never
// inserted are rejected by the bloom filter without searching.
func (s *Seq[T]) Find(key T) *cursor.Iterator[T] {
	if !s.b.bloom.Contains(key) {
		return s.End()
	}
	items := s.b.items
	pos := sort.Search(len(items), func(i int) bool {
		return !cmp.Less(items[i].Key, key)
	})
	if pos < len(items) && common.SameKey(items[pos].Key, key) {
		return cursor.New[T](s.at(pos))
	}
	return s.End()
}

// Count returns how many entries have key.
func (s *Seq[T]) Count(key T) int {
	if !s.b.bloom.Contains(key) {
		return 0
	}
	items := s.b.items
	lo := sort.Search(len(items), func(i int) bool { return !cmp.Less(items[i].Key, key) })
	hi := sort.Search(len(items), func(i int) bool { return cmp.Less(key, items[i].Key) })
	return hi - lo
}

func (s *Seq[T]) Swap(other *Seq[T]) {
	s.b, other.b = other.b, s.b
}

func (s *Seq[T]) SwapContainer(other core.Container[T]) bool {
	o, ok := other.(*Seq[T])
	if ok {
		s.Swap(o)
	}
	return ok
}

func (s *Seq[T]) Stats() map[string]interface{} {
	stats := s.b.bloom.Stats()
	stats["entries"] = len(s.b.items)
	stats["generation"] = s.b.gen
	return stats
}

func (s *Seq[T]) String() string {
	return core.Format[T](s)
}
