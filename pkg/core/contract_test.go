package core_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordmap/pkg/common"
	"ordmap/pkg/core"
	"ordmap/pkg/core/cursor"
	"ordmap/pkg/core/memory"
	"ordmap/pkg/core/pathmap"
	"ordmap/pkg/core/sorted"
	"ordmap/pkg/monitor"
)

type factory struct {
	kind string
	new  func() core.Container[int]
}

var factories = []factory{
	{memory.Kind, func() core.Container[int] { return memory.NewTreeMap[int](4) }},
	{pathmap.Kind, func() core.Container[int] { return pathmap.New[int](8) }},
	{sorted.Kind, func() core.Container[int] { return sorted.New[int](sorted.DefaultOptions()) }},
}

func forEachPair(t *testing.T, f func(t *testing.T, x, y factory)) {
	for _, x := range factories {
		for _, y := range factories {
			t.Run(fmt.Sprintf("%s-%s", x.kind, y.kind), func(t *testing.T) {
				f(t, x, y)
			})
		}
	}
}

func filled(f factory, n int) core.Container[int] {
	c := f.new()
	for k := range n {
		c.Insert(nil, common.MakeEntry((k*7)%n, k))
	}
	return c
}

func TestAssignRoundTrip(t *testing.T) {
	forEachPair(t, func(t *testing.T, x, y factory) {
		for _, n := range []int{0, 1, 5, 64} {
			a, b := filled(x, n), y.new()
			b.Insert(nil, common.MakeEntry(-1, -1))
			core.Assign(b, a)
			assert.True(t, core.Equal(a, b), "n=%d", n)
			assert.Equal(t, core.Format(a), core.Format(b))
		}
	})
}

func TestSwapSymmetry(t *testing.T) {
	forEachPair(t, func(t *testing.T, x, y factory) {
		for _, sizes := range [][2]int{{0, 0}, {0, 3}, {4, 0}, {5, 9}} {
			a, b := filled(x, sizes[0]), filled(y, sizes[1])
			wantA, wantB := core.Collect(a), core.Collect(b)

			core.Swap(a, b)
			if diff := cmp.Diff(wantA, core.Collect(b)); diff != "" {
				t.Errorf("after swap b (-want +got):\n%s", diff)
			}
			core.Swap(b, a)
			if diff := cmp.Diff(wantA, core.Collect(a)); diff != "" {
				t.Errorf("a not restored (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantB, core.Collect(b)); diff != "" {
				t.Errorf("b not restored (-want +got):\n%s", diff)
			}
		}
	})
}

func TestClearEqualsFresh(t *testing.T) {
	forEachPair(t, func(t *testing.T, x, y factory) {
		a := filled(x, 10)
		a.Clear()
		fresh := y.new()
		assert.Equal(t, 0, a.Len())
		assert.Equal(t, 0, fresh.Len())
		assert.True(t, core.Equal(a, fresh))
		assert.Equal(t, "[]", core.Format(a))
	})
}

func TestHintFromAnotherContainer(t *testing.T) {
	forEachPair(t, func(t *testing.T, x, y factory) {
		src, dst := filled(x, 3), filled(y, 3)
		hint := src.Begin()
		defer hint.Release()

		dst.Insert(hint, common.MakeEntry(10, 100))
		dst.Insert(hint, common.MakeEntry(-5, 50))
		assert.Equal(t, 5, dst.Len())
		assert.Equal(t, 3, src.Len())
		assert.Equal(t, common.MakeEntry(-5, 50), hint.Entry())

		keys := core.Fold(dst, []int(nil), func(acc []int, e common.Entry[int]) []int {
			return append(acc, e.Key)
		})
		assert.Equal(t, []int{-5, 0, 1, 2, 10}, keys)
	})
}

func TestNullAndStaleHints(t *testing.T) {
	for _, f := range factories {
		t.Run(f.kind, func(t *testing.T) {
			c := f.new()
			var null cursor.Iterator[int]
			c.Insert(&null, common.MakeEntry(2, 2))
			defer null.Release()
			assert.Equal(t, 2, null.Key())

			stale := c.End()
			defer stale.Release()
			c.Insert(nil, common.MakeEntry(9, 9))
			c.Clear()
			c.Insert(stale, common.MakeEntry(1, 1))
			c.Insert(stale, common.MakeEntry(0, 0))
			assert.Equal(t, "[0~0,1~1]", core.Format(c))
		})
	}
}

func TestDuplicatePolicyDiffers(t *testing.T) {
	tree := memory.NewTreeMap[int](4)
	seq := sorted.New[int](sorted.DefaultOptions())
	for _, c := range []core.Container[int]{tree, seq} {
		hint := c.Begin()
		c.Insert(hint, common.MakeEntry(1, 10))
		c.Insert(hint, common.MakeEntry(1, 20))
		hint.Release()
	}

	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, "[1~20]", core.Format[int](tree))
	assert.Equal(t, "[1~10,1~20]", core.Format[int](seq))
	assert.False(t, core.Equal[int](tree, seq))

	// Assigning to a tree map collapses repeated keys; the last one wins.
	other := memory.NewTreeMap[int](4)
	core.Assign[int](other, seq)
	assert.True(t, core.Equal[int](other, tree))
}

func TestMutationThroughIterator(t *testing.T) {
	for _, f := range factories {
		t.Run(f.kind, func(t *testing.T) {
			c := filled(f, 16)
			it, end := c.Begin(), c.End()
			defer it.Release()
			defer end.Release()
			for ; !it.Equal(end); it.Next() {
				k := it.Key()
				it.SetValue(k * 3)
				require.Equal(t, k*3, it.Value())
				require.Equal(t, k, it.Key())
			}
			for _, e := range core.Collect(c) {
				assert.Equal(t, e.Key*3, e.Value)
			}
		})
	}
}

func TestConcreteScenario(t *testing.T) {
	for _, f := range factories {
		t.Run(f.kind, func(t *testing.T) {
			a, b := memory.NewTreeMap[int](4), f.new()
			hint := a.Begin()
			for k := range 3 {
				a.Insert(hint, common.MakeEntry(k, 1))
			}
			hint.Release()

			it, end := a.Begin(), a.End()
			for ; !it.Equal(end); it.Next() {
				it.SetValue(it.Value() + 1)
			}
			it.Release()

			b.Insert(nil, common.MakeEntry(5, 3))
			hint = a.Begin()
			i, bend := b.ReadBegin(), b.ReadEnd()
			for ; !i.Equal(bend); i.Next() {
				a.Insert(hint, i.Entry())
			}
			hint.Release()
			i.Release()
			bend.Release()

			assert.Equal(t, 4, a.Len())
			last := end.Clone().Prev()
			assert.Equal(t, common.MakeEntry(5, 3), last.Entry())
			assert.Equal(t, 2, last.Prev().Value())
			last.Release()
			end.Release()
			assert.Equal(t, "[0~2,1~2,2~2,5~3]", a.String())
		})
	}
}

func TestFillAndLookup(t *testing.T) {
	forEachPair(t, func(t *testing.T, x, y factory) {
		src := filled(x, 8)
		dst := core.Fill(y.new(), src)
		assert.True(t, core.Equal(src, dst))

		v := core.Lookup(dst, 3)
		require.True(t, v.Ok)
		assert.Equal(t, core.Lookup(src, 3).Value, v.Value)
		assert.False(t, core.Lookup(dst, 99).Ok)

		k, s := core.Sums(dst)
		assert.Equal(t, 28, k)
		assert.Equal(t, 28, s)
	})
}

func TestAssignToSelfIsNoop(t *testing.T) {
	for _, f := range factories {
		c := filled(f, 4)
		core.Assign(c, c)
		assert.Equal(t, 4, c.Len(), f.kind)
	}
}

func TestHandlesBalanced(t *testing.T) {
	live := monitor.Cursors.Live()
	forEachPair(t, func(t *testing.T, x, y factory) {
		a, b := filled(x, 20), filled(y, 5)
		core.Swap(a, b)
		core.Assign(a, b)
		core.Equal(a, b)
		core.Lookup(a, 2)
		core.Format(b)
	})
	assert.Equal(t, live, monitor.Cursors.Live())
}

func TestNaNRoundTrip(t *testing.T) {
	nan := math.NaN()
	floats := []func() core.Container[float64]{
		func() core.Container[float64] { return memory.NewTreeMap[float64](4) },
		func() core.Container[float64] { return pathmap.New[float64](8) },
		func() core.Container[float64] { return sorted.New[float64](sorted.DefaultOptions()) },
	}
	for _, newX := range floats {
		for _, newY := range floats {
			a, b := newX(), newY()
			a.Insert(nil, common.MakeEntry(1.0, nan))
			a.Insert(nil, common.MakeEntry(nan, 2.0))
			a.Insert(nil, common.MakeEntry(-3.0, 0.0))
			core.Assign(b, a)

			assert.Equal(t, 3, b.Len(), "%s -> %s", a.Kind(), b.Kind())
			assert.True(t, core.Equal(a, b), "%s -> %s", a.Kind(), b.Kind())
			assert.Equal(t, "[NaN~2,-3~0,1~NaN]", core.Format(b))
			assert.True(t, core.Lookup(b, nan).Ok)
		}
	}
}
