package pathmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordmap/pkg/common"
	"ordmap/pkg/core"
	"ordmap/pkg/core/cursor"
	"ordmap/pkg/core/sorted"
)

func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

func TestSequentialInsertsThroughHint(t *testing.T) {
	m := New[int](8)
	hint := m.Begin()
	defer hint.Release()
	for k := 100; k > 0; k-- {
		m.Insert(hint, common.MakeEntry(k, k*2))
		require.Equal(t, k, hint.Key())
	}
	assert.Equal(t, 100, m.Len())

	c, ok := cursor.Unwrap[pathCursor[int]](hint)
	require.True(t, ok)
	assert.Same(t, m.b, c.b)

	it, end := m.ReadBegin(), m.ReadEnd()
	defer it.Release()
	defer end.Release()
	want := 1
	for ; !it.Equal(end); it.Next() {
		assert.Equal(t, common.MakeEntry(want, want*2), it.Entry())
		want++
	}
}

func TestUpdateInPlace(t *testing.T) {
	m := New[int](8)
	m.Insert(nil, common.MakeEntry(1, 1))
	m.Insert(nil, common.MakeEntry(1, 2))
	assert.Equal(t, "[1~2]", m.String())
}

func TestForeignHintIsIgnored(t *testing.T) {
	a, b := New[int](8), New[int](8)
	a.Insert(nil, common.MakeEntry(1, 10))
	hint := a.Begin()
	defer hint.Release()

	b.Insert(hint, common.MakeEntry(5, 50))
	assert.Equal(t, "[1~10]", a.String())
	assert.Equal(t, "[5~50]", b.String())
	assert.Equal(t, 5, hint.Key())
}

func TestFindAndSetValue(t *testing.T) {
	m := New[int](8)
	for k := range 10 {
		m.Insert(nil, common.MakeEntry(k, 0))
	}
	it := m.Find(6)
	defer it.Release()
	it.SetValue(66)
	assert.Equal(t, 66, it.Value())
	assert.Equal(t, 5, it.Prev().Key())

	missing, end := m.Find(42), m.End()
	defer missing.Release()
	defer end.Release()
	assert.True(t, missing.Equal(end))
	assert.Equal(t, 9, end.Clone().Prev().Key())
}

func TestSwapAndClear(t *testing.T) {
	a, b := New[int](8), New[int](8)
	a.Insert(nil, common.MakeEntry(1, 1))
	assert.True(t, a.SwapContainer(b))
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, b.Len())

	it := b.Begin()
	defer it.Release()
	b.Clear()
	requirePanicIs(t, cursor.ErrInvalidated, func() { it.Entry() })
}

func TestClearedCursorStaysInvalidAfterReinsert(t *testing.T) {
	m := New[int](8)
	m.Insert(nil, common.MakeEntry(3, 30))
	it, end := m.Begin(), m.End()
	defer it.Release()
	defer end.Release()

	m.Clear()
	m.Insert(nil, common.MakeEntry(3, 999))
	m.Insert(nil, common.MakeEntry(7, 70))

	requirePanicIs(t, cursor.ErrInvalidated, func() { it.Entry() })
	requirePanicIs(t, cursor.ErrInvalidated, func() { it.SetValue(-1) })
	requirePanicIs(t, cursor.ErrInvalidated, func() { it.Next() })
	requirePanicIs(t, cursor.ErrInvalidated, func() { end.Prev() })
	assert.Equal(t, "[3~999,7~70]", m.String())

	fresh := m.End()
	defer fresh.Release()
	assert.False(t, end.Equal(fresh))
}

func TestNewFrom(t *testing.T) {
	src := sorted.New[int](sorted.DefaultOptions())
	src.Insert(nil, common.MakeEntry(2, 1))
	src.Insert(nil, common.MakeEntry(1, 1))
	src.Insert(nil, common.MakeEntry(2, 2))

	m := NewFrom[int](8, src)
	assert.Equal(t, "[1~1,2~2]", m.String())
	src.Clear()
	assert.Equal(t, 2, m.Len())
	assert.False(t, core.Equal[int](src, m))
}
