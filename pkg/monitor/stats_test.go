package monitor

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorCountersPairAllocations(t *testing.T) {
	cs := NewCursorStats()
	a := cs.For("memory.treeCursor[int]")
	assert.Same(t, a, cs.For("memory.treeCursor[int]"))

	a.Alloc()
	a.Alloc()
	a.Release()
	assert.EqualValues(t, 1, cs.Live())
	assert.EqualValues(t, 2, testutil.ToFloat64(cs.allocated.WithLabelValues("memory.treeCursor[int]")))
	assert.EqualValues(t, 1, testutil.ToFloat64(cs.live))

	a.Release()
	assert.EqualValues(t, 0, cs.Live())
}

func TestRegisterExposesCollectors(t *testing.T) {
	cs := NewCursorStats()
	reg := prometheus.NewRegistry()
	require.NoError(t, cs.Register(reg))

	cs.RecordTable()
	cs.For("sorted.seqCursor[string]").Alloc()

	expected := `
# HELP ordmap_cursor_tables_total Operation tables generated.
# TYPE ordmap_cursor_tables_total counter
ordmap_cursor_tables_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ordmap_cursor_tables_total"))

	snap := cs.Snapshot()
	assert.Equal(t, 1, snap["cursor_types"])
	assert.EqualValues(t, 1, snap["cursor_tables"])
	assert.EqualValues(t, 1, snap["cursor_handles_live"])

	assert.Error(t, cs.Register(reg))
}
