package cursor

import (
	"reflect"
	"sync"

	"github.com/anacrolix/log"

	"ordmap/pkg/common"
	"ordmap/pkg/monitor"
)

var logger = log.Default.WithNames("cursor")

// Default tables keyed by native cursor type. Entries are written once and
// only read afterwards.
var tables sync.Map

// DefaultOps returns the shared table for C, building it on first use.
func DefaultOps[T common.Ordered, C any, P Native[T, C]]() *Ops[T] {
	ct := reflect.TypeFor[C]()
	if v, ok := tables.Load(ct); ok {
		return v.(*Ops[T])
	}
	v, loaded := tables.LoadOrStore(ct, buildOps[T, C, P](Overrides[T, C]{}))
	if !loaded {
		monitor.Cursors.RecordTable()
		logger.WithDefaultLevel(log.Debug).Printf("built operation table for %v", ct)
	}
	return v.(*Ops[T])
}

// TableCount is the number of default tables built so far.
func TableCount() (n int) {
	tables.Range(func(_, _ any) bool {
		n++
		return true
	})
	return
}
