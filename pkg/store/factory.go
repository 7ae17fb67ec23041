// Package store builds containers by kind name from configuration.
package store

import (
	"slices"

	"github.com/pkg/errors"

	"ordmap/pkg/common"
	"ordmap/pkg/config"
	"ordmap/pkg/core"
	"ordmap/pkg/core/memory"
	"ordmap/pkg/core/pathmap"
	"ordmap/pkg/core/sorted"
)

var ErrUnknownKind = errors.New("unknown container kind")

// Kinds lists the names accepted by New.
func Kinds() []string {
	return []string{memory.Kind, pathmap.Kind, sorted.Kind}
}

// New returns an empty container of kind. An empty kind selects the
// configured default.
func New[T common.Ordered](kind string, cfg config.StoresConfig) (core.Container[T], error) {
	if kind == "" {
		kind = cfg.DefaultKind
	}
	switch kind {
	case memory.Kind:
		return memory.NewTreeMap[T](cfg.TreeDegree), nil
	case pathmap.Kind:
		return pathmap.New[T](cfg.PathDegree), nil
	case sorted.Kind:
		return sorted.New[T](sorted.Options{
			BloomCapacity:  cfg.BloomCapacity,
			BloomFalseProb: cfg.BloomFalseProb,
		}), nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q (want one of %v)", kind, Kinds())
}

// Copy builds a container of kind holding the entries of src.
func Copy[T common.Ordered](kind string, cfg config.StoresConfig, src core.Container[T]) (core.Container[T], error) {
	c, err := New[T](kind, cfg)
	if err != nil {
		return nil, err
	}
	return core.Fill(c, src), nil
}

func Known(kind string) bool {
	return slices.Contains(Kinds(), kind)
}
