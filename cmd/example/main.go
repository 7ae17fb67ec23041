package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"

	"ordmap/pkg/common"
	"ordmap/pkg/config"
	"ordmap/pkg/core"
	"ordmap/pkg/monitor"
	"ordmap/pkg/store"
)

type args struct {
	Config string `arg:"-c" help:"path to ordmap.yaml"`
	Kind   string `arg:"-k" help:"kind of the second container (tree, path, seq)"`
	N      int    `arg:"-n" default:"8" help:"entries in the assignment run"`
}

func main() {
	var a args
	arg.MustParse(&a)

	cfg, err := config.Load(a.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log.Default = cfg.Logger()

	if err := run(a, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(a args, cfg *config.Config) error {
	kind := a.Kind
	if kind == "" {
		kind = cfg.Stores.DefaultKind
	}

	fmt.Println("== insert, mutate through iterators, merge ==")
	first, err := store.New[int64]("tree", cfg.Stores)
	if err != nil {
		return err
	}
	hint := first.Begin()
	for k := int64(0); k < 3; k++ {
		first.Insert(hint, common.MakeEntry(k, 1))
	}
	hint.Release()
	fmt.Printf("a = %s\n", core.Format(first))

	it, end := first.Begin(), first.End()
	for ; !it.Equal(end); it.Next() {
		it.SetValue(it.Value() + 1)
	}
	it.Release()
	end.Release()
	fmt.Printf("a = %s (values +1)\n", core.Format(first))

	second, err := store.New[int64](kind, cfg.Stores)
	if err != nil {
		return err
	}
	second.Insert(nil, common.MakeEntry[int64](5, 3))
	hint = first.Begin()
	i, iend := second.ReadBegin(), second.ReadEnd()
	for ; !i.Equal(iend); i.Next() {
		first.Insert(hint, i.Entry())
	}
	i.Release()
	iend.Release()
	hint.Release()
	fmt.Printf("a = %s after merging %s b = %s\n", core.Format(first), second.Kind(), core.Format(second))

	fmt.Println("== duplicate keys ==")
	for _, k := range store.Kinds() {
		c, err := store.New[int64](k, cfg.Stores)
		if err != nil {
			return err
		}
		c.Insert(nil, common.MakeEntry[int64](1, 10))
		c.Insert(nil, common.MakeEntry[int64](1, 20))
		fmt.Printf("%-4s len=%d %s\n", k, c.Len(), core.Format(c))
	}

	fmt.Println("== assignment and swap across kinds ==")
	src, err := store.New[int64](kind, cfg.Stores)
	if err != nil {
		return err
	}
	for k := 0; k < a.N; k++ {
		src.Insert(nil, common.MakeEntry(int64(k*k), int64(k)))
	}
	for _, k := range store.Kinds() {
		dst, err := store.Copy(k, cfg.Stores, src)
		if err != nil {
			return err
		}
		keys, values := core.Sums(dst)
		fmt.Printf("%s -> %-4s equal=%t sums=(%d,%d)\n", src.Kind(), k, core.Equal(src, dst), keys, values)
	}
	core.Swap(first, src)
	fmt.Printf("swapped: a = %s\n", core.Format(first))
	fmt.Printf("         b = %s\n", core.Format(src))

	fmt.Println("== cursors ==")
	for name, v := range monitor.Cursors.Snapshot() {
		fmt.Printf("%s: %v\n", name, v)
	}
	return nil
}
