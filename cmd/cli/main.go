package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"

	"ordmap/pkg/common"
	"ordmap/pkg/config"
	"ordmap/pkg/core"
	"ordmap/pkg/monitor"
	"ordmap/pkg/query"
	"ordmap/pkg/store"
)

const Prompt = "ordmap> "

type shell struct {
	cfg        *config.Config
	containers map[string]core.Container[int64]
	registry   *prometheus.Registry
}

func main() {
	var args struct {
		Config string `arg:"-c" help:"path to ordmap.yaml"`
	}
	arg.MustParse(&args)

	cfg, err := config.Load(args.Config)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	log.Default = cfg.Logger()

	sh := &shell{
		cfg:        cfg,
		containers: make(map[string]core.Container[int64]),
		registry:   prometheus.NewRegistry(),
	}
	if err := monitor.Cursors.Register(sh.registry); err != nil {
		fmt.Printf("Metrics error: %v\n", err)
		return
	}

	fmt.Printf("ordmap CLI (default kind: %s)\n", cfg.Stores.DefaultKind)
	fmt.Println("Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "new":
			sh.handleNew(parts)
		case "put", "set":
			sh.handlePut(parts)
		case "get":
			sh.handleGet(parts)
		case "show", "ls":
			sh.handleShow(parts)
		case "len":
			sh.handleLen(parts)
		case "clear":
			sh.handleClear(parts)
		case "assign":
			sh.handleAssign(parts)
		case "swap":
			sh.handleSwap(parts)
		case "eq":
			sh.handleEq(parts)
		case "select":
			sh.handleSelect(line)
		case "stats":
			sh.handleStats()
		case "help":
			printHelp()
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command: '%s'. Type 'help'.\n", cmd)
		}
	}
}

func (sh *shell) lookup(name string) (core.Container[int64], bool) {
	c, ok := sh.containers[name]
	if !ok {
		fmt.Printf("Error: no container named '%s' (create it with 'new')\n", name)
	}
	return c, ok
}

func (sh *shell) handleNew(parts []string) {
	if len(parts) < 2 {
		fmt.Printf("Usage: new <name> [%s]\n", strings.Join(store.Kinds(), "|"))
		return
	}
	kind := ""
	if len(parts) > 2 {
		kind = strings.ToLower(parts[2])
	}
	c, err := store.New[int64](kind, sh.cfg.Stores)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sh.containers[parts[1]] = c
	fmt.Printf("OK (%s)\n", c.Kind())
}

func (sh *shell) handlePut(parts []string) {
	if len(parts) < 4 {
		fmt.Println("Usage: put <name> <key_int> <value_int>")
		return
	}
	c, ok := sh.lookup(parts[1])
	if !ok {
		return
	}
	key, err1 := strconv.ParseInt(parts[2], 10, 64)
	value, err2 := strconv.ParseInt(parts[3], 10, 64)
	if err1 != nil || err2 != nil {
		fmt.Println("Error: Key and value must be integers")
		return
	}

	start := time.Now()
	c.Insert(nil, common.MakeEntry(key, value))
	fmt.Printf("OK (%v)\n", time.Since(start))
}

func (sh *shell) handleGet(parts []string) {
	if len(parts) < 3 {
		fmt.Println("Usage: get <name> <key_int>")
		return
	}
	c, ok := sh.lookup(parts[1])
	if !ok {
		return
	}
	key, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		fmt.Println("Error: Key must be an integer")
		return
	}

	start := time.Now()
	v := core.Lookup(c, key)
	duration := time.Since(start)
	if !v.Ok {
		fmt.Printf("(not found) (%v)\n", duration)
		return
	}
	fmt.Printf("%d (%v)\n", v.Value, duration)
}

func (sh *shell) handleShow(parts []string) {
	if len(parts) < 2 {
		names := make([]string, 0, len(sh.containers))
		for name := range sh.containers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			c := sh.containers[name]
			fmt.Printf("  %s (%s, %d entries)\n", name, c.Kind(), c.Len())
		}
		return
	}
	if c, ok := sh.lookup(parts[1]); ok {
		fmt.Println(core.Format(c))
	}
}

func (sh *shell) handleLen(parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: len <name>")
		return
	}
	if c, ok := sh.lookup(parts[1]); ok {
		fmt.Println(c.Len())
	}
}

func (sh *shell) handleClear(parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: clear <name>")
		return
	}
	if c, ok := sh.lookup(parts[1]); ok {
		c.Clear()
		fmt.Println("OK")
	}
}

func (sh *shell) pair(parts []string, usage string) (a, b core.Container[int64], ok bool) {
	if len(parts) < 3 {
		fmt.Println("Usage: " + usage)
		return
	}
	if a, ok = sh.lookup(parts[1]); !ok {
		return
	}
	b, ok = sh.lookup(parts[2])
	return
}

func (sh *shell) handleAssign(parts []string) {
	dst, src, ok := sh.pair(parts, "assign <dst> <src>")
	if !ok {
		return
	}
	start := time.Now()
	core.Assign(dst, src)
	fmt.Printf("OK, %d entries (%v)\n", dst.Len(), time.Since(start))
}

func (sh *shell) handleSwap(parts []string) {
	a, b, ok := sh.pair(parts, "swap <a> <b>")
	if !ok {
		return
	}
	start := time.Now()
	core.Swap(a, b)
	fmt.Printf("OK (%v)\n", time.Since(start))
}

func (sh *shell) handleEq(parts []string) {
	a, b, ok := sh.pair(parts, "eq <a> <b>")
	if ok {
		fmt.Println(core.Equal(a, b))
	}
}

func (sh *shell) handleSelect(line string) {
	stmt, err := query.Parse(line)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	c, ok := sh.lookup(stmt.Container)
	if !ok {
		return
	}

	start := time.Now()
	entries := stmt.Run(c)
	duration := time.Since(start)

	fmt.Printf("Found %d entries (%v):\n", len(entries), duration)
	for i, e := range entries {
		if i >= 20 {
			fmt.Printf("... and %d more\n", len(entries)-20)
			break
		}
		fmt.Printf("  [%d] -> %d\n", e.Key, e.Value)
	}
}

func (sh *shell) handleStats() {
	families, err := sh.registry.Gather()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
		fmt.Printf("  %-40s %s\n", mf.GetName(), humanize.Comma(int64(total)))
	}
	for name, c := range sh.containers {
		s, ok := c.(interface{ Stats() map[string]interface{} })
		if !ok {
			continue
		}
		fmt.Printf("  %s:", name)
		for k, v := range s.Stats() {
			fmt.Printf(" %s=%v", k, v)
		}
		fmt.Println()
	}
}

func printHelp() {
	fmt.Println(`
Commands:
  new <name> [kind]      Create an empty container (tree, path, seq)
  put <name> <k> <v>     Insert an entry
  get <name> <k>         Look up the first value stored under k
  show [name]            Render a container, or list all
  len <name>             Number of entries
  clear <name>           Remove every entry
  assign <dst> <src>     Replace dst with the entries of src
  swap <a> <b>           Exchange content
  eq <a> <b>             Compare entries in order
  select * from <name> [where key|value <op> <n>] [order by key desc] [limit <n>]
  stats                  Cursor handle counters
  exit                   Exit CLI
	`)
}
