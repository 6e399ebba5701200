// Unified data generator: parses OpenRA MiniYAML definitions, resolves
// their inheritance, and regenerates the Go data tables in internal/data.
//
// Usage:
//
//	go run ./cmd/gendata all                # regenerate everything
//	go run ./cmd/gendata matrix             # only the damage matrix
//	go run ./cmd/gendata --verify all       # fail on drift, write nothing
//	go run ./cmd/gendata --list             # list available generators
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/openra-rl/oradata/internal/config"
)

type options struct {
	cfg     config.Extraction
	modPath string
	outDir  string
	verify  bool
}

type generator struct {
	name     string
	desc     string
	generate func(opts options) error
}

var generators []generator

func registerGenerator(name, desc string, fn func(options) error) {
	generators = append(generators, generator{name: name, desc: desc, generate: fn})
}

func init() {
	registerGenerator("matrix", "Damage matrix tables (weapons + rules MiniYAML)", generateMatrix)
}

func main() {
	modPath := flag.String("mod-path", "../OpenRA", "path to the OpenRA repository root")
	cfgPath := flag.String("config", "config/extraction.yaml", "extraction config overlay (optional)")
	outDir := flag.String("out", "internal/data", "output package directory")
	verify := flag.Bool("verify", false, "compare regenerated source against files on disk, write nothing")
	list := flag.Bool("list", false, "list available generators")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	if *list {
		printList()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.LoadExtraction(*cfgPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	opts := options{cfg: cfg, modPath: *modPath, outDir: *outDir, verify: *verify}

	var toRun []generator
	if args[0] == "all" {
		toRun = generators
	} else {
		genMap := make(map[string]generator, len(generators))
		for _, g := range generators {
			genMap[g.name] = g
		}
		for _, name := range args {
			g, ok := genMap[name]
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown generator: %s\n", name)
				printList()
				os.Exit(1)
			}
			toRun = append(toRun, g)
		}
	}

	totalStart := time.Now()
	for _, g := range toRun {
		start := time.Now()
		slog.Info("running generator", "name", g.name)
		if err := g.generate(opts); err != nil {
			slog.Error("generator failed", "name", g.name, "err", err)
			os.Exit(1)
		}
		slog.Info("generator done", "name", g.name, "elapsed", time.Since(start).Round(time.Millisecond))
	}
	slog.Info("all done", "elapsed", time.Since(totalStart).Round(time.Millisecond))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: go run ./cmd/gendata [flags] <all | name1 name2 ...>")
	fmt.Fprintln(os.Stderr, "       go run ./cmd/gendata --list")
}

func printList() {
	byName := make(map[string]string, len(generators))
	names := make([]string, 0, len(generators))
	maxLen := 0
	for _, g := range generators {
		byName[g.name] = g.desc
		names = append(names, g.name)
		if len(g.name) > maxLen {
			maxLen = len(g.name)
		}
	}
	sort.Strings(names)

	fmt.Println("Available generators:")
	for _, name := range names {
		fmt.Printf("  %-*s  %s\n", maxLen, name, byName[name])
	}
}
