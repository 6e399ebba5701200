package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/openra-rl/oradata/internal/extract"
	"github.com/openra-rl/oradata/internal/miniyaml"
	"github.com/openra-rl/oradata/internal/resolve"
)

func generateMatrix(opts options) error {
	weaponPaths, err := filepath.Glob(filepath.Join(opts.modPath, opts.cfg.WeaponsDir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("glob weapons dir: %w", err)
	}
	if len(weaponPaths) == 0 {
		return fmt.Errorf("no weapon definitions under %s", filepath.Join(opts.modPath, opts.cfg.WeaponsDir))
	}
	sort.Strings(weaponPaths)

	var rulePaths []string
	for _, name := range opts.cfg.RuleFiles {
		path := filepath.Join(opts.modPath, opts.cfg.RulesDir, name)
		if _, err := os.Stat(path); err != nil {
			slog.Warn("rule file not found", "path", path)
			continue
		}
		rulePaths = append(rulePaths, path)
	}

	weaponDefs, err := loadDefinitions(weaponPaths)
	if err != nil {
		return fmt.Errorf("load weapons: %w", err)
	}
	weapons := resolve.New(weaponDefs).ResolveAll()
	slog.Info("weapons resolved", "count", weapons.Len())

	ruleDefs, err := loadDefinitions(rulePaths)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	units := resolve.New(ruleDefs).ResolveAll()
	slog.Info("rules resolved", "count", units.Len())

	tables := extract.New(opts.cfg, units, weapons).Tables()
	for _, id := range tables.Missing {
		slog.Warn("roster entry has no definition", "id", id)
	}

	src, err := matrixSource(opts.cfg, tables)
	if err != nil {
		return fmt.Errorf("render matrix source: %w", err)
	}

	outPath := filepath.Join(opts.outDir, "matrix_generated.go")
	if opts.verify {
		return verifyFile(outPath, src)
	}
	return writeGoFile(outPath, src)
}

// loadDefinitions reads the given files concurrently and parses them in
// path order into one definition set. File order matters: a top-level
// name seen again in a later file replaces the earlier definition.
func loadDefinitions(paths []string) (*miniyaml.Node, error) {
	docs := make([]string, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			docs[i] = string(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	defs := miniyaml.NewNode("")
	for i, doc := range docs {
		parsed := miniyaml.Parse(doc)
		for _, name := range parsed.Keys() {
			if _, seen := defs.Get(name); seen {
				slog.Debug("definition shadowed by later file", "name", name, "file", filepath.Base(paths[i]))
			}
			def, _ := parsed.Get(name)
			defs.Set(name, def)
		}
	}
	return defs, nil
}
