package main

import (
	"bytes"
	"fmt"
	"go/format"
	"math"
	"os"
	"strconv"

	"github.com/openra-rl/oradata/internal/config"
	"github.com/openra-rl/oradata/internal/extract"
)

const matrixHeader = `// Code generated by cmd/gendata. DO NOT EDIT.
//
// Unit effectiveness data derived from OpenRA Red Alert definitions:
// armor classes and costs from mods/ra/rules/*.yaml, versus multipliers
// from the Versus sections of mods/ra/weapons/*.yaml (1.0 = 100%% normal
// damage). Non-combat units have an empty versus map.

package data
`

// section groups roster IDs under an optional comment in the emitted
// table literals.
type section struct {
	comment string
	ids     []string
}

func unitSections(cfg config.Extraction) []section {
	return []section{
		{"Infantry", cfg.Infantry},
		{"Vehicles", cfg.Vehicles},
		{"Aircraft", cfg.Aircraft},
		{"Ships", cfg.Ships},
	}
}

// matrixSource renders internal/data/matrix_generated.go from the
// extracted tables, gofmt-formatted.
func matrixSource(cfg config.Extraction, t extract.Tables) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, matrixHeader)

	buf.WriteString("\n// Armor class for each unit (Armor: Type: in the rules).\n")
	writeStringTable(&buf, "unitArmor", unitSections(cfg), t.UnitArmor)

	buf.WriteString("\n// Armor class for each building.\n")
	writeStringTable(&buf, "buildingArmor", []section{{ids: cfg.Buildings}}, t.BuildingArmor)

	buf.WriteString("\n// Build cost for each unit (Valued: Cost: in the rules).\n")
	writeIntTable(&buf, "unitCost", unitSections(cfg), t.UnitCost)

	buf.WriteString("\n// Build cost for each building.\n")
	writeIntTable(&buf, "buildingCost", []section{{ids: cfg.Buildings}}, t.BuildingCost)

	buf.WriteString("\n// Weapon effectiveness per unit: armor tag to damage multiplier.\n")
	writeVersusTable(&buf, "unitEffectiveness", unitSections(cfg), cfg.ArmorTags, t.UnitEffectiveness)

	buf.WriteString("\n// Weapon effectiveness per defense structure.\n")
	writeVersusTable(&buf, "defenseEffectiveness", []section{{ids: cfg.Defenses}}, cfg.ArmorTags, t.DefenseEffectiveness)

	return format.Source(buf.Bytes())
}

func writeStringTable(buf *bytes.Buffer, name string, sections []section, table map[string]string) {
	fmt.Fprintf(buf, "var %s = map[string]string{\n", name)
	for _, sec := range sections {
		if sec.comment != "" {
			fmt.Fprintf(buf, "\t// %s\n", sec.comment)
		}
		for _, id := range sec.ids {
			if v, ok := table[id]; ok {
				fmt.Fprintf(buf, "\t%q: %q,\n", id, v)
			}
		}
	}
	buf.WriteString("}\n")
}

func writeIntTable(buf *bytes.Buffer, name string, sections []section, table map[string]int) {
	fmt.Fprintf(buf, "var %s = map[string]int{\n", name)
	for _, sec := range sections {
		if sec.comment != "" {
			fmt.Fprintf(buf, "\t// %s\n", sec.comment)
		}
		for _, id := range sec.ids {
			if v, ok := table[id]; ok {
				fmt.Fprintf(buf, "\t%q: %d,\n", id, v)
			}
		}
	}
	buf.WriteString("}\n")
}

func writeVersusTable(buf *bytes.Buffer, name string, sections []section, armorTags []string, table map[string]map[string]float64) {
	fmt.Fprintf(buf, "var %s = map[string]map[string]float64{\n", name)
	for _, sec := range sections {
		if sec.comment != "" {
			fmt.Fprintf(buf, "\t// %s\n", sec.comment)
		}
		for _, id := range sec.ids {
			versus, ok := table[id]
			if !ok {
				continue
			}
			if len(versus) == 0 {
				fmt.Fprintf(buf, "\t%q: {},\n", id)
				continue
			}
			fmt.Fprintf(buf, "\t%q: {", id)
			for i, tag := range armorTags {
				if i > 0 {
					buf.WriteString(", ")
				}
				fmt.Fprintf(buf, "%q: %s", tag, formatMultiplier(versus[tag]))
			}
			buf.WriteString("},\n")
		}
	}
	buf.WriteString("}\n")
}

// formatMultiplier keeps whole multipliers recognizably float ("1.0",
// "10.0") and fractional ones at their shortest form ("0.25", "1.16").
func formatMultiplier(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeGoFile(path string, src []byte) error {
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("  Generated %s (%d bytes)\n", path, len(src))
	return nil
}

// verifyFile compares freshly generated source against the committed
// file and fails on drift, so CI can catch stale tables.
func verifyFile(path string, src []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !bytes.Equal(bytes.TrimSpace(existing), bytes.TrimSpace(src)) {
		return fmt.Errorf("%s is stale: re-run cmd/gendata", path)
	}
	fmt.Printf("  Verified %s\n", path)
	return nil
}
