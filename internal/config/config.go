// Package config holds the curated extraction configuration: which
// entities the attribute tables cover, the closed set of armor tags, and
// the override tables for cases where raw weapon data misrepresents
// actual in-game behavior.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Extraction configures the damage matrix extraction pass.
type Extraction struct {
	// ArmorTags is the closed set of target armor classifications, in
	// output order.
	ArmorTags []string `yaml:"armor_tags"`

	// Entity rosters: which definitions make it into the tables.
	Infantry  []string `yaml:"infantry"`
	Vehicles  []string `yaml:"vehicles"`
	Aircraft  []string `yaml:"aircraft"`
	Ships     []string `yaml:"ships"`
	Buildings []string `yaml:"buildings"`
	Defenses  []string `yaml:"defenses"`

	// ManualEffectiveness bypasses weapon lookup entirely for entities
	// whose raw Versus data does not reflect targeting restrictions
	// (infantry-only weapons, C4, melee).
	ManualEffectiveness map[string]map[string]float64 `yaml:"manual_effectiveness"`

	// GroundWeapons substitutes a ground weapon for entities whose
	// primary slot is anti-air only.
	GroundWeapons map[string]string `yaml:"ground_weapons"`

	// DualWeapons lists entities whose primary and secondary weapon
	// versus tables are averaged.
	DualWeapons []string `yaml:"dual_weapons"`

	// DefenseWeapons substitutes garrisoned weapons for defense
	// structures that have no Armament node of their own.
	DefenseWeapons map[string]string `yaml:"defense_weapons"`

	// AAOnlyDefenses lists defenses modeled as unable to hit anything
	// but aircraft.
	AAOnlyDefenses []string `yaml:"aa_only_defenses"`

	// Source layout inside the mod directory.
	WeaponsDir string   `yaml:"weapons_dir"`
	RulesDir   string   `yaml:"rules_dir"`
	RuleFiles  []string `yaml:"rule_files"`
}

// Units returns the combined unit roster (infantry, vehicles, aircraft,
// ships) in table order. Buildings and defenses are listed separately.
func (e Extraction) Units() []string {
	out := make([]string, 0, len(e.Infantry)+len(e.Vehicles)+len(e.Aircraft)+len(e.Ships))
	out = append(out, e.Infantry...)
	out = append(out, e.Vehicles...)
	out = append(out, e.Aircraft...)
	out = append(out, e.Ships...)
	return out
}

// DefaultExtraction returns the curated Red Alert configuration.
func DefaultExtraction() Extraction {
	return Extraction{
		ArmorTags: []string{"none", "light", "heavy", "wood", "concrete"},

		Infantry: []string{"e1", "e2", "e3", "e4", "e6", "e7", "medi", "mech", "spy", "thf", "shok", "dog"},
		Vehicles: []string{
			"1tnk", "2tnk", "3tnk", "4tnk", "v2rl", "jeep", "apc", "arty",
			"harv", "mcv", "ftrk", "mnly", "ttnk", "ctnk", "stnk", "qtnk",
			"dtrk", "mgg", "mrj", "truk",
		},
		Aircraft: []string{"heli", "hind", "mh60", "tran", "yak", "mig"},
		Ships:    []string{"ss", "dd", "ca", "pt", "lst", "msub"},
		Buildings: []string{
			"fact", "powr", "apwr", "barr", "tent", "proc", "weap", "dome",
			"fix", "atek", "stek", "hpad", "afld", "spen", "syrd", "silo",
			"kenn", "pbox", "hbox", "gun", "ftur", "tsla", "agun", "sam",
			"gap", "iron", "pdox", "mslo",
		},
		Defenses: []string{"pbox", "hbox", "gun", "ftur", "tsla", "agun", "sam"},

		ManualEffectiveness: map[string]map[string]float64{
			// Tanya: Colt45 targets infantry only and C4 demolishes
			// buildings; the raw Versus table reflects neither.
			"e7": {"none": 10.0, "light": 0.1, "heavy": 0.1, "wood": 5.0, "concrete": 5.0},
			// Spy: SilencedPPK targets infantry only, minimal damage.
			"spy": {"none": 0.1, "light": 0.01, "heavy": 0.01, "wood": 0.01, "concrete": 0.01},
			// Dog: DogJaw insta-kills infantry, cannot attack anything else.
			"dog": {"none": 5.0, "light": 0.0, "heavy": 0.0, "wood": 0.0, "concrete": 0.0},
			// Submarine: TorpTube only targets water/underwater units.
			"ss": {"none": 0.0, "light": 0.75, "heavy": 1.0, "wood": 0.75, "concrete": 5.0},
		},

		GroundWeapons: map[string]string{
			"e3":   "Dragon",     // PRIMARY = RedEye (AA)
			"heli": "HellfireAG", // PRIMARY = HellfireAA
		},

		// Mammoth tank: 120mm for armor, MammothTusk for infantry/air.
		DualWeapons: []string{"4tnk"},

		DefenseWeapons: map[string]string{
			"pbox": "M60mg", // garrisoned infantry weapon
			"hbox": "M60mg",
		},
		AAOnlyDefenses: []string{"agun", "sam"},

		WeaponsDir: "mods/ra/weapons",
		RulesDir:   "mods/ra/rules",
		RuleFiles: []string{
			"defaults.yaml", "infantry.yaml", "vehicles.yaml",
			"aircraft.yaml", "ships.yaml", "structures.yaml",
		},
	}
}

// LoadExtraction loads extraction config from a YAML file, overlaying
// the curated defaults. A missing file returns the defaults.
func LoadExtraction(path string) (Extraction, error) {
	cfg := DefaultExtraction()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
