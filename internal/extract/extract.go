// Package extract derives per-entity attribute tables (armor class,
// cost, effectiveness versus each armor class) from resolved rule and
// weapon definitions.
//
// Extraction never fails: absent data degrades to "non-combat" (empty
// effectiveness) or neutral defaults, matching the resolver's tolerance
// for partial corpora.
package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/openra-rl/oradata/internal/config"
	"github.com/openra-rl/oradata/internal/miniyaml"
)

// airArmorTag is the armor class carried by aircraft; anti-air-only
// defenses are modeled as hitting nothing else.
const airArmorTag = "light"

// Tables is the extraction output: per-entity attribute maps, keyed by
// lowercase roster IDs. Immutable after construction.
type Tables struct {
	UnitArmor     map[string]string
	BuildingArmor map[string]string

	UnitCost     map[string]int
	BuildingCost map[string]int

	// Effectiveness maps armor tag to damage multiplier. An empty map
	// marks a non-combat entity.
	UnitEffectiveness    map[string]map[string]float64
	DefenseEffectiveness map[string]map[string]float64

	// Missing lists roster entries with no definition in the corpus,
	// in roster order. They are absent from the maps above.
	Missing []string
}

// Extractor builds attribute tables from resolved definition sets.
type Extractor struct {
	cfg     config.Extraction
	units   *miniyaml.Node
	weapons *miniyaml.Node

	dual   map[string]struct{}
	aaOnly map[string]struct{}
}

// New returns an Extractor over resolved unit/building definitions and
// resolved weapon definitions.
func New(cfg config.Extraction, units, weapons *miniyaml.Node) *Extractor {
	x := &Extractor{
		cfg:     cfg,
		units:   units,
		weapons: weapons,
		dual:    make(map[string]struct{}, len(cfg.DualWeapons)),
		aaOnly:  make(map[string]struct{}, len(cfg.AAOnlyDefenses)),
	}
	for _, id := range cfg.DualWeapons {
		x.dual[strings.ToLower(id)] = struct{}{}
	}
	for _, id := range cfg.AAOnlyDefenses {
		x.aaOnly[strings.ToLower(id)] = struct{}{}
	}
	return x
}

// Tables runs the extraction over the configured rosters.
func (x *Extractor) Tables() Tables {
	t := Tables{
		UnitArmor:            make(map[string]string),
		BuildingArmor:        make(map[string]string),
		UnitCost:             make(map[string]int),
		BuildingCost:         make(map[string]int),
		UnitEffectiveness:    make(map[string]map[string]float64),
		DefenseEffectiveness: make(map[string]map[string]float64),
	}

	for _, uid := range x.cfg.Units() {
		def, ok := x.definition(uid)
		if !ok {
			t.Missing = append(t.Missing, uid)
			continue
		}
		t.UnitArmor[uid] = ArmorClass(def)
		t.UnitCost[uid] = Cost(def)
		t.UnitEffectiveness[uid] = x.UnitVersus(uid, def)
	}

	for _, bid := range x.cfg.Buildings {
		def, ok := x.definition(bid)
		if !ok {
			t.Missing = append(t.Missing, bid)
			continue
		}
		t.BuildingArmor[bid] = ArmorClass(def)
		t.BuildingCost[bid] = Cost(def)
	}

	for _, did := range x.cfg.Defenses {
		def, ok := x.definition(did)
		if !ok {
			continue
		}
		t.DefenseEffectiveness[did] = x.DefenseVersus(did, def)
	}

	return t
}

// definition looks up a roster entry's resolved definition. Definition
// names in the rule files are uppercase ("E1", "1TNK").
func (x *Extractor) definition(id string) (*miniyaml.Node, bool) {
	return x.units.Get(strings.ToUpper(id))
}

// ArmorClass reads the armor tag from a resolved definition, lowercased.
// Entities without an Armor node fall back to "none" (unarmored).
func ArmorClass(def *miniyaml.Node) string {
	armor := def.PathValue("Armor", "Type")
	if armor == "" {
		return "none"
	}
	return strings.ToLower(armor)
}

// Cost reads the build cost from a resolved definition. Absent or
// unparseable values yield zero; costs are never negative.
func Cost(def *miniyaml.Node) int {
	cost, err := strconv.Atoi(def.PathValue("Valued", "Cost"))
	if err != nil || cost < 0 {
		return 0
	}
	return cost
}

// PrimaryWeapon returns the name in an entity's primary weapon slot:
// Armament@PRIMARY, then plain Armament, then Armament@AG (anti-ground),
// then Armament@SECONDARY as a last resort. Empty if the entity has no
// armament.
func PrimaryWeapon(def *miniyaml.Node) string {
	if arm := def.PathChild("Armament@PRIMARY"); arm != nil {
		return arm.PathValue("Weapon")
	}
	if arm := def.PathChild("Armament"); arm != nil {
		return arm.PathValue("Weapon")
	}
	if arm := def.PathChild("Armament@AG"); arm != nil {
		return arm.PathValue("Weapon")
	}
	if arm := def.PathChild("Armament@SECONDARY"); arm != nil {
		if weapon := arm.PathValue("Weapon"); weapon != "" {
			return weapon
		}
	}
	return ""
}

// SecondaryWeapon returns the Armament@SECONDARY weapon name, used for
// dual-weapon averaging.
func SecondaryWeapon(def *miniyaml.Node) string {
	if arm := def.PathChild("Armament@SECONDARY"); arm != nil {
		return arm.PathValue("Weapon")
	}
	return ""
}

// GarrisonWeapon returns the Armament@GARRISONED weapon name, used by
// defense structures manned by infantry.
func GarrisonWeapon(def *miniyaml.Node) string {
	if arm := def.PathChild("Armament@GARRISONED"); arm != nil {
		return arm.PathValue("Weapon")
	}
	return ""
}

// Versus extracts the damage multipliers from a resolved weapon
// definition: the first warhead child carrying spread or target damage
// with a Versus table is authoritative. Percentages convert to
// multipliers. Empty when the weapon has no versus data.
func (x *Extractor) Versus(weapon *miniyaml.Node) map[string]float64 {
	versus := make(map[string]float64)

	for _, key := range weapon.Keys() {
		if !strings.HasPrefix(strings.ToLower(key), "warhead") {
			continue
		}
		warhead, _ := weapon.Get(key)
		if !strings.Contains(warhead.Value, "SpreadDamage") &&
			!strings.Contains(warhead.Value, "TargetDamage") {
			continue
		}
		vsNode := warhead.PathChild("Versus")
		if vsNode == nil {
			continue
		}

		for _, armor := range x.cfg.ArmorTags {
			for _, k := range vsNode.Keys() {
				if !strings.EqualFold(k, armor) {
					continue
				}
				entry, _ := vsNode.Get(k)
				if pct, err := strconv.Atoi(entry.Value); err == nil {
					versus[armor] = float64(pct) / 100.0
				}
			}
		}

		if len(versus) > 0 {
			break
		}
	}

	return versus
}

// UnitVersus builds an entity's effectiveness table, applying the
// override precedence: manual table, ground-weapon substitution,
// dual-weapon averaging, then plain primary-weapon extraction. An empty
// result marks the entity as non-combat.
func (x *Extractor) UnitVersus(id string, def *miniyaml.Node) map[string]float64 {
	uid := strings.ToLower(id)

	if manual, ok := x.cfg.ManualEffectiveness[uid]; ok {
		out := make(map[string]float64, len(manual))
		for tag, mult := range manual {
			out[tag] = mult
		}
		return out
	}

	weaponName, overridden := x.cfg.GroundWeapons[uid]
	if !overridden {
		weaponName = PrimaryWeapon(def)
	}
	if weaponName == "" {
		return map[string]float64{}
	}

	weaponDef, _ := x.weapons.Get(weaponName)
	primary := x.Versus(weaponDef)
	if len(primary) == 0 {
		return map[string]float64{}
	}

	if _, isDual := x.dual[uid]; isDual {
		if secName := SecondaryWeapon(def); secName != "" {
			if secDef, ok := x.weapons.Get(secName); ok {
				if secondary := x.Versus(secDef); len(secondary) > 0 {
					return x.fill(averageVersus(primary, secondary))
				}
			}
		}
	}

	return x.fill(primary)
}

// DefenseVersus builds a defense structure's effectiveness table.
// Anti-air-only defenses hit nothing but aircraft; garrisoned defenses
// use the configured substitute weapon.
func (x *Extractor) DefenseVersus(id string, def *miniyaml.Node) map[string]float64 {
	bid := strings.ToLower(id)

	if _, ok := x.aaOnly[bid]; ok {
		out := make(map[string]float64, len(x.cfg.ArmorTags))
		for _, tag := range x.cfg.ArmorTags {
			if tag == airArmorTag {
				out[tag] = 1.0
			} else {
				out[tag] = 0.0
			}
		}
		return out
	}

	weaponName, overridden := x.cfg.DefenseWeapons[bid]
	if !overridden {
		weaponName = PrimaryWeapon(def)
		if weaponName == "" {
			weaponName = GarrisonWeapon(def)
		}
	}
	if weaponName == "" {
		return map[string]float64{}
	}

	weaponDef, _ := x.weapons.Get(weaponName)
	versus := x.Versus(weaponDef)
	if len(versus) == 0 {
		return map[string]float64{}
	}
	return x.fill(versus)
}

// fill completes a versus table over every configured armor tag,
// defaulting missing tags to 1.0 (no special modifier).
func (x *Extractor) fill(versus map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(x.cfg.ArmorTags))
	for _, tag := range x.cfg.ArmorTags {
		if mult, ok := versus[tag]; ok {
			out[tag] = mult
		} else {
			out[tag] = 1.0
		}
	}
	return out
}

// averageVersus averages two weapons' versus tables over the union of
// their tags, each side defaulting to 1.0 where it lacks a tag, rounded
// to two decimals.
func averageVersus(primary, secondary map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(primary)+len(secondary))
	for tag := range primary {
		out[tag] = 0
	}
	for tag := range secondary {
		out[tag] = 0
	}
	for tag := range out {
		p, ok := primary[tag]
		if !ok {
			p = 1.0
		}
		s, ok := secondary[tag]
		if !ok {
			s = 1.0
		}
		out[tag] = math.Round((p+s)/2*100) / 100
	}
	return out
}
