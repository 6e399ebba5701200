// Package data ships the damage matrix regenerated by cmd/gendata and
// the query surface over it used by the reward and scoring layers.
package data

import "strings"

// ArmorTags is the closed set of target armor classifications.
var ArmorTags = []string{"none", "light", "heavy", "wood", "concrete"}

// Special entity roles. Destroying these causes the corresponding kind
// of disruption.
var (
	EconomicUnits       = map[string]bool{"harv": true, "truk": true}
	EconomicBuildings   = map[string]bool{"proc": true, "silo": true}
	ProductionBuildings = map[string]bool{
		"barr": true, "tent": true, "weap": true, "hpad": true,
		"afld": true, "spen": true, "syrd": true, "kenn": true,
	}
	TechBuildings  = map[string]bool{"dome": true, "atek": true, "stek": true, "fix": true}
	PowerBuildings = map[string]bool{"powr": true, "apwr": true}
)

// Effectiveness returns the damage multiplier for an attacker unit type
// against a target armor tag: 1.0 is normal damage, above is a bonus,
// below a penalty. Unknown attackers and non-combat units return 0.0;
// an unknown armor tag defaults to 1.0.
func Effectiveness(attackerType, targetArmor string) float64 {
	versus := unitEffectiveness[strings.ToLower(attackerType)]
	if len(versus) == 0 {
		return 0.0
	}
	if mult, ok := versus[strings.ToLower(targetArmor)]; ok {
		return mult
	}
	return 1.0
}

// UnitVsUnit returns the attacker's multiplier against a specific target
// unit, based on the target's armor class.
func UnitVsUnit(attacker, target string) float64 {
	return Effectiveness(attacker, UnitArmor(target))
}

// UnitArmor returns a unit's armor tag, "none" if unknown.
func UnitArmor(unitType string) string {
	if armor, ok := unitArmor[strings.ToLower(unitType)]; ok {
		return armor
	}
	return "none"
}

// BuildingArmor returns a building's armor tag, "wood" if unknown.
func BuildingArmor(buildingType string) string {
	if armor, ok := buildingArmor[strings.ToLower(buildingType)]; ok {
		return armor
	}
	return "wood"
}

// UnitCost returns a unit's build cost, 0 if unknown.
func UnitCost(unitType string) int {
	return unitCost[strings.ToLower(unitType)]
}

// BuildingCost returns a building's build cost, 0 if unknown.
func BuildingCost(buildingType string) int {
	return buildingCost[strings.ToLower(buildingType)]
}

// DefenseEffectiveness returns a defense structure's multiplier against
// a target armor tag, with the same defaults as Effectiveness.
func DefenseEffectiveness(defenseType, targetArmor string) float64 {
	versus := defenseEffectiveness[strings.ToLower(defenseType)]
	if len(versus) == 0 {
		return 0.0
	}
	if mult, ok := versus[strings.ToLower(targetArmor)]; ok {
		return mult
	}
	return 1.0
}

// CanAttack reports whether a unit type has any weapon effectiveness.
func CanAttack(unitType string) bool {
	return len(unitEffectiveness[strings.ToLower(unitType)]) > 0
}

// NonCombatUnits returns the set of units with no attack.
func NonCombatUnits() map[string]bool {
	out := make(map[string]bool)
	for unitType, versus := range unitEffectiveness {
		if len(versus) == 0 {
			out[unitType] = true
		}
	}
	return out
}

// IsEconomicTarget reports whether destroying the entity disrupts the
// enemy economy.
func IsEconomicTarget(name string) bool {
	id := strings.ToLower(name)
	return EconomicUnits[id] || EconomicBuildings[id]
}

// IsProductionTarget reports whether destroying the building disrupts
// unit production.
func IsProductionTarget(buildingType string) bool {
	return ProductionBuildings[strings.ToLower(buildingType)]
}

// IsTechTarget reports whether destroying the building regresses the
// tech tree.
func IsTechTarget(buildingType string) bool {
	return TechBuildings[strings.ToLower(buildingType)]
}

// IsPowerTarget reports whether destroying the building disrupts power.
func IsPowerTarget(buildingType string) bool {
	return PowerBuildings[strings.ToLower(buildingType)]
}
