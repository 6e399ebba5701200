package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableConsistency(t *testing.T) {
	for unitType := range unitEffectiveness {
		_, ok := unitArmor[unitType]
		assert.True(t, ok, "%s missing from unitArmor", unitType)
		_, ok = unitCost[unitType]
		assert.True(t, ok, "%s missing from unitCost", unitType)
	}
	for unitType, versus := range unitEffectiveness {
		for tag := range versus {
			assert.Contains(t, ArmorTags, tag, "%s has unknown armor tag %s", unitType, tag)
		}
	}
}

func TestUnitArmorClasses(t *testing.T) {
	for _, infantry := range []string{"e1", "e2", "e3", "e4", "e6", "e7", "medi", "mech", "spy", "thf", "shok", "dog"} {
		assert.Equal(t, "none", UnitArmor(infantry), "%s should be unarmored", infantry)
	}
	for _, tank := range []string{"1tnk", "2tnk", "3tnk", "4tnk"} {
		assert.Equal(t, "heavy", UnitArmor(tank))
	}
	for _, aircraft := range []string{"heli", "hind", "mh60", "tran", "yak", "mig"} {
		assert.Equal(t, "light", UnitArmor(aircraft))
	}
}

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		name     string
		attacker string
		armor    string
		want     float64
	}{
		{name: "rifle vs infantry is strong", attacker: "e1", armor: "none", want: 1.5},
		{name: "rifle vs heavy armor is weak", attacker: "e1", armor: "heavy", want: 0.1},
		{name: "rocket vs heavy is effective", attacker: "e3", armor: "heavy", want: 1.0},
		{name: "rocket vs infantry is weak", attacker: "e3", armor: "none", want: 0.1},
		{name: "grenadier vs wood buildings", attacker: "e2", armor: "wood", want: 1.0},
		{name: "tesla trooper vs infantry is devastating", attacker: "shok", armor: "none", want: 10.0},
		{name: "light tank vs light is effective", attacker: "1tnk", armor: "light", want: 1.16},
		{name: "medium tank vs heavy is effective", attacker: "2tnk", armor: "heavy", want: 1.15},
		{name: "case-insensitive lookup", attacker: "E1", armor: "NONE", want: 1.5},
		{name: "non-combat unit returns zero", attacker: "harv", armor: "none", want: 0.0},
		{name: "unknown unit returns zero", attacker: "nosuch", armor: "none", want: 0.0},
		{name: "unknown armor defaults to one", attacker: "e1", armor: "plasma", want: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Effectiveness(tt.attacker, tt.armor))
		})
	}
}

func TestUnitVsUnit(t *testing.T) {
	// Target armor drives the lookup: rifle vs rifle is infantry fire,
	// rifle vs tank hits heavy armor.
	assert.Equal(t, 1.5, UnitVsUnit("e1", "e1"))
	assert.Equal(t, 0.1, UnitVsUnit("e1", "2tnk"))
	assert.Equal(t, 1.0, UnitVsUnit("e3", "2tnk"))
	assert.Equal(t, 0.3, UnitVsUnit("2tnk", "e1"))
	// Unknown target is treated as unarmored.
	assert.Equal(t, 1.5, UnitVsUnit("e1", "nosuch"))
}

func TestDefenseEffectiveness(t *testing.T) {
	assert.Equal(t, 1.5, DefenseEffectiveness("pbox", "none"))
	assert.Equal(t, 1.15, DefenseEffectiveness("gun", "heavy"))
	// AA defenses cannot touch ground armor.
	assert.Equal(t, 0.0, DefenseEffectiveness("sam", "heavy"))
	assert.Equal(t, 1.0, DefenseEffectiveness("sam", "light"))
	assert.Equal(t, 0.0, DefenseEffectiveness("nosuch", "none"))
}

func TestCanAttack(t *testing.T) {
	for _, combat := range []string{"e1", "e3", "2tnk", "heli", "dd"} {
		assert.True(t, CanAttack(combat), "%s can attack", combat)
	}
	for _, nonCombat := range []string{"e6", "medi", "harv", "mcv", "tran", "lst", "nosuch"} {
		assert.False(t, CanAttack(nonCombat), "%s cannot attack", nonCombat)
	}
}

func TestNonCombatUnits(t *testing.T) {
	nonCombat := NonCombatUnits()
	want := map[string]bool{
		"e6": true, "medi": true, "mech": true, "thf": true,
		"harv": true, "mcv": true, "mnly": true, "qtnk": true,
		"dtrk": true, "mgg": true, "mrj": true, "truk": true,
		"tran": true, "lst": true,
	}
	assert.Equal(t, want, nonCombat)
}

func TestCosts(t *testing.T) {
	assert.Equal(t, 100, UnitCost("e1"))
	assert.Equal(t, 2500, UnitCost("mcv"))
	assert.Equal(t, 1700, UnitCost("4tnk"))
	assert.Equal(t, 2000, BuildingCost("proc"))
	assert.Equal(t, 300, BuildingCost("powr"))
	assert.Equal(t, 0, UnitCost("nosuch"))
	assert.Equal(t, 0, BuildingCost("nosuch"))
}

func TestBuildingArmorClasses(t *testing.T) {
	assert.Equal(t, "wood", BuildingArmor("powr"))
	assert.Equal(t, "concrete", BuildingArmor("tsla"))
	assert.Equal(t, "concrete", BuildingArmor("pbox"))
	// Unknown buildings default to wood.
	assert.Equal(t, "wood", BuildingArmor("nosuch"))
}

func TestTargetRoles(t *testing.T) {
	assert.True(t, IsEconomicTarget("harv"))
	assert.True(t, IsEconomicTarget("PROC"))
	assert.False(t, IsEconomicTarget("e1"))

	assert.True(t, IsProductionTarget("weap"))
	assert.False(t, IsProductionTarget("powr"))

	assert.True(t, IsTechTarget("dome"))
	assert.False(t, IsTechTarget("barr"))

	assert.True(t, IsPowerTarget("apwr"))
	assert.False(t, IsPowerTarget("proc"))
}
