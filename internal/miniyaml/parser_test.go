package miniyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Structure(t *testing.T) {
	doc := "E1:\n" +
		"\tArmor:\n" +
		"\t\tType: None\n" +
		"\tValued:\n" +
		"\t\tCost: 100\n" +
		"2TNK:\n" +
		"\tArmor:\n" +
		"\t\tType: Heavy\n"

	root := Parse(doc)
	require.Equal(t, []string{"E1", "2TNK"}, root.Keys())

	e1, ok := root.Get("E1")
	require.True(t, ok)
	assert.Equal(t, "", e1.Value)
	assert.Equal(t, []string{"Armor", "Valued"}, e1.Keys())
	assert.Equal(t, "None", e1.PathValue("Armor", "Type"))
	assert.Equal(t, "100", e1.PathValue("Valued", "Cost"))
}

func TestParse_ValueAndChildrenCoexist(t *testing.T) {
	doc := "UNIT:\n" +
		"\tArmament@PRIMARY: SomeTag\n" +
		"\t\tWeapon: M1Carbine\n"

	root := Parse(doc)
	arm := root.PathChild("UNIT", "Armament@PRIMARY")
	require.NotNil(t, arm)
	assert.Equal(t, "SomeTag", arm.Value)
	assert.Equal(t, "M1Carbine", arm.PathValue("Weapon"))
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	doc := "# weapons\n" +
		"\n" +
		"A:\n" +
		"\t# nested comment\n" +
		"\n" +
		"\tf: 1\n" +
		"B:\n" +
		"\tg: 2\n"

	root := Parse(doc)
	assert.Equal(t, []string{"A", "B"}, root.Keys())
	assert.Equal(t, "1", root.PathValue("A", "f"))
	assert.Equal(t, "2", root.PathValue("B", "g"))
}

func TestParse_LineWithoutColon(t *testing.T) {
	doc := "A:\n\tFlagOnly\n"

	root := Parse(doc)
	flag := root.PathChild("A", "FlagOnly")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.Value)
}

func TestParse_ValueWhitespaceTrimmed(t *testing.T) {
	doc := "A:\n\tf:   spaced out  \n"

	root := Parse(doc)
	assert.Equal(t, "spaced out", root.PathValue("A", "f"))
}

func TestParse_DuplicateSiblingKeyReplaces(t *testing.T) {
	doc := "A:\n" +
		"\tf: 1\n" +
		"\t\told: keep\n" +
		"\tg: 2\n" +
		"\tf: 3\n"

	root := Parse(doc)
	a, _ := root.Get("A")
	// Replacement keeps the original order slot; the old subtree is gone.
	assert.Equal(t, []string{"f", "g"}, a.Keys())
	assert.Equal(t, "3", a.PathValue("f"))
	assert.Nil(t, a.PathChild("f", "old"))
}

func TestParse_MalformedIndentationTolerated(t *testing.T) {
	// Depth jumps from 0 straight to 2; the nearest shallower line is
	// still the parent.
	doc := "A:\n" +
		"\t\t\tdeep: 1\n" +
		"\tshallow: 2\n"

	root := Parse(doc)
	assert.Equal(t, "1", root.PathValue("A", "deep"))
	assert.Equal(t, "2", root.PathValue("A", "shallow"))
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Equal(t, 0, Parse("").Len())
	assert.Equal(t, 0, Parse("# only comments\n\n").Len())
}

func TestParseAll_LastDocumentWins(t *testing.T) {
	first := "A:\n\tf: 1\n\tonly_first: yes\nB:\n\tg: 2\n"
	second := "A:\n\tf: 9\nC:\n\th: 3\n"

	defs := ParseAll(first, second)
	// A keeps its original order slot but is replaced wholesale.
	assert.Equal(t, []string{"A", "B", "C"}, defs.Keys())
	assert.Equal(t, "9", defs.PathValue("A", "f"))
	assert.Nil(t, defs.PathChild("A", "only_first"))
	assert.Equal(t, "2", defs.PathValue("B", "g"))
	assert.Equal(t, "3", defs.PathValue("C", "h"))
}
