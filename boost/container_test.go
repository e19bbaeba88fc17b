package boost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/damage"
)

func parseOne(t *testing.T, s string) *boost.Boost {
	t.Helper()
	boosts, _, err := boost.ParseBoosts(s)
	require.NoError(t, err)
	require.Len(t, boosts, 1)
	return boosts[0]
}

func TestBoostContainer_AddRejectsDuplicates(t *testing.T) {
	c := boost.NewBoostContainer()

	_, err := c.Add(parseOne(t, "AC(2)"), boost.SourceEquipment, "shield-1")
	require.NoError(t, err)

	_, err = c.Add(parseOne(t, "AC(2)"), boost.SourceEquipment, "shield-1")
	assert.Error(t, err)
}

func TestBoostContainer_SumNumeric(t *testing.T) {
	c := boost.NewBoostContainer()
	_, _ = c.Add(parseOne(t, "AC(2)"), boost.SourceEquipment, "shield-1")
	_, _ = c.Add(parseOne(t, "AC(1)"), boost.SourcePassive, "defense-feat")

	assert.Equal(t, 3.0, c.SumNumeric("AC", "", nil))
}

func TestBoostContainer_SumNumeric_FiltersByCondition(t *testing.T) {
	c := boost.NewBoostContainer()
	conditional := parseOne(t, "AC(5)")
	conditional.Condition = "target.is_raging"
	_, _ = c.Add(conditional, boost.SourceStatus, "rage-1")

	reject := func(string) bool { return false }
	assert.Equal(t, 0.0, c.SumNumeric("AC", "", reject))

	accept := func(string) bool { return true }
	assert.Equal(t, 5.0, c.SumNumeric("AC", "", accept))
}

func TestBoostContainer_ResistanceLevel_Precedence(t *testing.T) {
	c := boost.NewBoostContainer()
	_, _ = c.Add(parseOne(t, "Resistance(Fire, Resistant)"), boost.SourceEquipment, "ring-1")
	_, _ = c.Add(parseOne(t, "Resistance(Fire, Vulnerable)"), boost.SourceStatus, "curse-1")

	assert.Equal(t, damage.LevelVulnerable, c.ResistanceLevel("Fire", nil))

	_, _ = c.Add(parseOne(t, "Resistance(Fire, Immune)"), boost.SourceSpell, "fire-shield")
	assert.Equal(t, damage.LevelImmune, c.ResistanceLevel("Fire", nil))
}

func TestBoostContainer_AdvantageState_CancelsToNormal(t *testing.T) {
	c := boost.NewBoostContainer()
	_, _ = c.Add(parseOne(t, "Advantage(AttackRoll)"), boost.SourceStatus, "blessed")
	_, _ = c.Add(parseOne(t, "Disadvantage(AttackRoll)"), boost.SourceStatus, "prone")

	assert.Equal(t, boost.Normal, c.AdvantageState(boost.RollAttack, nil))
}

func TestBoostContainer_StatusImmunities(t *testing.T) {
	c := boost.NewBoostContainer()
	_, _ = c.Add(parseOne(t, `StatusImmunity("poisoned")`), boost.SourcePassive, "dwarven-resilience")

	immunities := c.StatusImmunities(nil)
	assert.True(t, immunities["poisoned"])
	assert.False(t, immunities["charmed"])
}

func TestBoostContainer_RemoveBySource(t *testing.T) {
	c := boost.NewBoostContainer()
	_, _ = c.Add(parseOne(t, "AC(2)"), boost.SourceStatus, "shield-spell")
	_, _ = c.Add(parseOne(t, "AC(1)"), boost.SourcePassive, "defense-feat")

	removed := c.RemoveBySource(boost.SourceStatus, "shield-spell")
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1.0, c.SumNumeric("AC", "", nil))
}

func TestBoostContainer_QueryBySourceKind(t *testing.T) {
	c := boost.NewBoostContainer()
	_, _ = c.Add(parseOne(t, "AC(2)"), boost.SourceEquipment, "plate")
	_, _ = c.Add(parseOne(t, "AC(1)"), boost.SourceStatus, "shield-spell")

	equip := c.QueryBySourceKind(boost.SourceEquipment)
	require.Len(t, equip, 1)
	assert.Equal(t, "plate", equip[0].SourceID)
}

func TestBoostContainer_HasProficiency(t *testing.T) {
	c := boost.NewBoostContainer()
	_, _ = c.Add(parseOne(t, `Proficiency(Weapon, "greataxe")`), boost.SourceEquipment, "class-grant")

	assert.True(t, c.HasProficiency(boost.ProficiencyWeapon, "greataxe", nil))
	assert.False(t, c.HasProficiency(boost.ProficiencyWeapon, "longbow", nil))
}
