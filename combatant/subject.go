// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import (
	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/condition"
	"github.com/baldursgate-parity/ddrc/damage"
)

// Combatant implements condition.Subject directly, so it can appear as
// either Source or Target in a condition.Context.
var _ condition.Subject = (*Combatant)(nil)

// HasStatus reports whether any active status instance on the
// combatant has the given definition ID.
func (c *Combatant) HasStatus(id string) bool {
	for _, inst := range c.Statuses.Active() {
		if inst.DefinitionID == id {
			return true
		}
	}
	return false
}

// HasTag reports whether tag is set on the combatant.
func (c *Combatant) HasTag(tag string) bool {
	return c.Tags[tag]
}

// HasProficiency delegates to the boost container, which aggregates
// Proficiency boosts from equipment, passives, and class grants alike.
func (c *Combatant) HasProficiency(category, name string) bool {
	return c.Boosts.HasProficiency(boost.ProficiencyCategory(category), name, nil)
}

// AbilityScore returns the combatant's effective (boost-adjusted) raw
// ability score, honoring AbilityOverride/AbilityScore boosts the same
// way AbilityModifier does.
func (c *Combatant) AbilityScore(ability string) int {
	score := c.AbilityScores[ability]
	for _, b := range c.Boosts.Query(func(b *boost.Boost) bool { return b.Ability == ability }) {
		switch b.Kind {
		case boost.KindAbilityOverride:
			return int(b.Numeric)
		case boost.KindAbilityScore:
			score += int(b.Numeric)
		}
	}
	return score
}

// HasResource reports whether the named resource has at least one unit
// available at level.
func (c *Combatant) HasResource(name string, level int) bool {
	return c.Resources.Has(name, 1, level)
}

// Level returns the combatant's class level when class is empty or
// matches the combatant's own class, 0 otherwise. Multiclassing is out of scope for
// this core; a single Class/Level pair is tracked per combatant.
func (c *Combatant) Level(class string) int {
	if class == "" || class == c.Class {
		return c.ClassLevel
	}
	return 0
}

// ResistanceLevel delegates to the boost container's Resistance
// aggregation.
func (c *Combatant) ResistanceLevel(damageType damage.Type) damage.Level {
	return c.Boosts.ResistanceLevel(damageType, nil)
}
