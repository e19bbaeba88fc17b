// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package boost

import (
	"github.com/baldursgate-parity/ddrc/core"
	"github.com/baldursgate-parity/ddrc/damage"
)

// Kind is the closed set of boost variants the DSL understands. Parsing a
// name outside this set never fails: the term is kept as KindUnrecognized
// so a ruleset under active development doesn't lose data to a typo, but
// the aggregators simply skip it.
type Kind string

const (
	KindNumeric           Kind = "numeric"
	KindAdvantage         Kind = "advantage"
	KindResistance        Kind = "resistance"
	KindProficiency       Kind = "proficiency"
	KindStatusImmunity    Kind = "status_immunity"
	KindAbilityOverride   Kind = "ability_override"
	KindAbilityScore      Kind = "ability_score"
	KindMaxHPBonus        Kind = "max_hp_bonus"
	KindMovementSpeed     Kind = "movement_speed"
	KindExtraAttacks      Kind = "extra_attacks"
	KindWeaponEnchantment Kind = "weapon_enchantment"
	KindUnlockSpell       Kind = "unlock_spell"
	KindUnrecognized      Kind = "unrecognized"
)

// RollKind names a category of d20 roll or damage roll that a boost can
// target with Advantage/Disadvantage or a RollBonus.
type RollKind string

const (
	RollAttack  RollKind = "AttackRoll"
	RollSave    RollKind = "SavingThrow"
	RollAbility RollKind = "AbilityCheck"
	RollDamage  RollKind = "Damage"
)

// AdvantageState is the net state of an Advantage/Disadvantage aggregation
// for one roll kind: both present cancels to Normal.
type AdvantageState int

const (
	Normal AdvantageState = iota
	Advantage
	Disadvantage
)

// ProficiencyCategory is the closed set of things a Proficiency boost can grant.
type ProficiencyCategory string

const (
	ProficiencyWeapon      ProficiencyCategory = "Weapon"
	ProficiencyArmor       ProficiencyCategory = "Armor"
	ProficiencyShields     ProficiencyCategory = "Shields"
	ProficiencySavingThrow ProficiencyCategory = "SavingThrow"
	ProficiencySkill       ProficiencyCategory = "Skill"
)

// SourceKind classifies what installed a boost, used to break ties in
// aggregation precedence: Equipment < Passive < Status < Spell < Misc.
type SourceKind string

const (
	SourceEquipment SourceKind = "equipment"
	SourcePassive   SourceKind = "passive"
	SourceStatus    SourceKind = "status"
	SourceSpell     SourceKind = "spell"
	SourceMisc      SourceKind = "misc"
)

// sourceRank orders SourceKind for deterministic tie-breaking.
var sourceRank = map[SourceKind]int{
	SourceEquipment: 0,
	SourcePassive:   1,
	SourceStatus:    2,
	SourceSpell:     3,
	SourceMisc:      4,
}

// Boost is one parsed, typed modifier term. Only the fields relevant to
// its Kind are populated; the rest are zero.
type Boost struct {
	// Handle is assigned by BoostContainer.Add and is unique within that
	// container; it's how callers remove a specific installed boost.
	Handle string

	Kind Kind
	Name string // the DSL term name, e.g. "AC", "DamageBonus", "Resistance"

	// Numeric modifier payload (KindNumeric).
	Numeric    float64
	RollKind   RollKind    // RollBonus/Advantage target, when applicable
	DamageType damage.Type // DamageBonus/Resistance

	// Advantage payload (KindAdvantage): Advantage or Disadvantage.
	AdvState AdvantageState

	// Dice is set instead of Numeric when a RollBonus argument is a dice
	// expression ("1d4") rather than a flat integer.
	Dice string

	// Resistance payload (KindResistance).
	ResistanceLevel damage.Level

	// Proficiency payload (KindProficiency).
	ProficiencyCategory ProficiencyCategory
	ProficiencyName     string

	// StatusImmunity payload (KindStatusImmunity).
	StatusID string

	// AbilityOverride/AbilityScore payload.
	Ability string

	// RawText holds the original term text for KindUnrecognized boosts,
	// and is also kept for every boost as a debugging aid.
	RawText string

	// Condition is an optional condition-expression string gating this
	// boost's contribution to aggregation. Empty means unconditional.
	// ParseBoosts and the status/passive installers leave it empty; it
	// is only set by a caller that assigns it before Add. BoostContainer
	// never evaluates it directly; callers supply an Evaluator.
	Condition string

	SourceKind SourceKind
	SourceID   string

	// Installer names whatever created the boost (a status definition,
	// an equipment slot, a passive) for debugging. RemoveBySource does
	// not read it; it matches on SourceKind and SourceID.
	Installer *core.Ref
}

// sourceOrder returns this boost's precedence rank for tie-breaking.
func (b *Boost) sourceOrder() int {
	if r, ok := sourceRank[b.SourceKind]; ok {
		return r
	}
	return sourceRank[SourceMisc]
}
