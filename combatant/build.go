// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import (
	"fmt"
	"strings"

	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/condition"
	"github.com/baldursgate-parity/ddrc/definitions"
)

// FromCharacter builds a runtime Combatant from a resolved character
// definition: ability scores, base (unarmored) AC, vitality-derived hit
// points, damage resistances, granted action resources, and granted
// passives/proficiencies. It does not equip a weapon or armor — a
// character record carries no fixed loadout — call EquipWeapon/EquipArmor
// afterward for that. Every failure (an unknown resource/passive ID, a
// malformed ProficiencyGroups entry, a boost the container rejects) is
// collected and returned alongside the otherwise-complete combatant
// rather than aborting partway through.
func FromCharacter(id string, faction Faction, char *definitions.CharacterRecord, defs *definitions.Registries) (*Combatant, []error) {
	c := New(id, faction)
	c.Class = char.Class
	for ability, score := range char.AbilityScores {
		c.AbilityScores[ability] = score
	}
	c.MaxHP = char.Vitality
	c.CurrentHP = char.Vitality

	var errs []error
	addErr := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("combatant: FromCharacter %s: "+format, append([]any{id}, args...)...))
	}

	if _, err := c.Boosts.Add(&boost.Boost{Kind: boost.KindNumeric, Name: "AC", Numeric: float64(char.AC)}, boost.SourceMisc, "base-ac"); err != nil {
		addErr("base AC: %w", err)
	}

	for dmgType, level := range char.Resistances {
		b := &boost.Boost{Kind: boost.KindResistance, DamageType: dmgType, ResistanceLevel: level}
		if _, err := c.Boosts.Add(b, boost.SourceMisc, "character-resistance:"+string(dmgType)); err != nil {
			addErr("resistance %s: %w", dmgType, err)
		}
	}

	for name, grant := range char.ActionResourceGrants {
		rec, ok := defs.ActionResources[name]
		if !ok {
			addErr("unknown action resource %q", name)
			continue
		}
		res := rec.NewResource()
		level := 0
		if rec.MaxLevel > 0 {
			level = 1
		}
		if err := res.SetMax(level, grant); err != nil {
			addErr("action resource %s: %w", name, err)
			continue
		}
		_ = res.Restore(grant, level)
		c.Resources.Register(res)
	}

	for _, passiveID := range char.Passives {
		rec, ok := defs.Passives[passiveID]
		if !ok {
			addErr("unknown passive %q", passiveID)
			continue
		}
		c.PassiveDefs[passiveID] = rec.Definition
		if _, _, err := c.Passives.Install(rec.Definition, c, c, nil, condition.Context{}); err != nil {
			addErr("installing passive %s: %w", passiveID, err)
		}
	}

	for _, entry := range char.ProficiencyGroups {
		category, name, err := splitProficiency(entry)
		if err != nil {
			addErr("%w", err)
			continue
		}
		b := &boost.Boost{Kind: boost.KindProficiency, ProficiencyCategory: category, ProficiencyName: name}
		if _, err := c.Boosts.Add(b, boost.SourceMisc, "character-proficiency:"+entry); err != nil {
			addErr("proficiency %s: %w", entry, err)
		}
	}

	return c, errs
}

// splitProficiency parses a "Category:Name" ProficiencyGroups entry
// (e.g. "Weapon:MartialWeapons", "SavingThrow:Strength"), the same
// "category:value" convention CharacterRecord.Resistances and
// ActionResourceGrants already use.
func splitProficiency(entry string) (boost.ProficiencyCategory, string, error) {
	parts := strings.SplitN(entry, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed ProficiencyGroups entry %q, want \"Category:Name\"", entry)
	}
	return boost.ProficiencyCategory(parts[0]), parts[1], nil
}

// EquipWeapon installs w's boosts (its Boosts text, usually an
// enchantment) on c under a stable per-slot source ID, so re-equipping
// the same slot replaces rather than stacks them. The weapon's
// properties/attack type are read directly off w by callers building a
// UseAttack/DamageRoll QueryInput; EquipWeapon only carries its passive
// boost payload onto the combatant.
func EquipWeapon(c *Combatant, slot string, w *definitions.WeaponRecord) error {
	return equipBoosts(c, "weapon:"+slot, w.Boosts)
}

// EquipArmor installs a's base AC and boost payload on c under a stable
// per-slot source ID. AbilityModifier/AbilityModifierCap are evaluated
// by the caller building the ArmorClass QueryInput's BaseValue, since
// that requires the combatant's current ability modifier at the moment
// AC is queried, not at equip time.
func EquipArmor(c *Combatant, slot string, a *definitions.ArmorRecord) error {
	sourceID := "armor:" + slot
	c.Boosts.RemoveBySource(boost.SourceEquipment, sourceID+":base-ac")
	if _, err := c.Boosts.Add(&boost.Boost{Kind: boost.KindNumeric, Name: "AC", Numeric: float64(a.BaseAC)}, boost.SourceEquipment, sourceID+":base-ac"); err != nil {
		return fmt.Errorf("combatant: EquipArmor %s: %w", slot, err)
	}
	return equipBoosts(c, sourceID, a.Boosts)
}

func equipBoosts(c *Combatant, sourceID, boostText string) error {
	c.Boosts.RemoveBySource(boost.SourceEquipment, sourceID)
	if strings.TrimSpace(boostText) == "" {
		return nil
	}
	boosts, _, err := boost.ParseBoosts(boostText)
	if err != nil {
		return fmt.Errorf("combatant: equip %s: %w", sourceID, err)
	}
	for _, b := range boosts {
		if _, err := c.Boosts.Add(b, boost.SourceEquipment, sourceID); err != nil {
			return fmt.Errorf("combatant: equip %s: %w", sourceID, err)
		}
	}
	return nil
}
