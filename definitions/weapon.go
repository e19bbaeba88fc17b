// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import (
	"github.com/baldursgate-parity/ddrc/combat"
	"github.com/baldursgate-parity/ddrc/damage"
)

// WeaponRecord is a resolved weapon definition: its base damage dice and
// type, which proficiency unlocks it, its attack flavor (melee/ranged
// weapon/spell), and its properties (semicolon list such as
// "Finesse;Light;Thrown").
type WeaponRecord struct {
	ID               string
	DamageDice       string
	DamageType       damage.Type
	ProficiencyGroup string
	AttackType       combat.AttackType
	Properties       []combat.WeaponProperty
	Boosts           string // weapon-granted boost string, e.g. an enchantment
}

func buildWeapon(name string, fields map[string]string) *WeaponRecord {
	rawProperties := fieldList(fields, "WeaponProperties")
	properties := make([]combat.WeaponProperty, len(rawProperties))
	for i, p := range rawProperties {
		properties[i] = combat.WeaponProperty(p)
	}

	return &WeaponRecord{
		ID:               name,
		DamageDice:       fieldString(fields, "Damage", "1d4"),
		DamageType:       damage.Type(fieldString(fields, "DamageType", "Bludgeoning")),
		ProficiencyGroup: fieldString(fields, "ProficiencyGroup", ""),
		AttackType:       combat.AttackType(fieldString(fields, "AttackType", string(combat.AttackMeleeWeapon))),
		Properties:       properties,
		Boosts:           fieldString(fields, "Boosts", ""),
	}
}
