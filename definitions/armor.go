// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import "github.com/baldursgate-parity/ddrc/combat"

// ArmorRecord is a resolved armor definition: the AC it grants, which
// ability modifier (if any) adds to that AC and the cap on that bonus,
// its armor type and which proficiency group it requires.
type ArmorRecord struct {
	ID                 string
	BaseAC             int
	ArmorType          combat.ArmorType
	AbilityModifier    string // e.g. "Dexterity"; empty means none applies
	AbilityModifierCap int    // 0 means uncapped
	ProficiencyGroup   string
	Boosts             string
}

func buildArmor(name string, fields map[string]string) *ArmorRecord {
	return &ArmorRecord{
		ID:                 name,
		BaseAC:             fieldInt(fields, "AC", 10),
		ArmorType:          combat.ArmorType(fieldString(fields, "ArmorType", string(combat.ArmorLight))),
		AbilityModifier:    fieldString(fields, "AbilityModifier", ""),
		AbilityModifierCap: fieldInt(fields, "AbilityModifierCap", 0),
		ProficiencyGroup:   fieldString(fields, "ProficiencyGroup", ""),
		Boosts:             fieldString(fields, "Boosts", ""),
	}
}
