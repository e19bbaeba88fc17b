// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import (
	"strconv"
	"strings"

	"github.com/baldursgate-parity/ddrc/damage"
)

// CharacterRecord is a resolved character (or character-template)
// definition: base ability scores, defenses, granted resources, and the
// passive/proficiency lists that seed a combatant at creation.
type CharacterRecord struct {
	ID    string
	Class string

	AbilityScores map[string]int
	AC            int
	Vitality      int

	Resistances map[damage.Type]damage.Level

	ActionResourceGrants map[string]int // resource name -> granted max at level 0/1
	Passives             []string
	ProficiencyGroups    []string
}

var abilityKeys = []string{"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma"}

func buildCharacter(name string, fields map[string]string) *CharacterRecord {
	scores := make(map[string]int, len(abilityKeys))
	for _, ability := range abilityKeys {
		scores[ability] = fieldInt(fields, ability, 10)
	}

	resistances := make(map[damage.Type]damage.Level)
	for _, entry := range fieldList(fields, "Resistances") {
		// entry shape: "Fire:Resistant"
		if parts := splitPair(entry); parts != nil {
			resistances[damage.Type(parts[0])] = damage.Level(strings.ToLower(parts[1]))
		}
	}

	grants := make(map[string]int)
	for _, entry := range fieldList(fields, "ActionResourceGrants") {
		parts := splitPair(entry)
		if parts == nil {
			continue
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		grants[parts[0]] = n
	}

	return &CharacterRecord{
		ID:                   name,
		Class:                fieldString(fields, "Class", ""),
		AbilityScores:        scores,
		AC:                   fieldInt(fields, "AC", 10),
		Vitality:             fieldInt(fields, "Vitality", 1),
		Resistances:          resistances,
		ActionResourceGrants: grants,
		Passives:             fieldList(fields, "Passives"),
		ProficiencyGroups:    fieldList(fields, "ProficiencyGroups"),
	}
}
