// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import "github.com/baldursgate-parity/ddrc/damage"

// ObjectRecord is a resolved interactable-object definition: crates,
// doors, braziers — anything with vitality and resistances but none of
// a character's ability scores or action economy.
type ObjectRecord struct {
	ID          string
	Vitality    int
	Resistances map[damage.Type]damage.Level
	Boosts      string
}

func buildObject(name string, fields map[string]string) *ObjectRecord {
	resistances := make(map[damage.Type]damage.Level)
	for _, entry := range fieldList(fields, "Resistances") {
		parts := splitPair(entry)
		if parts == nil {
			continue
		}
		resistances[damage.Type(parts[0])] = damage.Level(parts[1])
	}

	return &ObjectRecord{
		ID:          name,
		Vitality:    fieldInt(fields, "Vitality", 1),
		Resistances: resistances,
		Boosts:      fieldString(fields, "Boosts", ""),
	}
}
