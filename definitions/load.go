// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import (
	"sort"

	"github.com/baldursgate-parity/ddrc/statblock"
)

const (
	kindCharacter      = "Character"
	kindWeapon         = "Weapon"
	kindArmor          = "Armor"
	kindObject         = "Object"
	kindStatus         = "Status"
	kindPassive        = "Passive"
	kindActionResource = "ActionResource"
)

// Load resolves every record into its typed, inheritance-merged
// definition and indexes the result. Each kind is sorted and merged
// independently; the only hard error is an inheritance cycle within a
// kind, which names every record on it. Everything else — unrecognized
// kinds, unresolved parents, malformed boost/functor text on a single
// record — is reported as a warning and that record is either skipped
// or registered with partial fields, per 4.B.
func Load(records []*statblock.Record) (*Registries, []string, error) {
	reg := newRegistries()
	var warnings []string

	groups := groupByKind(records)

	for _, kind := range sortedKeys(groups) {
		resolved, warns, err := resolveGroup(groups[kind])
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, warns...)

		for _, name := range sortedResolvedNames(resolved) {
			rf := resolved[name]
			switch kind {
			case kindCharacter:
				reg.indexCharacter(buildCharacter(name, rf.fields))
			case kindWeapon:
				reg.indexWeapon(buildWeapon(name, rf.fields))
			case kindArmor:
				reg.indexArmor(buildArmor(name, rf.fields))
			case kindObject:
				reg.indexObject(buildObject(name, rf.fields))
			case kindStatus:
				s, warn, err := buildStatus(name, rf.fields)
				if err != nil {
					warnings = append(warnings, err.Error())
					continue
				}
				if warn != "" {
					warnings = append(warnings, warn)
				}
				reg.indexStatus(s)
			case kindPassive:
				p, err := buildPassive(name, rf.fields)
				if err != nil {
					warnings = append(warnings, err.Error())
					continue
				}
				reg.indexPassive(p)
			case kindActionResource:
				a, warn, err := buildActionResource(name, rf.fields)
				if err != nil {
					warnings = append(warnings, err.Error())
					continue
				}
				if warn != "" {
					warnings = append(warnings, warn)
				}
				reg.indexActionResource(a)
			default:
				warnings = append(warnings, "definitions: unrecognized record kind "+kind+" for "+name+", skipped")
			}
		}
	}

	return reg, warnings, nil
}

func sortedKeys(groups map[string][]*statblock.Record) []string {
	out := make([]string, 0, len(groups))
	for k := range groups {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedResolvedNames(resolved map[string]*resolvedFields) []string {
	out := make([]string, 0, len(resolved))
	for k := range resolved {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
