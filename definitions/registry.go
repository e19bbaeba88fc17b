// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import "github.com/baldursgate-parity/ddrc/combat"

// Registries holds every resolved definition kind, indexed by ID, plus
// the secondary indexes combat code needs for lookups other than by
// exact name.
type Registries struct {
	Characters      map[string]*CharacterRecord
	Weapons         map[string]*WeaponRecord
	Armors          map[string]*ArmorRecord
	Objects         map[string]*ObjectRecord
	Statuses        map[string]*StatusRecord
	Passives        map[string]*PassiveRecord
	ActionResources map[string]*ActionResourceRecord

	// CharactersByClass indexes Characters by Class.
	CharactersByClass map[string][]*CharacterRecord
	// WeaponsByProficiencyGroup indexes Weapons by ProficiencyGroup.
	WeaponsByProficiencyGroup map[string][]*WeaponRecord
	// ArmorsByType indexes Armors by ArmorType.
	ArmorsByType map[combat.ArmorType][]*ArmorRecord
	// ArmorsByProficiencyGroup indexes Armors by ProficiencyGroup.
	ArmorsByProficiencyGroup map[string][]*ArmorRecord
	// StatusesByType indexes Statuses by Type.
	StatusesByType map[StatusType][]*StatusRecord
	// StatusesByGroup indexes Statuses by each group they belong to.
	StatusesByGroup map[string][]*StatusRecord
}

func newRegistries() *Registries {
	return &Registries{
		Characters:                make(map[string]*CharacterRecord),
		Weapons:                   make(map[string]*WeaponRecord),
		Armors:                    make(map[string]*ArmorRecord),
		Objects:                   make(map[string]*ObjectRecord),
		Statuses:                  make(map[string]*StatusRecord),
		Passives:                  make(map[string]*PassiveRecord),
		ActionResources:           make(map[string]*ActionResourceRecord),
		CharactersByClass:         make(map[string][]*CharacterRecord),
		WeaponsByProficiencyGroup: make(map[string][]*WeaponRecord),
		ArmorsByType:              make(map[combat.ArmorType][]*ArmorRecord),
		ArmorsByProficiencyGroup:  make(map[string][]*ArmorRecord),
		StatusesByType:            make(map[StatusType][]*StatusRecord),
		StatusesByGroup:           make(map[string][]*StatusRecord),
	}
}

func (r *Registries) indexCharacter(c *CharacterRecord) {
	r.Characters[c.ID] = c
	if c.Class != "" {
		r.CharactersByClass[c.Class] = append(r.CharactersByClass[c.Class], c)
	}
}

func (r *Registries) indexWeapon(w *WeaponRecord) {
	r.Weapons[w.ID] = w
	if w.ProficiencyGroup != "" {
		r.WeaponsByProficiencyGroup[w.ProficiencyGroup] = append(r.WeaponsByProficiencyGroup[w.ProficiencyGroup], w)
	}
}

func (r *Registries) indexArmor(a *ArmorRecord) {
	r.Armors[a.ID] = a
	if a.ArmorType != "" {
		r.ArmorsByType[a.ArmorType] = append(r.ArmorsByType[a.ArmorType], a)
	}
	if a.ProficiencyGroup != "" {
		r.ArmorsByProficiencyGroup[a.ProficiencyGroup] = append(r.ArmorsByProficiencyGroup[a.ProficiencyGroup], a)
	}
}

func (r *Registries) indexObject(o *ObjectRecord) {
	r.Objects[o.ID] = o
}

func (r *Registries) indexStatus(s *StatusRecord) {
	r.Statuses[s.ID] = s
	r.StatusesByType[s.Type] = append(r.StatusesByType[s.Type], s)
	for _, g := range s.Groups {
		r.StatusesByGroup[g] = append(r.StatusesByGroup[g], s)
	}
}

func (r *Registries) indexPassive(p *PassiveRecord) {
	r.Passives[p.ID] = p
}

func (r *Registries) indexActionResource(a *ActionResourceRecord) {
	r.ActionResources[a.ID] = a
}
