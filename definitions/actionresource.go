// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import (
	"github.com/baldursgate-parity/ddrc/resources"
)

// ActionResourceRecord is a resolved action-resource definition: its
// name, display metadata, and the replenishment rule a runtime
// resources.Resource is built from.
type ActionResourceRecord struct {
	ID          string
	DisplayName string
	Trigger     resources.Trigger
	MaxLevel    int // 0 for unleveled resources; up to 9 for spell slots
	AbsoluteCap int // 0 means uncapped
	IsSpell     bool
	PartyWide   bool
	Hidden      bool
}

func buildActionResource(name string, fields map[string]string) (*ActionResourceRecord, string, error) {
	trigger := resources.Trigger(fieldString(fields, "ReplenishTrigger", string(resources.TriggerNever)))
	var warning string
	switch trigger {
	case resources.TriggerTurn, resources.TriggerShortRest, resources.TriggerLongRest, resources.TriggerNever:
	default:
		warning = "definitions: action resource " + name + ": unrecognized ReplenishTrigger " + string(trigger) + ", treating as never"
		trigger = resources.TriggerNever
	}

	return &ActionResourceRecord{
		ID:          name,
		DisplayName: fieldString(fields, "DisplayName", name),
		Trigger:     trigger,
		MaxLevel:    fieldInt(fields, "MaxLevel", 0),
		AbsoluteCap: fieldInt(fields, "AbsoluteCap", 0),
		IsSpell:     fieldBool(fields, "IsSpellResource", false),
		PartyWide:   fieldBool(fields, "PartyWide", false),
		Hidden:      fieldBool(fields, "Hidden", false),
	}, warning, nil
}

// NewResource builds a runtime resources.Resource from this record,
// setting the max of every level 1..MaxLevel (or just level 0 for
// unleveled resources) to AbsoluteCap, or to 1 if AbsoluteCap is 0.
// Current starts at 0 on every level.
func (a *ActionResourceRecord) NewResource() *resources.Resource {
	r := resources.NewResource(a.ID, resources.ReplenishRule{
		Trigger:   a.Trigger,
		FillToMax: true,
	})

	if a.MaxLevel <= 0 {
		_ = r.SetMax(0, a.effectiveCap(1))
		return r
	}
	for lvl := 1; lvl <= a.MaxLevel && lvl <= resources.MaxLevel; lvl++ {
		_ = r.SetMax(lvl, a.effectiveCap(1))
	}
	return r
}

func (a *ActionResourceRecord) effectiveCap(def int) int {
	if a.AbsoluteCap > 0 {
		return a.AbsoluteCap
	}
	return def
}
