// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import (
	"fmt"

	"github.com/baldursgate-parity/ddrc/status"
)

// StatusType is the closed set of status categories the source data can
// declare. Anything else is kept verbatim but flagged with a warning.
type StatusType string

const (
	StatusTypeBoost        StatusType = "Boost"
	StatusTypeIncapacitated StatusType = "Incapacitated"
	StatusTypeInvisible     StatusType = "Invisible"
	StatusTypePolymorphed   StatusType = "Polymorphed"
	StatusTypeReaction      StatusType = "Reaction"
	StatusTypeDying         StatusType = "Dying"
	StatusTypeProne         StatusType = "Prone"
	StatusTypeSleeping      StatusType = "Sleeping"
	StatusTypeDoused        StatusType = "Doused"
	StatusTypeCharmed       StatusType = "Charmed"
	StatusTypeKnockedDown   StatusType = "Knocked-Down"
)

var knownStatusTypes = map[StatusType]bool{
	StatusTypeBoost: true, StatusTypeIncapacitated: true, StatusTypeInvisible: true,
	StatusTypePolymorphed: true, StatusTypeReaction: true, StatusTypeDying: true,
	StatusTypeProne: true, StatusTypeSleeping: true, StatusTypeDoused: true,
	StatusTypeCharmed: true, StatusTypeKnockedDown: true,
}

// StatusRecord is a resolved status definition: the display/lifecycle
// metadata the registry needs, plus the *status.Definition the runtime
// uses to install and tick it. Passives/RequiresConcentration live on
// the embedded Definition itself, since status.StatusSet.Apply only
// ever sees a *status.Definition, not this richer record.
type StatusRecord struct {
	ID     string
	Name   string
	Type   StatusType
	Groups []string

	*status.Definition
}

func buildStatus(name string, fields map[string]string) (*StatusRecord, string, error) {
	displayName := fieldString(fields, "DisplayName", name)
	statusType := StatusType(fieldString(fields, "Type", string(StatusTypeBoost)))

	var warning string
	if !knownStatusTypes[statusType] {
		warning = fmt.Sprintf("definitions: status %s: unrecognized Type %q, keeping as-is", name, statusType)
	}

	duration := fieldInt(fields, "DurationRounds", 0)
	boostText := fieldString(fields, "Boosts", "")
	onApply := fieldString(fields, "OnApplyFunctors", "")
	onTick := fieldString(fields, "OnTickFunctors", "")
	onRemove := fieldString(fields, "OnRemoveFunctors", "")

	def, err := status.NewDefinition(name, displayName, duration, boostText, onApply, onTick, onRemove)
	if err != nil {
		return nil, "", fmt.Errorf("definitions: status %s: %w", name, err)
	}
	def.StackID = fieldString(fields, "StackID", "")
	def.Groups = fieldList(fields, "StatusGroups")
	def.Passives = fieldList(fields, "Passives")
	def.RequiresConcentration = fieldBool(fields, "RequiresConcentration", false)

	if ability := fieldString(fields, "RemoveOnSaveAbility", ""); ability != "" {
		def.RemoveEvent = &status.RemoveEvent{
			Ability: ability,
			DC:      fieldInt(fields, "RemoveOnSaveDC", 10),
		}
	}

	return &StatusRecord{
		ID:         name,
		Name:       displayName,
		Type:       statusType,
		Groups:     def.Groups,
		Definition: def,
	}, warning, nil
}
