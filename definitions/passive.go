// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import (
	"fmt"

	"github.com/baldursgate-parity/ddrc/passive"
)

// PassiveRecord is a resolved passive definition: the display metadata
// the registry needs, plus the *passive.Definition the runtime uses to
// install and uninstall it.
type PassiveRecord struct {
	ID string

	*passive.Definition
}

func buildPassive(name string, fields map[string]string) (*PassiveRecord, error) {
	boostText := fieldString(fields, "Boosts", "")
	onApplyText := fieldString(fields, "OnApplyFunctors", "")
	onTurnText := fieldString(fields, "OnTurnFunctors", "")

	def, err := passive.NewDefinition(name, fieldString(fields, "DisplayName", name), boostText, onApplyText, onTurnText)
	if err != nil {
		return nil, fmt.Errorf("definitions: passive %s: %w", name, err)
	}
	def.Toggle = fieldBool(fields, "Toggle", false)
	def.Hidden = fieldBool(fields, "Hidden", false)
	def.Highlight = fieldBool(fields, "Highlight", false)
	def.ToggleGroup = fieldString(fields, "ToggleGroup", "")

	return &PassiveRecord{ID: name, Definition: def}, nil
}
