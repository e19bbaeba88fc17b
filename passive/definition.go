// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package passive

import (
	"fmt"

	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/functor"
)

// Definition is the immutable, parsed description of a passive: the
// boosts it installs for as long as it's active, its toggle/visibility
// metadata, and the functor hooks it runs on install and on each turn.
// Construct one with NewDefinition, which parses the boost string and
// every functor chain up front.
type Definition struct {
	ID   string
	Name string

	Toggle      bool
	Hidden      bool
	Highlight   bool
	ToggleGroup string

	BoostText string
	boosts    []*boost.Boost

	OnApplyText string
	onApply     []*functor.Term

	OnTurnText string
	onTurn     []*functor.Term
}

// NewDefinition parses boostText and every functor chain, returning a
// ready-to-use Definition or the first parse error encountered.
func NewDefinition(id, name, boostText, onApplyText, onTurnText string) (*Definition, error) {
	d := &Definition{
		ID:          id,
		Name:        name,
		BoostText:   boostText,
		OnApplyText: onApplyText,
		OnTurnText:  onTurnText,
	}

	var err error
	if boostText != "" {
		d.boosts, _, err = boost.ParseBoosts(boostText)
		if err != nil {
			return nil, fmt.Errorf("passive: definition %s: boost text: %w", id, err)
		}
	}
	if d.onApply, err = functor.ParseChain(onApplyText); err != nil {
		return nil, fmt.Errorf("passive: definition %s: OnApply: %w", id, err)
	}
	if d.onTurn, err = functor.ParseChain(onTurnText); err != nil {
		return nil, fmt.Errorf("passive: definition %s: OnTurn: %w", id, err)
	}

	return d, nil
}
