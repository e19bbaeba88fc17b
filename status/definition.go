// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package status

import (
	"fmt"

	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/functor"
)

// TickTrigger names when a status instance's duration decrements.
type TickTrigger string

const (
	// TickOwnerTurnEnd decrements at the owning combatant's turn end.
	// This is the default for every Definition.
	TickOwnerTurnEnd TickTrigger = "owner_turn_end"
	TickRoundEnd     TickTrigger = "round_end"
)

// RefreshRule governs what happens when a status with the same StackID
// is applied again while an instance is still active.
type RefreshRule string

const (
	// RefreshIfLonger replaces the remaining duration only if the
	// incoming application's duration is longer. This is the default.
	RefreshIfLonger RefreshRule = "if_longer"
	// RefreshAlways always resets the remaining duration to the
	// incoming application's duration.
	RefreshAlways RefreshRule = "always"
)

// RemoveEvent names a save that clears a status early: "save success on
// <Ability> at DC <DC>". A zero-value RemoveEvent (empty Ability) means
// the status has no save-to-remove and only expires by duration or
// explicit removal.
type RemoveEvent struct {
	Ability string
	DC      int
}

// Definition is the immutable, parsed description of a status: what it
// installs, what it does on each lifecycle hook, and how it expires.
// Construct one with NewDefinition, which parses the boost string and
// every functor chain up front so a malformed definition fails at
// registration time rather than mid-combat.
type Definition struct {
	ID      string
	Name    string
	StackID string
	Groups  []string

	// DurationRounds is the number of ticks before the status expires on
	// its own; 0 means "until removed" (explicit Remove or a RemoveEvent
	// save, never time).
	DurationRounds int
	TickTrigger    TickTrigger
	Refresh        RefreshRule

	// Passives names every passive definition ID this status grants for
	// as long as it's active; they are installed on Apply and
	// uninstalled symmetrically on Remove.
	Passives []string
	// RequiresConcentration marks a status as occupying the owner's
	// single concentration slot: applying it breaks whatever status the
	// owner was previously concentrating on.
	RequiresConcentration bool

	BoostText string
	boosts    []*boost.Boost

	OnApplyText string
	onApply     []*functor.Term

	OnTickText string
	onTick     []*functor.Term

	OnRemoveText string
	onRemove     []*functor.Term

	RemoveEvent *RemoveEvent
}

// NewDefinition parses boostText and every functor chain, returning a
// ready-to-use Definition or the first parse error encountered.
func NewDefinition(id, name string, durationRounds int, boostText, onApplyText, onTickText, onRemoveText string) (*Definition, error) {
	d := &Definition{
		ID:             id,
		Name:           name,
		DurationRounds: durationRounds,
		TickTrigger:    TickOwnerTurnEnd,
		Refresh:        RefreshIfLonger,
		BoostText:      boostText,
		OnApplyText:    onApplyText,
		OnTickText:     onTickText,
		OnRemoveText:   onRemoveText,
	}

	var err error
	if boostText != "" {
		d.boosts, _, err = boost.ParseBoosts(boostText)
		if err != nil {
			return nil, fmt.Errorf("status: definition %s: boost text: %w", id, err)
		}
	}
	if d.onApply, err = functor.ParseChain(onApplyText); err != nil {
		return nil, fmt.Errorf("status: definition %s: OnApply: %w", id, err)
	}
	if d.onTick, err = functor.ParseChain(onTickText); err != nil {
		return nil, fmt.Errorf("status: definition %s: OnTick: %w", id, err)
	}
	if d.onRemove, err = functor.ParseChain(onRemoveText); err != nil {
		return nil, fmt.Errorf("status: definition %s: OnRemove: %w", id, err)
	}

	return d, nil
}

// InGroup reports whether the definition belongs to the named group.
func (d *Definition) InGroup(group string) bool {
	for _, g := range d.Groups {
		if g == group {
			return true
		}
	}
	return false
}
