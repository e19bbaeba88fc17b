// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package functor

// Catalog names. Any Term whose Name doesn't match one of these is
// treated as Unknown: logged at execution, never executed.
const (
	DealDamage         = "DealDamage"
	ApplyStatus        = "ApplyStatus"
	RemoveStatus       = "RemoveStatus"
	RegainHitPoints    = "RegainHitPoints"
	RestoreResource    = "RestoreResource"
	BreakConcentration = "BreakConcentration"
	Stabilize          = "Stabilize"
	Force              = "Force"
	SetStatusDuration  = "SetStatusDuration"
	UseAttack          = "UseAttack"
)

var knownNames = map[string]bool{
	DealDamage:         true,
	ApplyStatus:        true,
	RemoveStatus:       true,
	RegainHitPoints:    true,
	RestoreResource:    true,
	BreakConcentration: true,
	Stabilize:          true,
	Force:              true,
	SetStatusDuration:  true,
	UseAttack:          true,
}

// IsKnown reports whether name is in the closed functor catalog.
func IsKnown(name string) bool {
	return knownNames[name]
}

// Dispatcher performs the actual game-state effect behind each functor
// in the catalog. A combatant/encounter implementation supplies one;
// this package only parses chains and routes terms to it.
type Dispatcher interface {
	DealDamage(term *Term, self, target Entity) error
	ApplyStatus(term *Term, self, target Entity) error
	RemoveStatus(term *Term, self, target Entity) error
	RegainHitPoints(term *Term, self, target Entity) error
	RestoreResource(term *Term, self, target Entity) error
	BreakConcentration(term *Term, self, target Entity) error
	Stabilize(term *Term, self, target Entity) error
	Force(term *Term, self, target Entity) error
	SetStatusDuration(term *Term, self, target Entity) error
	UseAttack(term *Term, self, target Entity) error
	// Unknown is called for a term whose Name is not in the catalog, or
	// for any catalog entry not yet implemented by this Dispatcher; it
	// should log and return nil rather than error, per the spec's
	// no-op-for-unimplemented contract.
	Unknown(term *Term, self, target Entity) error
}

// Entity is the minimal identity a functor dispatcher needs to route a
// term to the right game object.
type Entity interface {
	GetID() string
	GetType() string
}
