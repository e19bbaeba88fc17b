// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package functor parses and executes the semicolon-separated chains of
// effect terms attached to statuses, spells, and abilities: things like
// `IF(HasStatus('raging')): SELF:DealDamage(1d6, Fire); TARGET:ApplyStatus("prone", 50, 2)`.
//
// ParseChain turns the string into a slice of Term values. Execute then
// walks that slice in order, gating each term on its optional IF
// condition (via the condition package) and routing it to the Source
// or Target combatant per its optional SELF:/TARGET: prefix. A term
// that errors does not abort the chain: Execute records the error in
// the slice it returns and continues, matching the source data's expectation that one broken
// term in a long chain shouldn't silently no-op the rest of an ability.
//
// The actual effects (dealing damage, applying a status, ...) are not
// implemented in this package: Execute calls out to a Dispatcher the
// caller supplies, which is what a combatant/encounter implementation
// wires to its own state.
package functor
