// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combat resolves the d20 queries a tactical turn-based combat
// system needs: attack rolls, saving throws, ability checks, damage
// rolls, and armor class. Every query consumes the caller's resolved
// base value (ability modifier, proficiency bonus) plus whatever boosts
// are currently installed on the relevant combatant's boost.BoostContainer,
// and returns every die rolled alongside the final total.
//
// Advantage and Disadvantage are resolved per roll kind before the dice
// are drawn: both present cancels to Normal, otherwise two d20s are
// rolled and the higher (Advantage) or lower (Disadvantage) becomes the
// natural result a critical/fumble is judged against.
//
// Callers are expected to use one dice.Roller per encounter so that an
// entire fight replays deterministically from a single seed; see
// dice.SeededRoller.
package combat
