// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package resources tracks the consumable pools a combatant spends to act:
// actions, bonus actions, reactions, movement, spell slots, and any other
// named resource a definition cares to declare. Leveled resources such as
// spell slots hold independent current/max counts per level 0 through 9;
// unleveled resources such as Action simply use level 0.
package resources
