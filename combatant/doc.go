// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combatant is the runtime entity model: it composes a
// boost.BoostContainer, a status.StatusSet, a resources.ActionResourcePool,
// and a set of definition-derived base attributes into one Combatant,
// and implements the cross-package seams — functor.Dispatcher and
// condition.Subject — that the rest of the core calls against.
package combatant
