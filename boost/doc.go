// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package boost implements the typed modifier DSL: parsing boost strings
// ("AC(2); Advantage(AttackRoll)") into a closed set of strongly-typed
// Boost values, and the per-combatant BoostContainer the combat query
// layer aggregates against.
//
// Scope:
//   - ParseBoosts: semicolon-separated term parser, tolerant of unknown
//     boost kinds (preserved as KindUnrecognized with a warning rather
//     than a hard error).
//   - BoostContainer: add/remove/query by source, plus the aggregators
//     the combat query layer needs (numeric sum, advantage/disadvantage
//     net state, resistance level, status-immunity set).
//   - Source-kind precedence (Equipment < Passive < Status < Spell < Misc)
//     used to break ties when two boosts of the same numeric modifier
//     disagree on ordering.
//
// Non-Goals:
//   - Evaluating the optional condition string attached to a boost: that
//     is the condition package's job. BoostContainer aggregators accept
//     an evaluator callback rather than importing condition directly,
//     so boost has no dependency on the grammar that gates it.
//   - Definition-time resolution of boost strings attached to stat
//     blocks: that belongs to the definitions package, which calls
//     ParseBoosts while building a combatant's installed boost list.
package boost
