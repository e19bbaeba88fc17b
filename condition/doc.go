// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package condition parses and evaluates the predicate language used
// throughout stat-block source data to gate boosts and functor terms:
// things like `context.Target.HasStatus('prone') and not IsMeleeAttack()`.
//
// Evaluate is the package entry point: it parses the string fresh on
// every call (conditions are short and resolution happens far less
// often than, say, a single attack roll's dice) and evaluates the
// resulting expression against a Context. Evaluation never mutates
// anything and never panics on bad input: an empty or blank condition
// is unconditionally true, a parse error evaluates to false, and each
// call to an unrecognized function name adds a warning and evaluates
// to false (warnings are not de-duplicated). Broken
// source data should silently deny a boost, never silently grant one.
package condition
