// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package status is the runtime for durational status effects: a
// Definition describes what a status does (what boosts it installs,
// what functor chains fire on apply/tick/remove, how long it lasts),
// and a StatusSet tracks the live Instances attached to one combatant.
//
// Every instance moves through a small state machine:
//
//	Pending -> Active -> (Ticking)* -> Removed
//	                  \-> SaveCleared ->/
//
// Active is the only state in which the instance's boosts are
// installed and its functors are in effect; every transition is
// idempotent, so calling Remove on an already-removed instance changes
// nothing and returns ErrAlreadyRemoved.
package status
