// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package passive tracks passive abilities installed on a combatant:
// always-on boosts, optionally gated behind a toggle, with mutual
// exclusivity enforced within a ToggleGroup. It mirrors the status
// package's install/uninstall-boosts shape, minus duration tracking —
// a passive lives until explicitly uninstalled, not until it expires.
package passive
