// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package definitions resolves raw statblock.Record trees into typed,
// inheritance-resolved definitions: Character, Weapon, Armor, Object,
// Status, Passive, and ActionResource. Each kind is resolved
// independently — topological sort on "using" edges, then a field-map
// merge of parent-then-child — before being coerced into its typed
// shape and indexed in a Registries value.
package definitions
