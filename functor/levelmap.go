// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package functor

import (
	"fmt"
	"regexp"
)

// LevelMap is a class-level-indexed table of dice/numeric expressions,
// e.g. Barbarian Rage damage bonus by level: {1: "2", 9: "3", 16: "4"}.
type LevelMap struct {
	Class  string
	Values map[int]string
}

// valueAt returns the entry for the highest key <= level, or "" if
// level is below every entry.
func (m LevelMap) valueAt(level int) (string, bool) {
	best := -1
	for k := range m.Values {
		if k <= level && k > best {
			best = k
		}
	}
	if best == -1 {
		return "", false
	}
	return m.Values[best], true
}

var levelMapValueRegex = regexp.MustCompile(`LevelMapValue\(\s*([A-Za-z_][A-Za-z0-9_]*)\s*\)`)

// ResolveLevelMapValue expands a single `LevelMapValue(name)` reference
// in expr using the named table, looking up the source's level in the
// table's associated class via levelOf. An expr with no such reference
// is returned unchanged.
func ResolveLevelMapValue(expr string, tables map[string]LevelMap, levelOf func(class string) int) (string, error) {
	m := levelMapValueRegex.FindStringSubmatch(expr)
	if m == nil {
		return expr, nil
	}
	name := m[1]

	table, ok := tables[name]
	if !ok {
		return "", fmt.Errorf("functor: unknown level-map table %q", name)
	}

	level := levelOf(table.Class)
	value, ok := table.valueAt(level)
	if !ok {
		return "", fmt.Errorf("functor: no %s entry at or below level %d for %s", name, level, table.Class)
	}

	return levelMapValueRegex.ReplaceAllLiteralString(expr, value), nil
}
