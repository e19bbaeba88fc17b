// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import (
	"fmt"
	"sort"

	"github.com/baldursgate-parity/ddrc/statblock"
)

// resolvedFields is the flattened, inheritance-merged key/value map for
// one record: the parent's fields with the child's own keys overlaid.
type resolvedFields struct {
	name   string
	kind   string
	fields map[string]string
}

// groupByKind buckets records by their Kind field, preserving source
// order within each bucket.
func groupByKind(records []*statblock.Record) map[string][]*statblock.Record {
	groups := make(map[string][]*statblock.Record)
	for _, r := range records {
		groups[r.Kind] = append(groups[r.Kind], r)
	}
	return groups
}

// resolveGroup topologically sorts records within one kind on their
// "using" edges and merges each one's fields with its already-resolved
// parent. A cycle is a hard error naming every node on it. A record
// whose parent is absent from this group (not merely unresolved) is not
// fatal: it is registered with only its own fields, plus a warning.
func resolveGroup(records []*statblock.Record) (map[string]*resolvedFields, []string, error) {
	byName := make(map[string]*statblock.Record, len(records))
	for _, r := range records {
		byName[r.Name] = r
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(records))
	order := make([]string, 0, len(records))
	var warnings []string

	var path []string
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			cycle := append(append([]string{}, path...), name)
			return fmt.Errorf("definitions: inheritance cycle: %v", cycle)
		}
		r, ok := byName[name]
		if !ok {
			return nil // parent outside this kind group; handled by caller as a warning
		}
		state[name] = visiting
		path = append(path, name)
		if r.Parent != "" {
			if err := visit(r.Parent); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		order = append(order, name)
		return nil
	}

	// Visit deterministically so error messages are stable across runs.
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := visit(n); err != nil {
			return nil, nil, err
		}
	}

	resolved := make(map[string]*resolvedFields, len(records))
	for _, name := range order {
		r := byName[name]
		fields := make(map[string]string)
		if r.Parent != "" {
			if parent, ok := resolved[r.Parent]; ok {
				for k, v := range parent.fields {
					fields[k] = v
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("definitions: %s: parent %q not found, registering with partial fields", name, r.Parent))
			}
		}
		for k, v := range r.Fields() {
			fields[k] = v
		}
		resolved[name] = &resolvedFields{name: name, kind: r.Kind, fields: fields}
	}

	return resolved, warnings, nil
}
