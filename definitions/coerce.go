// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package definitions

import (
	"strconv"
	"strings"
)

// fieldInt coerces the named field to an int, returning def if the
// field is absent or unparseable.
func fieldInt(fields map[string]string, key string, def int) int {
	v, ok := fields[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// fieldBool coerces the named field to a bool ("true"/"1"/"yes" are
// true, case-insensitively; anything else, or an absent field, is def).
func fieldBool(fields map[string]string, key string, def bool) bool {
	v, ok := fields[key]
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return def
	}
}

// fieldString returns the named field verbatim, or def if absent.
func fieldString(fields map[string]string, key, def string) string {
	v, ok := fields[key]
	if !ok {
		return def
	}
	return v
}

// fieldList splits the named field on ';', trimming whitespace around
// each element and dropping empty ones, preserving order.
func fieldList(fields map[string]string, key string) []string {
	v, ok := fields[key]
	if !ok || v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitPair splits an entry of the form "Key:Value" into its trimmed
// parts, returning nil if it isn't exactly that shape.
func splitPair(entry string) []string {
	parts := strings.SplitN(entry, ":", 2)
	if len(parts) != 2 {
		return nil
	}
	return []string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}
}
