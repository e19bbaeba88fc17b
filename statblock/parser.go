// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package statblock

import (
	"fmt"
	"strings"
)

// Parse lexes text into an ordered list of records plus a list of
// human-readable parse warnings. It never fails the whole file: bad
// lines are warned about and skipped, and a record-in-progress that
// turns out to be malformed (unterminated quote, missing name) is
// dropped, with parsing resuming cleanly at the next "new entry" line.
func Parse(text string) ([]*Record, []string) {
	var records []*Record
	var warnings []string
	var cur *Record

	warn := func(lineNo int, format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf("line %d: %s", lineNo, fmt.Sprintf(format, args...)))
	}

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "--") || strings.HasPrefix(line, "#") {
			continue
		}

		keyword, rest, ok := splitKeyword(line)
		if !ok {
			warn(lineNo, "unrecognized line %q", line)
			continue
		}

		args, err := extractQuoted(rest)
		if err != nil {
			warn(lineNo, "%v, skipping to next entry", err)
			cur = nil
			continue
		}

		switch keyword {
		case "new entry":
			if cur != nil {
				records = append(records, cur)
			}
			if len(args) < 1 || args[0] == "" {
				warn(lineNo, "new entry without a name")
				cur = nil
				continue
			}
			cur = newRecord(args[0])

		case "type":
			if cur == nil {
				warn(lineNo, "type line outside any entry")
				continue
			}
			if len(args) >= 1 {
				cur.Kind = args[0]
			}

		case "using":
			if cur == nil {
				warn(lineNo, "using line outside any entry")
				continue
			}
			if len(args) >= 1 {
				cur.Parent = args[0]
			}

		case "data":
			if cur == nil {
				warn(lineNo, "data line outside any entry")
				continue
			}
			if len(args) < 2 {
				warn(lineNo, "data line missing key or value")
				continue
			}
			if cur.set(args[0], args[1]) {
				warn(lineNo, "duplicate key %q, keeping last value", args[0])
			}
		}
	}

	if cur != nil {
		records = append(records, cur)
	}

	return records, warnings
}

// splitKeyword recognizes the four leading keywords of the format and
// returns the keyword and the remainder of the line.
func splitKeyword(line string) (keyword, rest string, ok bool) {
	for _, kw := range []string{"new entry", "type", "using", "data"} {
		if line == kw || strings.HasPrefix(line, kw+" ") || strings.HasPrefix(line, kw+"\t") {
			return kw, strings.TrimSpace(line[len(kw):]), true
		}
	}
	return "", "", false
}

// extractQuoted returns every double-quoted, backslash-escape-aware
// string literal found in s, in order, with `\"` unescaped to a literal
// `"` in the returned content. An unterminated quote is an error.
func extractQuoted(s string) ([]string, error) {
	var out []string
	var b strings.Builder
	inQuote := false
	found := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !inQuote {
			if c == '"' {
				inQuote = true
			}
			continue
		}
		if c == '\\' && i+1 < len(s) && s[i+1] == '"' {
			b.WriteByte('"')
			i++
			continue
		}
		if c == '"' {
			out = append(out, b.String())
			b.Reset()
			found = true
			inQuote = false
			continue
		}
		b.WriteByte(c)
	}

	if inQuote {
		return nil, fmt.Errorf("unterminated quoted string in %q", s)
	}
	if !found {
		return nil, nil
	}
	return out, nil
}
