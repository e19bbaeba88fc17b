// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package boost

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/baldursgate-parity/ddrc/damage"
)

var (
	termRegex   = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\((.*)\)$`)
	diceRegex   = regexp.MustCompile(`(?i)^(\d*)d(\d+)([+-]\d+)?$`)
	numberRegex = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
)

// argKind classifies one parsed argument token.
type argKind int

const (
	argIdent argKind = iota
	argNumber
	argString
	argDice
)

type arg struct {
	kind argKind
	text string // raw text for ident/dice, unescaped content for string
	num  float64
}

// ParseBoosts parses a semicolon-separated boost string into its typed
// terms. Unknown term names are kept as KindUnrecognized boosts rather
// than rejected, each producing a warning string describing the name.
// A malformed term (unbalanced parens, an argument list for a known kind
// that doesn't match its expected shape) is a hard error: only the kind
// name itself is tolerated as unknown, not broken syntax.
func ParseBoosts(s string) ([]*Boost, []string, error) {
	var boosts []*Boost
	var warnings []string

	for _, termText := range splitTopLevel(s, ';') {
		termText = strings.TrimSpace(termText)
		if termText == "" {
			continue
		}

		m := termRegex.FindStringSubmatch(termText)
		if m == nil {
			return nil, nil, fmt.Errorf("boost: malformed term %q", termText)
		}
		name := m[1]
		argsText := m[2]

		var args []arg
		for _, raw := range splitTopLevel(argsText, ',') {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			a, err := parseArg(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("boost: term %q: %w", termText, err)
			}
			args = append(args, a)
		}

		b, warn, err := buildBoost(name, args, termText)
		if err != nil {
			return nil, nil, err
		}
		if warn != "" {
			warnings = append(warnings, warn)
		}
		boosts = append(boosts, b)
	}

	return boosts, warnings, nil
}

// splitTopLevel splits s on sep, ignoring separators nested inside parens
// or double-quoted strings.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	inQuote := false
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && (i == 0 || s[i-1] != '\\'):
			inQuote = !inQuote
		case inQuote:
			// inside a quoted string, ignore structural characters
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func parseArg(raw string) (arg, error) {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return arg{kind: argString, text: raw[1 : len(raw)-1]}, nil
	}
	if diceRegex.MatchString(raw) {
		return arg{kind: argDice, text: raw}, nil
	}
	if numberRegex.MatchString(raw) {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return arg{}, fmt.Errorf("invalid number %q", raw)
		}
		return arg{kind: argNumber, text: raw, num: n}, nil
	}
	return arg{kind: argIdent, text: raw}, nil
}

// identValue strips a common "Enum.Value" prefix down to the bare value,
// e.g. "DamageType.Fire" -> "Fire". Bare identifiers pass through unchanged.
func identValue(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func buildBoost(name string, args []arg, rawText string) (*Boost, string, error) {
	b := &Boost{Name: name, RawText: rawText}

	switch name {
	case "AC", "InitiativeBonus", "MaxHPBonus", "MovementSpeed", "ExtraAttacks", "WeaponEnchantment":
		n, err := requireNumber(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		b.Kind = kindForSimpleNumeric(name)
		b.Numeric = n
		return b, "", nil

	case "DamageBonus":
		n, err := requireNumber(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		dt, err := requireIdent(args, 1, name)
		if err != nil {
			return nil, "", err
		}
		b.Kind = KindNumeric
		b.Numeric = n
		b.DamageType = damage.Type(identValue(dt))
		return b, "", nil

	case "RollBonus":
		rk, err := requireIdent(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		if len(args) < 2 {
			return nil, "", fmt.Errorf("boost: %s requires a dice-or-int second argument", name)
		}
		b.Kind = KindNumeric
		b.RollKind = RollKind(identValue(rk))
		switch args[1].kind {
		case argDice:
			b.Dice = args[1].text
		case argNumber:
			b.Numeric = args[1].num
		default:
			return nil, "", fmt.Errorf("boost: %s second argument must be a number or dice expression", name)
		}
		return b, "", nil

	case "Advantage", "Disadvantage":
		rk, err := requireIdent(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		b.Kind = KindAdvantage
		b.RollKind = RollKind(identValue(rk))
		if name == "Disadvantage" {
			b.AdvState = Disadvantage
		} else {
			b.AdvState = Advantage
		}
		return b, "", nil

	case "Resistance":
		dt, err := requireIdent(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		level, err := requireIdent(args, 1, name)
		if err != nil {
			return nil, "", err
		}
		b.Kind = KindResistance
		b.DamageType = damage.Type(identValue(dt))
		switch identValue(level) {
		case "Resistant":
			b.ResistanceLevel = damage.LevelResistant
		case "Immune":
			b.ResistanceLevel = damage.LevelImmune
		case "Vulnerable":
			b.ResistanceLevel = damage.LevelVulnerable
		default:
			return nil, "", fmt.Errorf("boost: %s unknown level %q", name, level)
		}
		return b, "", nil

	case "Proficiency":
		cat, err := requireIdent(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		pname, err := requireArgText(args, 1, name)
		if err != nil {
			return nil, "", err
		}
		b.Kind = KindProficiency
		b.ProficiencyCategory = ProficiencyCategory(identValue(cat))
		b.ProficiencyName = pname
		return b, "", nil

	case "StatusImmunity":
		sid, err := requireArgText(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		b.Kind = KindStatusImmunity
		b.StatusID = sid
		return b, "", nil

	case "AbilityOverride", "AbilityScore":
		ability, err := requireIdent(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		n, err := requireNumber(args, 1, name)
		if err != nil {
			return nil, "", err
		}
		if name == "AbilityOverride" {
			b.Kind = KindAbilityOverride
		} else {
			b.Kind = KindAbilityScore
		}
		b.Ability = identValue(ability)
		b.Numeric = n
		return b, "", nil

	case "UnlockSpell":
		sid, err := requireArgText(args, 0, name)
		if err != nil {
			return nil, "", err
		}
		b.Kind = KindUnlockSpell
		b.StatusID = sid
		return b, "", nil

	default:
		b.Kind = KindUnrecognized
		return b, fmt.Sprintf("boost: unrecognized kind %q in %q", name, rawText), nil
	}
}

func kindForSimpleNumeric(name string) Kind {
	switch name {
	case "MaxHPBonus":
		return KindMaxHPBonus
	case "MovementSpeed":
		return KindMovementSpeed
	case "ExtraAttacks":
		return KindExtraAttacks
	case "WeaponEnchantment":
		return KindWeaponEnchantment
	default:
		return KindNumeric
	}
}

func requireNumber(args []arg, idx int, name string) (float64, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("boost: %s requires a numeric argument at position %d", name, idx)
	}
	if args[idx].kind != argNumber {
		return 0, fmt.Errorf("boost: %s argument %d must be a number", name, idx)
	}
	return args[idx].num, nil
}

func requireIdent(args []arg, idx int, name string) (string, error) {
	if idx >= len(args) {
		return "", fmt.Errorf("boost: %s requires an identifier argument at position %d", name, idx)
	}
	if args[idx].kind != argIdent {
		return "", fmt.Errorf("boost: %s argument %d must be an identifier", name, idx)
	}
	return args[idx].text, nil
}

// requireArgText accepts either an identifier or a quoted string, returning
// its literal text either way; useful for free-form names like proficiency
// or status IDs that may or may not be quoted in source data.
func requireArgText(args []arg, idx int, name string) (string, error) {
	if idx >= len(args) {
		return "", fmt.Errorf("boost: %s requires an argument at position %d", name, idx)
	}
	switch args[idx].kind {
	case argIdent, argString:
		return args[idx].text, nil
	default:
		return "", fmt.Errorf("boost: %s argument %d must be a name or string", name, idx)
	}
}
