// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

import (
	"strings"

	"github.com/baldursgate-parity/ddrc/combat"
	"github.com/baldursgate-parity/ddrc/damage"
)

// fn is one entry in the closed function registry: it receives the
// already-evaluated argument list and the subject the call was routed
// to (Source by default, or Target/Source when qualified), and returns
// a typed Value.
type fn func(args []Value, subject Subject) Value

func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return Value{}
}

// registry is the closed set of condition functions. Names are matched
// case-insensitively; an unknown name is never added here at runtime,
// it is handled by the caller as a registry miss.
var registry = map[string]fn{
	"hasstatus": func(args []Value, s Subject) Value {
		if s == nil {
			return boolValue(false)
		}
		return boolValue(s.HasStatus(arg(args, 0).ToString()))
	},
	"hastag": func(args []Value, s Subject) Value {
		if s == nil {
			return boolValue(false)
		}
		return boolValue(s.HasTag(arg(args, 0).ToString()))
	},
	"hasproficiency": func(args []Value, s Subject) Value {
		if s == nil {
			return boolValue(false)
		}
		return boolValue(s.HasProficiency(arg(args, 0).ToString(), arg(args, 1).ToString()))
	},
	"abilityscore": func(args []Value, s Subject) Value {
		if s == nil {
			return numberValue(0)
		}
		return numberValue(float64(s.AbilityScore(arg(args, 0).ToString())))
	},
	"hasresource": func(args []Value, s Subject) Value {
		if s == nil {
			return boolValue(false)
		}
		level := 0
		if len(args) > 1 {
			level = int(args[1].ToNumber())
		}
		return boolValue(s.HasResource(arg(args, 0).ToString(), level))
	},
	"getlevel": func(args []Value, s Subject) Value {
		if s == nil {
			return numberValue(0)
		}
		return numberValue(float64(s.Level(arg(args, 0).ToString())))
	},
	"isresistant": func(args []Value, s Subject) Value {
		if s == nil {
			return boolValue(false)
		}
		return boolValue(s.ResistanceLevel(damage.Type(arg(args, 0).ToString())) == damage.LevelResistant)
	},
	"isimmune": func(args []Value, s Subject) Value {
		if s == nil {
			return boolValue(false)
		}
		return boolValue(s.ResistanceLevel(damage.Type(arg(args, 0).ToString())) == damage.LevelImmune)
	},
	"isvulnerable": func(args []Value, s Subject) Value {
		if s == nil {
			return boolValue(false)
		}
		return boolValue(s.ResistanceLevel(damage.Type(arg(args, 0).ToString())) == damage.LevelVulnerable)
	},
}

// lookup resolves a function name case-insensitively.
func lookup(name string) (fn, bool) {
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// ctxFn is a condition function that reads the whole evaluation
// Context rather than a single routed Subject: attack flavor, damage
// already resolved, advantage state, and so on. These are always
// called unqualified (no "source."/"target." prefix) since they don't
// belong to either combatant specifically.
type ctxFn func(args []Value, ctx Context) Value

// contextRegistry is the closed set of context-level condition
// functions, checked before the subject-routed registry for an
// unqualified call.
var contextRegistry = map[string]ctxFn{
	"ismeleeattack": func(args []Value, ctx Context) Value {
		return boolValue(ctx.AttackType == combat.AttackMeleeWeapon || ctx.AttackType == combat.AttackMeleeSpell)
	},
	"israngedattack": func(args []Value, ctx Context) Value {
		return boolValue(ctx.AttackType == combat.AttackRangedWeapon || ctx.AttackType == combat.AttackRangedSpell)
	},
	"isspellattack": func(args []Value, ctx Context) Value {
		return boolValue(ctx.AttackType == combat.AttackMeleeSpell || ctx.AttackType == combat.AttackRangedSpell)
	},
	"iscriticalhit": func(args []Value, ctx Context) Value {
		return boolValue(ctx.Critical)
	},
	"ishit": func(args []Value, ctx Context) Value {
		return boolValue(ctx.Hit)
	},
	"isspellschool": func(args []Value, ctx Context) Value {
		return boolValue(strings.EqualFold(ctx.SpellSchool, arg(args, 0).ToString()))
	},
	"damagedealt": func(args []Value, ctx Context) Value {
		return numberValue(float64(ctx.DamageAmount))
	},
	"healingdone": func(args []Value, ctx Context) Value {
		return numberValue(float64(ctx.HealAmount))
	},
	"istrigger": func(args []Value, ctx Context) Value {
		return boolValue(strings.EqualFold(ctx.Trigger, arg(args, 0).ToString()))
	},
}

// lookupCtx resolves a context-level function name case-insensitively.
func lookupCtx(name string) (ctxFn, bool) {
	f, ok := contextRegistry[strings.ToLower(name)]
	return f, ok
}
