// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

import (
	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/combat"
	"github.com/baldursgate-parity/ddrc/damage"
)

// Subject is the minimal view of a combatant the condition functions
// need. A combatant implementation satisfies this by delegating to its
// BoostContainer, StatusSet, and resource pool; condition never imports
// those packages directly so it can be built and tested independently.
type Subject interface {
	HasStatus(id string) bool
	HasTag(tag string) bool
	HasProficiency(category, name string) bool
	AbilityScore(ability string) int
	HasResource(name string, level int) bool
	Level(class string) int
	ResistanceLevel(damageType damage.Type) damage.Level
}

// Context is what a condition expression is evaluated against: the
// combatant invoking the check (Source) and, where applicable, the
// combatant being checked against (Target), plus whatever triggered the
// evaluation in the first place — an attack roll, a spell cast, damage
// or healing already resolved. Target is nil for conditions with no
// target in scope (e.g. evaluating a passive on its own owner);
// functions that require Target return false when it is nil rather
// than panicking. Every field beyond Source/Target is zero-valued
// unless the caller is routing a query result or functor trigger
// through it, so a boost gated on, say, Critical is simply never true
// outside of a damage-roll trigger.
type Context struct {
	Source Subject
	Target Subject

	// AttackType/Weapon/DamageType describe the action the context was
	// built for, when it was an attack or a damage-dealing effect.
	AttackType combat.AttackType
	Weapon     string
	DamageType damage.Type

	// Hit/Critical report an already-resolved attack roll's outcome.
	Hit      bool
	Critical bool

	// SpellLevel/SpellSchool/SpellFlags describe the spell being cast,
	// when the trigger is a spell.
	SpellLevel  int
	SpellSchool string
	SpellFlags  []string

	// DamageAmount/HealAmount carry an already-resolved effect's
	// magnitude, for conditions gated on "did this deal at least N".
	DamageAmount int
	HealAmount   int

	// Advantage is Source's net advantage state for the roll kind this
	// context was built for.
	Advantage boost.AdvantageState

	// Trigger names the functor/event that produced this context (e.g.
	// "OnHit", "OnCast"), for conditions that only make sense attached
	// to one specific trigger.
	Trigger string

	// AllCombatants lists every combatant in the encounter, for
	// conditions that need to reason about the whole battlefield (aura
	// ranges, ally counts) rather than just Source/Target.
	AllCombatants []Subject

	// SurfaceManager is an opaque handle to whatever tracks ground
	// surfaces (fire, water, difficult terrain). condition never reads
	// from it directly — it's threaded through so a Subject
	// implementation's own methods can consult it when answering a
	// condition function, without condition itself depending on a
	// surfaces package.
	SurfaceManager any
}

func (c Context) subjectFor(qualifier string) (Subject, bool) {
	switch qualifier {
	case "", "source", "self":
		return c.Source, c.Source != nil
	case "target":
		return c.Target, c.Target != nil
	default:
		return nil, false
	}
}
