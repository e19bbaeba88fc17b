// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/baldursgate-parity/ddrc/combat"
	"github.com/baldursgate-parity/ddrc/concentration"
	"github.com/baldursgate-parity/ddrc/condition"
	"github.com/baldursgate-parity/ddrc/damage"
	"github.com/baldursgate-parity/ddrc/definitions"
	"github.com/baldursgate-parity/ddrc/dice"
	"github.com/baldursgate-parity/ddrc/functor"
	"github.com/baldursgate-parity/ddrc/status"
)

// CombatantLookup resolves any combatant in the encounter by ID. The
// Dispatcher needs this for concentration tracking: the status a
// concentration slot holds may live on a combatant other than the
// caster or the current call's target (e.g. Hold Person cast on an
// enemy while concentrating on a buff already placed on an ally).
type CombatantLookup interface {
	Get(id string) (*Combatant, bool)
}

// ForcedMover performs the actual board-geometry side of a push or
// pull: finding the destination square, checking for blockers, and
// reporting how far the target actually moved. The core has no notion
// of a grid, so it only ever calls through this collaborator.
type ForcedMover interface {
	// Force moves target distance squares away from self (push) or
	// toward self (pull), returning the distance actually covered
	// (which may be less than requested if something blocked it).
	Force(self, target *Combatant, distance int, pull bool) (actual int, err error)
}

// Dispatcher implements functor.Dispatcher against live *Combatant
// values, consulting a definitions.Registries for status/resource/spell
// definitions it needs to build runtime instances on demand.
type Dispatcher struct {
	Roller dice.Roller
	Defs   *definitions.Registries

	// Mover carries out Force; nil means the catalog entry falls back
	// to the generic Unknown no-op, same as any other functor this
	// Dispatcher doesn't implement.
	Mover ForcedMover

	// Concentration enforces the single-concentration-slot invariant
	// across every status application this Dispatcher grants. Keyed by
	// the concentrating combatant's ID — self in ApplyStatus (the caster,
	// not necessarily the one the effect targets) and target in
	// BreakConcentration. Nil disables concentration tracking entirely:
	// RequiresConcentration statuses are then applied without breaking
	// any prior one, and BreakConcentration is a no-op.
	Concentration *concentration.Tracker

	// Combatants resolves the owner of a concentration-held status
	// instance when it isn't the caster or the current call's target.
	// Nil falls back to searching only the caster and target in scope
	// for the call, so a concentration-held status on any third
	// combatant is not found and is left in place.
	Combatants CombatantLookup

	// instanceOwners maps a concentration-tracked status handle to the
	// ID of the combatant it was installed on, so a later break can
	// resolve it through Combatants without having that combatant in
	// scope for the call doing the breaking.
	instanceOwners map[string]string
}

var _ functor.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher backed by roller for every dice
// roll a functor triggers, and defs for status/resource lookups.
func NewDispatcher(roller dice.Roller, defs *definitions.Registries) *Dispatcher {
	return &Dispatcher{
		Roller:         roller,
		Defs:           defs,
		Concentration:  concentration.NewTracker(),
		instanceOwners: make(map[string]string),
	}
}

func asCombatant(e functor.Entity) (*Combatant, bool) {
	c, ok := e.(*Combatant)
	return c, ok
}

func argOr(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}

// resolveConcentrationOwner locates the status instance identified by
// handle, preferring d.Combatants (if set) keyed by the owner ID
// recorded when the concentration slot was started, and falling back
// to a direct search of the candidates in scope for the call that
// needed the handle (which finds the instance only when it lives on
// one of those candidates).
func (d *Dispatcher) resolveConcentrationOwner(handle string, candidates ...*Combatant) (*Combatant, *status.Instance) {
	if d.Combatants != nil {
		if ownerID, ok := d.instanceOwners[handle]; ok {
			if owner, found := d.Combatants.Get(ownerID); found {
				if inst := owner.Statuses.FindByHandle(handle); inst != nil {
					return owner, inst
				}
			}
		}
	}
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if inst := c.Statuses.FindByHandle(handle); inst != nil {
			return c, inst
		}
	}
	return nil, nil
}

// DealDamage rolls Args[0] (a dice expression parsed by
// dice.ParseNotation, or a flat integer taken as it is) as
// Args[1]-typed damage against target, applying
// target's resistance before subtracting from CurrentHP.
func (d *Dispatcher) DealDamage(term *functor.Term, self, target functor.Entity) error {
	t, ok := asCombatant(target)
	if !ok {
		return nil
	}
	notation := argOr(term.Args, 0, "")
	dmgType := damage.Type(argOr(term.Args, 1, ""))
	if notation == "" {
		return fmt.Errorf("combatant: DealDamage: missing dice argument in %q", term.RawText)
	}

	var pool *dice.Pool
	if flat, convErr := strconv.Atoi(notation); convErr == nil {
		pool = dice.NewPool(nil, flat)
	} else {
		parsed, err := dice.ParseNotation(notation)
		if err != nil {
			return fmt.Errorf("combatant: DealDamage: %w", err)
		}
		pool = parsed
	}
	result := pool.Roll(d.Roller)
	if result.Error() != nil {
		return result.Error()
	}

	amount := result.Total()
	if dmgType != "" {
		amount = damage.Apply(t.Boosts.ResistanceLevel(dmgType, nil), amount)
	}
	t.CurrentHP -= amount
	if t.CurrentHP <= 0 {
		t.CurrentHP = 0
		t.Life = LifeDowned
	}
	return nil
}

// ApplyStatus installs Args[0] (a status ID known to d.Defs) onto
// target, attributed to self. If the definition requires concentration,
// starting it breaks whatever self was previously concentrating on
// (resolved through Combatants when set, otherwise searched among self
// and target).
func (d *Dispatcher) ApplyStatus(term *functor.Term, self, target functor.Entity) error {
	t, ok := asCombatant(target)
	s, sok := asCombatant(self)
	if !ok || !sok {
		return nil
	}
	statusID := argOr(term.Args, 0, "")
	rec, found := d.Defs.Statuses[statusID]
	if !found {
		return fmt.Errorf("combatant: ApplyStatus: unknown status %q", statusID)
	}
	t.StatusDefs[statusID] = rec.Definition
	for _, passiveID := range rec.Definition.Passives {
		if passiveRec, ok := d.Defs.Passives[passiveID]; ok {
			t.PassiveDefs[passiveID] = passiveRec.Definition
		}
	}

	condCtx := condition.Context{Source: s, Target: t}
	inst, applyErrs, err := t.Statuses.Apply(rec.Definition, t, s, t.Passives, t.PassiveDefs, d, condCtx)
	if err != nil {
		return err
	}

	if rec.Definition.RequiresConcentration && d.Concentration != nil {
		d.instanceOwners[inst.Handle] = t.ID
		if prevHandle := d.Concentration.Start(s.ID, inst.Handle); prevHandle != "" {
			if owner, prevInst := d.resolveConcentrationOwner(prevHandle, s, t); owner != nil {
				if prevDef, ok := owner.StatusDefs[prevInst.DefinitionID]; ok {
					_, _ = owner.Statuses.Remove(prevInst, prevDef, owner.Passives, d, condCtx, status.Removed)
				}
			}
			delete(d.instanceOwners, prevHandle)
		}
	}

	if len(applyErrs) > 0 {
		return applyErrs[0].Err
	}
	return nil
}

// RemoveStatus removes every active instance of Args[0] from target.
func (d *Dispatcher) RemoveStatus(term *functor.Term, self, target functor.Entity) error {
	t, ok := asCombatant(target)
	s, sok := asCombatant(self)
	if !ok || !sok {
		return nil
	}
	statusID := argOr(term.Args, 0, "")
	def, found := t.StatusDefs[statusID]
	if !found {
		if rec, ok := d.Defs.Statuses[statusID]; ok {
			def, found = rec.Definition, true
		}
	}
	if !found {
		return nil
	}
	for _, inst := range t.Statuses.Active() {
		if inst.DefinitionID != statusID {
			continue
		}
		if _, err := t.Statuses.Remove(inst, def, t.Passives, d, condition.Context{Source: s, Target: t}, status.Removed); err != nil {
			return err
		}
	}
	return nil
}

// RegainHitPoints rolls Args[0] and restores that much HP to target,
// capped at MaxHP.
func (d *Dispatcher) RegainHitPoints(term *functor.Term, self, target functor.Entity) error {
	t, ok := asCombatant(target)
	if !ok {
		return nil
	}
	notation := argOr(term.Args, 0, "")
	if notation == "" {
		return fmt.Errorf("combatant: RegainHitPoints: missing dice argument in %q", term.RawText)
	}
	pool, err := dice.ParseNotation(notation)
	if err != nil {
		return fmt.Errorf("combatant: RegainHitPoints: %w", err)
	}
	result := pool.Roll(d.Roller)
	if result.Error() != nil {
		return result.Error()
	}
	t.CurrentHP += result.Total()
	if t.CurrentHP > t.MaxHP {
		t.CurrentHP = t.MaxHP
	}
	if t.CurrentHP > 0 && t.Life == LifeDowned {
		t.Life = LifeAlive
	}
	return nil
}

// RestoreResource restores Args[1] units (default 1) of the named
// resource Args[0] at level Args[2] (default 0) on target.
func (d *Dispatcher) RestoreResource(term *functor.Term, self, target functor.Entity) error {
	t, ok := asCombatant(target)
	if !ok {
		return nil
	}
	name := argOr(term.Args, 0, "")
	amount := 1
	if len(term.Args) > 1 {
		fmt.Sscanf(term.Args[1], "%d", &amount)
	}
	level := 0
	if len(term.Args) > 2 {
		fmt.Sscanf(term.Args[2], "%d", &level)
	}
	return t.Resources.Restore(name, amount, level)
}

// BreakConcentration clears target's concentration slot and removes
// the status instance it was holding, wherever that instance's
// StatusSet lives (target itself, or self if target was concentrating
// on an effect it placed on self). A target that isn't concentrating,
// or a Dispatcher with no Tracker, makes this a no-op.
func (d *Dispatcher) BreakConcentration(term *functor.Term, self, target functor.Entity) error {
	t, ok := asCombatant(target)
	if !ok || d.Concentration == nil {
		return nil
	}
	handle := d.Concentration.Break(t.ID)
	if handle == "" {
		return nil
	}
	s, _ := asCombatant(self)
	owner, inst := d.resolveConcentrationOwner(handle, t, s)
	delete(d.instanceOwners, handle)
	if owner == nil {
		return nil
	}
	def, ok := owner.StatusDefs[inst.DefinitionID]
	if !ok {
		return nil
	}
	_, err := owner.Statuses.Remove(inst, def, owner.Passives, d, condition.Context{Source: t, Target: owner}, status.Removed)
	return err
}

// Stabilize sets target's life state to Unconscious if it was Downed.
// It changes nothing else: HP and statuses are left as they are, and no
// death-save state is tracked or cleared.
func (d *Dispatcher) Stabilize(term *functor.Term, self, target functor.Entity) error {
	t, ok := asCombatant(target)
	if !ok {
		return nil
	}
	if t.Life == LifeDowned {
		t.Life = LifeUnconscious
	}
	return nil
}

// Force pushes or pulls target relative to self by Args[0] squares,
// routed through Mover for the actual geometry. A negative Args[0], or
// an Args[1] of "TargetToEntity", means pull instead of push. A
// Dispatcher with no Mover falls back to the generic Unknown contract,
// same as any unimplemented catalog entry.
func (d *Dispatcher) Force(term *functor.Term, self, target functor.Entity) error {
	if d.Mover == nil {
		return d.Unknown(term, self, target)
	}
	s, ok := asCombatant(self)
	t, tok := asCombatant(target)
	if !ok || !tok {
		return nil
	}
	distance := 0
	if len(term.Args) > 0 {
		fmt.Sscanf(term.Args[0], "%d", &distance)
	}
	pull := distance < 0
	if len(term.Args) > 1 && strings.EqualFold(term.Args[1], "TargetToEntity") {
		pull = true
	}
	if distance < 0 {
		distance = -distance
	}
	_, err := d.Mover.Force(s, t, distance, pull)
	return err
}

// SetStatusDuration sets RemainingRounds to Args[1] on every active
// instance of status Args[0] on target.
func (d *Dispatcher) SetStatusDuration(term *functor.Term, self, target functor.Entity) error {
	t, ok := asCombatant(target)
	if !ok {
		return nil
	}
	statusID := argOr(term.Args, 0, "")
	var rounds int
	if len(term.Args) > 1 {
		fmt.Sscanf(term.Args[1], "%d", &rounds)
	}
	for _, inst := range t.Statuses.Active() {
		if inst.DefinitionID == statusID {
			inst.RemainingRounds = rounds
		}
	}
	return nil
}

// UseAttack executes an attack roll (Args[0] base value, Args[1] target
// AC) using combat.AttackRoll with the acting combatant's boosts.
func (d *Dispatcher) UseAttack(term *functor.Term, self, target functor.Entity) error {
	s, ok := asCombatant(self)
	t, tok := asCombatant(target)
	if !ok || !tok {
		return nil
	}
	base := 0
	if len(term.Args) > 0 {
		fmt.Sscanf(term.Args[0], "%d", &base)
	}
	targetAC := 0
	if len(term.Args) > 1 {
		fmt.Sscanf(term.Args[1], "%d", &targetAC)
	}
	_, err := combat.AttackRoll(context.Background(), d.Roller, combat.QueryInput{
		Source:    s,
		Target:    t,
		BaseValue: base,
		TargetAC:  targetAC,
	}, s.Boosts, nil)
	return err
}

// Unknown is the no-op fallback for a term whose name the catalog
// doesn't recognize, or a catalog entry this Dispatcher chooses not to
// implement beyond acknowledging the call.
func (d *Dispatcher) Unknown(term *functor.Term, self, target functor.Entity) error {
	return nil
}
