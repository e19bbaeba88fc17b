// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package status

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/condition"
	"github.com/baldursgate-parity/ddrc/functor"
	"github.com/baldursgate-parity/ddrc/passive"
)

// StatusSet tracks every status instance currently attached to one
// combatant, installing and removing boosts on that combatant's
// BoostContainer as instances move through their lifecycle.
type StatusSet struct {
	boosts    *boost.BoostContainer
	instances []*Instance
	nextID    int
}

// NewStatusSet creates a StatusSet backed by the given boost container,
// normally the same one the owning combatant uses for everything else.
func NewStatusSet(boosts *boost.BoostContainer) *StatusSet {
	return &StatusSet{boosts: boosts}
}

// Instances returns every tracked instance, including ones that have
// already transitioned to Removed or SaveCleared.
func (s *StatusSet) Instances() []*Instance {
	out := make([]*Instance, len(s.instances))
	copy(out, s.instances)
	return out
}

// Active returns only the instances currently in the Active state.
func (s *StatusSet) Active() []*Instance {
	var out []*Instance
	for _, inst := range s.instances {
		if inst.State.IsActive() {
			out = append(out, inst)
		}
	}
	return out
}

func (s *StatusSet) findActiveByStackID(stackID string) *Instance {
	if stackID == "" {
		return nil
	}
	for _, inst := range s.instances {
		if inst.StackID == stackID && inst.State.IsActive() {
			return inst
		}
	}
	return nil
}

// FindByHandle returns the instance with the given handle, or nil if
// none is tracked. Used by concentration tracking to locate the
// instance a Tracker's slot refers to.
func (s *StatusSet) FindByHandle(handle string) *Instance {
	for _, inst := range s.instances {
		if inst.Handle == handle {
			return inst
		}
	}
	return nil
}

func (s *StatusSet) nextHandle() string {
	s.nextID++
	return fmt.Sprintf("status-%d-%s", s.nextID, uuid.New().String())
}

// Apply installs def on owner, attributing it to source (may equal
// owner). If an active instance with the same non-empty StackID
// already exists, no new instance is created: the existing one's
// remaining duration is refreshed per def.Refresh and it is returned
// unchanged otherwise.
//
// Boost installation is atomic: if any boost from the definition fails
// to install (e.g. a duplicate the container rejects), every boost
// already installed for this application is rolled back and err is
// non-nil. OnApply functor failures are not rolled back — they are
// returned in applyErrs for the caller to log, per the functor
// execution contract of continuing past individual term failures.
//
// If def.Passives is non-empty, each named passive is installed on
// owner through passives (looked up in passiveDefs), attributed to
// this instance so Remove can uninstall them symmetrically. Either
// passives or passiveDefs may be nil, in which case def.Passives is
// silently skipped — callers that never grant passive-bearing statuses
// are not required to wire a Manager through.
func (s *StatusSet) Apply(def *Definition, owner, source Entity, passives *passive.Manager, passiveDefs map[string]*passive.Definition, dispatcher functor.Dispatcher, condCtx condition.Context) (inst *Instance, applyErrs []*functor.ExecutionError, err error) {
	if existing := s.findActiveByStackID(def.StackID); existing != nil {
		refreshDuration(existing, def.DurationRounds, def.Refresh)
		return existing, nil, nil
	}

	inst = &Instance{
		Handle:          s.nextHandle(),
		DefinitionID:    def.ID,
		StackID:         def.StackID,
		Groups:          def.Groups,
		Owner:           owner,
		Source:          source,
		State:           Pending,
		RemainingRounds: durationOf(def.DurationRounds),
	}

	var installed []string
	for _, b := range def.boosts {
		cb := *b
		handle, addErr := s.boosts.Add(&cb, boost.SourceStatus, inst.Handle)
		if addErr != nil {
			for _, h := range installed {
				s.boosts.RemoveByHandle(h)
			}
			return nil, nil, fmt.Errorf("status: applying %s: %w", def.ID, addErr)
		}
		installed = append(installed, handle)
	}
	inst.boostHandles = installed

	if passives != nil && passiveDefs != nil {
		for _, passiveID := range def.Passives {
			passiveDef, ok := passiveDefs[passiveID]
			if !ok {
				continue
			}
			if _, _, grantErr := passives.Install(passiveDef, owner, source, dispatcher, condCtx); grantErr != nil {
				for _, h := range installed {
					s.boosts.RemoveByHandle(h)
				}
				return nil, nil, fmt.Errorf("status: applying %s: granting passive %s: %w", def.ID, passiveID, grantErr)
			}
			inst.grantedPassives = append(inst.grantedPassives, passiveID)
		}
	}

	inst.State = Active
	s.instances = append(s.instances, inst)

	if dispatcher != nil && len(def.onApply) > 0 {
		applyErrs = functor.Execute(def.onApply, dispatcher, source, owner, condCtx)
	}

	return inst, applyErrs, nil
}

func durationOf(rounds int) int {
	if rounds <= 0 {
		return Infinite
	}
	return rounds
}

func refreshDuration(inst *Instance, incomingRounds int, rule RefreshRule) {
	incoming := durationOf(incomingRounds)
	switch rule {
	case RefreshAlways:
		inst.RemainingRounds = incoming
	default: // RefreshIfLonger
		if incoming == Infinite {
			inst.RemainingRounds = Infinite
			return
		}
		if inst.RemainingRounds != Infinite && incoming > inst.RemainingRounds {
			inst.RemainingRounds = incoming
		}
	}
}

// Tick advances inst by one tick: runs its OnTick functors, then
// decrements RemainingRounds and removes the instance (running
// OnRemove) if it has just expired. A no-op on an instance that is not
// Active.
func (s *StatusSet) Tick(inst *Instance, def *Definition, passives *passive.Manager, dispatcher functor.Dispatcher, condCtx condition.Context) []*functor.ExecutionError {
	if !inst.State.IsActive() {
		return nil
	}

	var errs []*functor.ExecutionError
	if dispatcher != nil && len(def.onTick) > 0 {
		errs = functor.Execute(def.onTick, dispatcher, inst.Source, inst.Owner, condCtx)
	}

	if inst.RemainingRounds == Infinite {
		return errs
	}

	inst.RemainingRounds--
	if inst.RemainingRounds <= 0 {
		removeErrs, _ := s.Remove(inst, def, passives, dispatcher, condCtx, Removed)
		errs = append(errs, removeErrs...)
	}
	return errs
}

// Remove transitions inst to the given terminal state (Removed or
// SaveCleared), running its OnRemove functors and uninstalling every
// boost it installed, plus every passive it granted via passives (nil
// is safe when the instance granted none). Calling Remove on an
// instance that has already reached a terminal state is a no-op that
// returns ErrAlreadyRemoved.
func (s *StatusSet) Remove(inst *Instance, def *Definition, passives *passive.Manager, dispatcher functor.Dispatcher, condCtx condition.Context, terminal State) ([]*functor.ExecutionError, error) {
	if !inst.State.IsActive() && inst.State != Pending {
		return nil, ErrAlreadyRemoved
	}

	var errs []*functor.ExecutionError
	if dispatcher != nil && len(def.onRemove) > 0 {
		errs = functor.Execute(def.onRemove, dispatcher, inst.Source, inst.Owner, condCtx)
	}

	for _, h := range inst.boostHandles {
		s.boosts.RemoveByHandle(h)
	}
	inst.boostHandles = nil

	if passives != nil {
		for _, passiveID := range inst.grantedPassives {
			_ = passives.UninstallByID(passiveID)
		}
	}
	inst.grantedPassives = nil

	if terminal != Removed && terminal != SaveCleared {
		terminal = Removed
	}
	inst.State = terminal

	return errs, nil
}

// RemoveByGroup removes every active instance sharing the named group.
func (s *StatusSet) RemoveByGroup(group string, defs map[string]*Definition, passives *passive.Manager, dispatcher functor.Dispatcher, condCtx condition.Context) []*functor.ExecutionError {
	var errs []*functor.ExecutionError
	for _, inst := range s.Active() {
		def, ok := defs[inst.DefinitionID]
		if !ok || !def.InGroup(group) {
			continue
		}
		removeErrs, _ := s.Remove(inst, def, passives, dispatcher, condCtx, Removed)
		errs = append(errs, removeErrs...)
	}
	return errs
}

// CheckSave resolves a status's RemoveEvent: if def names a RemoveEvent
// for the given ability at matching DC and success is true, inst
// transitions to SaveCleared. A definition with no RemoveEvent, or a
// mismatched ability/DC, leaves inst untouched.
func (s *StatusSet) CheckSave(inst *Instance, def *Definition, ability string, dc int, success bool, passives *passive.Manager, dispatcher functor.Dispatcher, condCtx condition.Context) ([]*functor.ExecutionError, bool) {
	if def.RemoveEvent == nil || !inst.State.IsActive() {
		return nil, false
	}
	if def.RemoveEvent.Ability != ability || def.RemoveEvent.DC != dc || !success {
		return nil, false
	}
	errs, _ := s.Remove(inst, def, passives, dispatcher, condCtx, SaveCleared)
	return errs, true
}
