// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package passive

import (
	"fmt"

	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/condition"
	"github.com/baldursgate-parity/ddrc/functor"
)

// Manager tracks every passive instance installed on one combatant,
// installing and uninstalling boosts on that combatant's
// BoostContainer. Installing a passive whose ToggleGroup is already
// occupied evicts the current occupant first, rather than stacking
// alongside it: only one passive per ToggleGroup may be active on a
// combatant at a time.
type Manager struct {
	boosts    *boost.BoostContainer
	instances []*Instance
	nextID    int
}

// NewManager creates a Manager backed by the given boost container,
// normally the same one the owning combatant's statuses and equipment
// use.
func NewManager(boosts *boost.BoostContainer) *Manager {
	return &Manager{boosts: boosts}
}

// Instances returns every currently installed instance.
func (m *Manager) Instances() []*Instance {
	out := make([]*Instance, len(m.instances))
	copy(out, m.instances)
	return out
}

// Has reports whether a passive with the given definition ID is
// currently installed.
func (m *Manager) Has(definitionID string) bool {
	return m.byDefinitionID(definitionID) != nil
}

func (m *Manager) byDefinitionID(id string) *Instance {
	for _, inst := range m.instances {
		if inst.DefinitionID == id {
			return inst
		}
	}
	return nil
}

func (m *Manager) byGroup(group string) *Instance {
	if group == "" {
		return nil
	}
	for _, inst := range m.instances {
		if inst.ToggleGroup == group {
			return inst
		}
	}
	return nil
}

func (m *Manager) nextHandle() string {
	m.nextID++
	return fmt.Sprintf("passive-%d", m.nextID)
}

// Install installs def's boosts on owner, attributing them to source,
// and runs def's OnApply functor chain. If def is already installed
// (same definition ID), the existing instance is returned unchanged.
// If def.ToggleGroup is non-empty and a different passive already
// occupies that group, the occupant is uninstalled first so the two
// never coexist.
//
// Boost installation is atomic: if any boost fails to install, every
// boost already installed for this call is rolled back and err is
// non-nil. OnApply functor failures are not rolled back, matching
// status.StatusSet.Apply's contract of surfacing them to the caller
// instead.
func (m *Manager) Install(def *Definition, owner, source Entity, dispatcher functor.Dispatcher, condCtx condition.Context) (inst *Instance, applyErrs []*functor.ExecutionError, err error) {
	if existing := m.byDefinitionID(def.ID); existing != nil {
		return existing, nil, nil
	}

	if def.ToggleGroup != "" {
		if occupant := m.byGroup(def.ToggleGroup); occupant != nil {
			if uninstallErr := m.Uninstall(occupant); uninstallErr != nil {
				return nil, nil, uninstallErr
			}
		}
	}

	inst = &Instance{
		Handle:       m.nextHandle(),
		DefinitionID: def.ID,
		ToggleGroup:  def.ToggleGroup,
		Owner:        owner,
		Source:       source,
	}

	var installed []string
	for _, b := range def.boosts {
		cb := *b
		handle, addErr := m.boosts.Add(&cb, boost.SourcePassive, inst.Handle)
		if addErr != nil {
			for _, h := range installed {
				m.boosts.RemoveByHandle(h)
			}
			return nil, nil, fmt.Errorf("passive: installing %s: %w", def.ID, addErr)
		}
		installed = append(installed, handle)
	}
	inst.boostHandles = installed
	m.instances = append(m.instances, inst)

	if dispatcher != nil && len(def.onApply) > 0 {
		applyErrs = functor.Execute(def.onApply, dispatcher, source, owner, condCtx)
	}

	return inst, applyErrs, nil
}

// Uninstall removes inst's boosts and drops it from the tracked set.
// A no-op if inst is not currently tracked.
func (m *Manager) Uninstall(inst *Instance) error {
	idx := -1
	for i, tracked := range m.instances {
		if tracked == inst {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	for _, h := range inst.boostHandles {
		m.boosts.RemoveByHandle(h)
	}
	inst.boostHandles = nil
	m.instances = append(m.instances[:idx], m.instances[idx+1:]...)
	return nil
}

// UninstallByID removes the installed instance of the named definition,
// if any. A no-op if no such instance is installed.
func (m *Manager) UninstallByID(definitionID string) error {
	if inst := m.byDefinitionID(definitionID); inst != nil {
		return m.Uninstall(inst)
	}
	return nil
}

// RunOnTurn executes every installed passive's OnTurn functor chain,
// routing self/target to the passive's source/owner. defs resolves each
// instance's DefinitionID to the Definition that describes it; an
// instance whose definition isn't found or has no OnTurn chain is
// skipped.
func (m *Manager) RunOnTurn(defs map[string]*Definition, dispatcher functor.Dispatcher, condCtx condition.Context) []*functor.ExecutionError {
	if dispatcher == nil {
		return nil
	}
	var errs []*functor.ExecutionError
	for _, inst := range m.instances {
		def, ok := defs[inst.DefinitionID]
		if !ok || len(def.onTurn) == 0 {
			continue
		}
		errs = append(errs, functor.Execute(def.onTurn, dispatcher, inst.Source, inst.Owner, condCtx)...)
	}
	return errs
}
