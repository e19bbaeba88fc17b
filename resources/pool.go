// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package resources

import "fmt"

// ActionResourcePool holds every named resource a combatant spends to
// act, keyed by name ("Action", "SpellSlot", "Rage", ...).
type ActionResourcePool struct {
	resources map[string]*Resource
}

// NewActionResourcePool creates an empty pool.
func NewActionResourcePool() *ActionResourcePool {
	return &ActionResourcePool{resources: make(map[string]*Resource)}
}

// Register adds r to the pool, replacing any existing resource of the
// same name.
func (p *ActionResourcePool) Register(r *Resource) {
	if r == nil {
		return
	}
	p.resources[r.Name] = r
}

// Get returns the named resource, if registered.
func (p *ActionResourcePool) Get(name string) (*Resource, bool) {
	r, ok := p.resources[name]
	return r, ok
}

func (p *ActionResourcePool) lookup(name string) (*Resource, error) {
	r, ok := p.resources[name]
	if !ok {
		return nil, fmt.Errorf("resources: unknown resource %q", name)
	}
	return r, nil
}

// Has reports whether the named resource has at least amount available
// at level. Level defaults to 0 for unleveled resources. An unknown
// resource name reports false.
func (p *ActionResourcePool) Has(name string, amount, level int) bool {
	r, err := p.lookup(name)
	if err != nil {
		return false
	}
	return r.Has(amount, level)
}

// Consume removes amount from the named resource at level.
func (p *ActionResourcePool) Consume(name string, amount, level int) error {
	r, err := p.lookup(name)
	if err != nil {
		return err
	}
	return r.Consume(amount, level)
}

// Restore adds amount back to the named resource at level, capped at
// its max.
func (p *ActionResourcePool) Restore(name string, amount, level int) error {
	r, err := p.lookup(name)
	if err != nil {
		return err
	}
	return r.Restore(amount, level)
}

// SetMax sets the named resource's maximum at level.
func (p *ActionResourcePool) SetMax(name string, level, max int) error {
	r, err := p.lookup(name)
	if err != nil {
		return err
	}
	return r.SetMax(level, max)
}

// ReplenishAll applies trigger to every registered resource's
// replenishment rule, e.g. filling Action/BonusAction/Reaction to 1 and
// Movement to its max on TriggerTurn.
func (p *ActionResourcePool) ReplenishAll(trigger Trigger) {
	for _, r := range p.resources {
		r.ApplyReplenish(trigger)
	}
}

// Names returns every registered resource name, in no particular order.
func (p *ActionResourcePool) Names() []string {
	out := make([]string, 0, len(p.resources))
	for name := range p.resources {
		out = append(out, name)
	}
	return out
}
