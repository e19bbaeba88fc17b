// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package resources

import "fmt"

// SpellUseCost aggregates everything an ability use spends: the action
// economy cost (e.g. "Action", "BonusAction"), an optional spell slot
// (by name/level/count), and any number of other named resource costs
// (class features like "Rage" or "KiPoint"). Validate checks that a
// pool can afford it without consuming anything, and Apply consumes it.
// Nothing else in this module calls either one: the combat query layer
// does not check or spend costs.
type SpellUseCost struct {
	// ActionCost names the action-economy resource this use spends, e.g.
	// "Action" or "BonusAction". Empty means it spends no action slot.
	ActionCost string

	// SlotName is the leveled resource a cast draws from, e.g.
	// "SpellSlot" or "WarlockSpellSlot". Empty means the use spends no
	// spell slot.
	SlotName  string
	SlotLevel int
	SlotCount int // defaults to 1 when SlotName is set and SlotCount is 0

	// ResourceCosts maps any other named resource to the amount spent,
	// always at level 0 (e.g. "Rage": 1, "SuperiorityDie": 1).
	ResourceCosts map[string]int
}

func (c SpellUseCost) slotCount() int {
	if c.SlotCount > 0 {
		return c.SlotCount
	}
	return 1
}

// Validate reports whether pool currently holds everything c would
// spend, without consuming anything.
func (c SpellUseCost) Validate(pool *ActionResourcePool) error {
	if c.ActionCost != "" && !pool.Has(c.ActionCost, 1, 0) {
		return fmt.Errorf("resources: insufficient %s", c.ActionCost)
	}
	if c.SlotName != "" && !pool.Has(c.SlotName, c.slotCount(), c.SlotLevel) {
		return fmt.Errorf("resources: insufficient %s at level %d", c.SlotName, c.SlotLevel)
	}
	for name, amount := range c.ResourceCosts {
		if !pool.Has(name, amount, 0) {
			return fmt.Errorf("resources: insufficient %s", name)
		}
	}
	return nil
}

// Apply validates c against pool and then consumes every component.
// Consumption is atomic: if validation passes but a later consume still
// somehow fails (concurrent mutation is not expected, but defense
// costs nothing here), everything already consumed in this call is
// restored before the error is returned.
func (c SpellUseCost) Apply(pool *ActionResourcePool) error {
	if err := c.Validate(pool); err != nil {
		return err
	}

	type spent struct {
		name         string
		amount, level int
	}
	var done []spent
	rollback := func() {
		for _, s := range done {
			_ = pool.Restore(s.name, s.amount, s.level)
		}
	}

	if c.ActionCost != "" {
		if err := pool.Consume(c.ActionCost, 1, 0); err != nil {
			rollback()
			return err
		}
		done = append(done, spent{c.ActionCost, 1, 0})
	}
	if c.SlotName != "" {
		n := c.slotCount()
		if err := pool.Consume(c.SlotName, n, c.SlotLevel); err != nil {
			rollback()
			return err
		}
		done = append(done, spent{c.SlotName, n, c.SlotLevel})
	}
	for name, amount := range c.ResourceCosts {
		if err := pool.Consume(name, amount, 0); err != nil {
			rollback()
			return err
		}
		done = append(done, spent{name, amount, 0})
	}

	return nil
}
