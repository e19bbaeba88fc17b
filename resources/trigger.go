// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package resources

// Trigger names an event that may cause a resource to replenish.
type Trigger string

const (
	// TriggerTurn fires at the start of each of the owner's turns.
	TriggerTurn Trigger = "turn"
	// TriggerShortRest fires when the owner takes a short rest.
	TriggerShortRest Trigger = "short_rest"
	// TriggerLongRest fires when the owner takes a long rest.
	TriggerLongRest Trigger = "long_rest"
	// TriggerNever means the resource never replenishes automatically;
	// it is only ever changed by explicit Consume/Restore/SetMax calls.
	TriggerNever Trigger = "never"
)

// ReplenishRule describes how a resource refills when its Trigger fires.
// A rule applies uniformly across every level the resource holds unless
// FillToMax is false and Amount is given, in which case Amount is added
// (capped at that level's max) instead of the level being topped off.
type ReplenishRule struct {
	Trigger Trigger

	// FillToMax sets current to max at every level on Trigger. This is
	// the common case: Action/BonusAction/Reaction fill to 1 each Turn,
	// spell slots fill to max on LongRest.
	FillToMax bool

	// Amount, when FillToMax is false and Amount > 0, is added to
	// current at every level on Trigger instead of filling to max.
	Amount int
}

// Replenishes reports whether the rule reacts to the given trigger.
func (r ReplenishRule) Replenishes(trigger Trigger) bool {
	return r.Trigger != "" && r.Trigger != TriggerNever && r.Trigger == trigger
}
