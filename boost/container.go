// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package boost

import (
	"fmt"
	"sort"

	"github.com/baldursgate-parity/ddrc/damage"
)

// Evaluator decides whether a boost's optional condition string currently
// holds. BoostContainer never parses or evaluates condition text itself;
// every aggregator takes one of these and skips boosts it rejects. A nil
// Evaluator is treated as "every boost applies" so callers that don't care
// about conditions (e.g. listing installed boosts for a UI) can omit it.
type Evaluator func(condition string) bool

func alwaysTrue(string) bool { return true }

func evalOrDefault(eval Evaluator) Evaluator {
	if eval == nil {
		return alwaysTrue
	}
	return eval
}

// BoostContainer holds every boost currently installed on one combatant.
// It is not safe for concurrent use: the core's single-threaded
// cooperative model means exactly one goroutine ever touches a
// combatant's state at a time.
type BoostContainer struct {
	boosts []*Boost
	nextID int
}

// NewBoostContainer creates an empty container.
func NewBoostContainer() *BoostContainer {
	return &BoostContainer{}
}

// Add installs a boost from the given source, assigning it a handle
// unique within this container. Adding an exact duplicate (same Name,
// same payload, same SourceKind+SourceID) is rejected: a status or
// passive that double-applies by accident should not silently double the
// modifier.
func (c *BoostContainer) Add(b *Boost, sourceKind SourceKind, sourceID string) (string, error) {
	b.SourceKind = sourceKind
	b.SourceID = sourceID

	for _, existing := range c.boosts {
		if sameBoost(existing, b) {
			return "", fmt.Errorf("boost: duplicate %s from source %s:%s", b.Name, sourceKind, sourceID)
		}
	}

	c.nextID++
	b.Handle = fmt.Sprintf("boost-%d", c.nextID)
	c.boosts = append(c.boosts, b)
	return b.Handle, nil
}

func sameBoost(a, b *Boost) bool {
	return a.Name == b.Name &&
		a.RawText == b.RawText &&
		a.SourceKind == b.SourceKind &&
		a.SourceID == b.SourceID
}

// RemoveBySource removes every boost installed by the given source,
// returning how many were removed.
func (c *BoostContainer) RemoveBySource(sourceKind SourceKind, sourceID string) int {
	kept := c.boosts[:0]
	removed := 0
	for _, b := range c.boosts {
		if b.SourceKind == sourceKind && b.SourceID == sourceID {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	c.boosts = kept
	return removed
}

// RemoveByHandle removes a single boost by the handle Add returned.
func (c *BoostContainer) RemoveByHandle(handle string) bool {
	for i, b := range c.boosts {
		if b.Handle == handle {
			c.boosts = append(c.boosts[:i], c.boosts[i+1:]...)
			return true
		}
	}
	return false
}

// Query returns every installed boost matching predicate, in insertion order.
func (c *BoostContainer) Query(predicate func(*Boost) bool) []*Boost {
	var out []*Boost
	for _, b := range c.boosts {
		if predicate(b) {
			out = append(out, b)
		}
	}
	return out
}

// QueryBySourceKind returns every boost installed by sources of the given kind.
func (c *BoostContainer) QueryBySourceKind(kind SourceKind) []*Boost {
	return c.Query(func(b *Boost) bool { return b.SourceKind == kind })
}

// sortedByPrecedence returns a copy of boosts ordered by source-kind
// precedence, Equipment < Passive < Status < Spell < Misc. Insertion
// order is preserved within the same source kind (stable sort).
func sortedByPrecedence(boosts []*Boost) []*Boost {
	out := make([]*Boost, len(boosts))
	copy(out, boosts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].sourceOrder() < out[j].sourceOrder()
	})
	return out
}

// SumNumeric aggregates every KindNumeric boost whose Name matches name
// and, if damageType is non-empty, whose DamageType also matches. Boosts
// gated by a condition the evaluator rejects are skipped.
func (c *BoostContainer) SumNumeric(name string, damageType damage.Type, eval Evaluator) float64 {
	eval = evalOrDefault(eval)
	var total float64
	for _, b := range sortedByPrecedence(c.boosts) {
		if b.Kind != KindNumeric || b.Name != name {
			continue
		}
		if damageType != "" && b.DamageType != damageType {
			continue
		}
		if !eval(b.Condition) {
			continue
		}
		total += b.Numeric
	}
	return total
}

// SumRollBonus aggregates RollBonus boosts targeting rollKind, returning
// the flat-integer total and the list of dice expressions to roll
// alongside the base roll (a RollBonus argument may be either).
func (c *BoostContainer) SumRollBonus(rollKind RollKind, eval Evaluator) (flat float64, dice []string) {
	eval = evalOrDefault(eval)
	for _, b := range sortedByPrecedence(c.boosts) {
		if b.Kind != KindNumeric || b.Name != "RollBonus" || b.RollKind != rollKind {
			continue
		}
		if !eval(b.Condition) {
			continue
		}
		if b.Dice != "" {
			dice = append(dice, b.Dice)
		} else {
			flat += b.Numeric
		}
	}
	return flat, dice
}

// AdvantageState resolves the net Advantage/Disadvantage state for a roll
// kind: both present cancels to Normal.
func (c *BoostContainer) AdvantageState(rollKind RollKind, eval Evaluator) AdvantageState {
	eval = evalOrDefault(eval)
	hasAdv, hasDis := false, false
	for _, b := range c.boosts {
		if b.Kind != KindAdvantage || b.RollKind != rollKind {
			continue
		}
		if !eval(b.Condition) {
			continue
		}
		switch b.AdvState {
		case Advantage:
			hasAdv = true
		case Disadvantage:
			hasDis = true
		}
	}
	switch {
	case hasAdv && hasDis:
		return Normal
	case hasAdv:
		return Advantage
	case hasDis:
		return Disadvantage
	default:
		return Normal
	}
}

// ResistanceLevel resolves the controlling resistance level for a damage
// type, applying the Immune > Vulnerable > Resistant precedence.
func (c *BoostContainer) ResistanceLevel(damageType damage.Type, eval Evaluator) damage.Level {
	eval = evalOrDefault(eval)
	var levels []damage.Level
	for _, b := range c.boosts {
		if b.Kind != KindResistance || b.DamageType != damageType {
			continue
		}
		if !eval(b.Condition) {
			continue
		}
		levels = append(levels, b.ResistanceLevel)
	}
	return damage.Resolve(levels)
}

// StatusImmunities returns the set of status IDs this combatant is immune to.
func (c *BoostContainer) StatusImmunities(eval Evaluator) map[string]bool {
	eval = evalOrDefault(eval)
	out := make(map[string]bool)
	for _, b := range c.boosts {
		if b.Kind != KindStatusImmunity {
			continue
		}
		if !eval(b.Condition) {
			continue
		}
		out[b.StatusID] = true
	}
	return out
}

// HasProficiency reports whether any installed boost grants proficiency
// in the given category and name.
func (c *BoostContainer) HasProficiency(category ProficiencyCategory, name string, eval Evaluator) bool {
	eval = evalOrDefault(eval)
	for _, b := range c.boosts {
		if b.Kind != KindProficiency {
			continue
		}
		if b.ProficiencyCategory != category || b.ProficiencyName != name {
			continue
		}
		if !eval(b.Condition) {
			continue
		}
		return true
	}
	return false
}

// All returns every installed boost, in insertion order.
func (c *BoostContainer) All() []*Boost {
	out := make([]*Boost, len(c.boosts))
	copy(out, c.boosts)
	return out
}
