// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"context"
	"fmt"

	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/core"
	"github.com/baldursgate-parity/ddrc/damage"
	"github.com/baldursgate-parity/ddrc/dice"
)

// QueryInput describes one combat query: an attack roll, a saving throw,
// an ability check, a damage roll, or an armor-class computation. Fields
// that don't apply to a given query are left zero.
type QueryInput struct {
	Source core.Entity
	Target core.Entity

	// BaseValue is whatever the caller has already resolved outside the
	// boost system: an ability modifier, a proficiency bonus, or both
	// summed together.
	BaseValue int

	// DiceSpec is the base dice notation for the query: "1d20" for a d20
	// roll, or a damage expression like "2d6" for damageRoll.
	DiceSpec string

	DamageType damage.Type
	RollKind   boost.RollKind
	Tags       []string

	// AttackType names what kind of attack produced this query — melee
	// weapon, ranged spell, and so on — for condition functions like
	// IsMeleeAttack to key off of. Unused by AttackRoll/DamageRoll math
	// itself.
	AttackType AttackType

	// Critical marks a damage roll as following a critical hit: the
	// attack roll's natural d20 came up 20. DamageRoll doubles the dice
	// count (not the flat modifier) when set.
	Critical bool

	// TargetAC gates attackRoll's Success; DC gates savingThrow/abilityCheck.
	TargetAC int
	DC       int
}

// QueryResult is the outcome of a combat query.
type QueryResult struct {
	Rolls   []int
	Natural int
	Final   int
	Success *bool
	Flags   []string
}

func boolPtr(b bool) *bool { return &b }

// rollD20WithAdvantage draws one or two d20s depending on adv, returning
// every die rolled (for display) and the natural value the query uses:
// max for Advantage, min for Disadvantage, the single roll otherwise.
func rollD20WithAdvantage(ctx context.Context, roller dice.Roller, adv boost.AdvantageState) ([]int, int, error) {
	if adv == boost.Normal {
		roll, err := roller.Roll(ctx, 20)
		if err != nil {
			return nil, 0, err
		}
		return []int{roll}, roll, nil
	}

	rolls, err := roller.RollN(ctx, 2, 20)
	if err != nil {
		return nil, 0, err
	}

	natural := rolls[0]
	if adv == boost.Advantage {
		if rolls[1] > natural {
			natural = rolls[1]
		}
	} else {
		if rolls[1] < natural {
			natural = rolls[1]
		}
	}
	return rolls, natural, nil
}

// rollDice evaluates a dice notation string and returns its individual
// results plus their sum, using roller for every die.
func rollDice(roller dice.Roller, notation string) ([]int, int, error) {
	if notation == "" {
		return nil, 0, nil
	}
	pool, err := dice.ParseNotation(notation)
	if err != nil {
		return nil, 0, fmt.Errorf("combat: %w", err)
	}
	result := pool.Roll(roller)
	if result.Error() != nil {
		return nil, 0, result.Error()
	}
	var flat []int
	for _, group := range result.Rolls() {
		flat = append(flat, group...)
	}
	return flat, result.Total(), nil
}

// rollDamageDice is rollDice plus an optional critical-hit dice-count
// doubling, applied before rolling so the extra dice are part of the
// same roll rather than a separate bonus roll.
func rollDamageDice(roller dice.Roller, notation string, critical bool) ([]int, int, error) {
	if notation == "" {
		return nil, 0, nil
	}
	pool, err := dice.ParseNotation(notation)
	if err != nil {
		return nil, 0, fmt.Errorf("combat: %w", err)
	}
	if critical {
		pool = pool.Doubled()
	}
	result := pool.Roll(roller)
	if result.Error() != nil {
		return nil, 0, result.Error()
	}
	var flat []int
	for _, group := range result.Rolls() {
		flat = append(flat, group...)
	}
	return flat, result.Total(), nil
}

// AttackRoll resolves a d20 attack roll against a target's armor class,
// applying the attacker's Advantage/Disadvantage state and RollBonus
// boosts for AttackRoll.
func AttackRoll(ctx context.Context, roller dice.Roller, in QueryInput, attackerBoosts *boost.BoostContainer, eval boost.Evaluator) (*QueryResult, error) {
	adv := boost.Normal
	if attackerBoosts != nil {
		adv = attackerBoosts.AdvantageState(boost.RollAttack, eval)
	}

	rolls, natural, err := rollD20WithAdvantage(ctx, roller, adv)
	if err != nil {
		return nil, err
	}

	final := natural + in.BaseValue
	flags := []string{}
	if natural == 20 {
		flags = append(flags, "critical")
	} else if natural == 1 {
		flags = append(flags, "fumble")
	}

	if attackerBoosts != nil {
		flat, diceBonuses := attackerBoosts.SumRollBonus(boost.RollAttack, eval)
		final += int(flat)
		for _, expr := range diceBonuses {
			bonusRolls, total, err := rollDice(roller, expr)
			if err != nil {
				return nil, err
			}
			rolls = append(rolls, bonusRolls...)
			final += total
		}
	}

	var success *bool
	if natural != 1 {
		success = boolPtr(natural == 20 || final >= in.TargetAC)
	} else {
		success = boolPtr(false)
	}

	return &QueryResult{Rolls: rolls, Natural: natural, Final: final, Success: success, Flags: flags}, nil
}

// SavingThrow resolves a d20 save against a DC.
func SavingThrow(ctx context.Context, roller dice.Roller, in QueryInput, saverBoosts *boost.BoostContainer, eval boost.Evaluator) (*QueryResult, error) {
	adv := boost.Normal
	if saverBoosts != nil {
		adv = saverBoosts.AdvantageState(boost.RollSave, eval)
	}

	rolls, natural, err := rollD20WithAdvantage(ctx, roller, adv)
	if err != nil {
		return nil, err
	}

	final := natural + in.BaseValue
	if saverBoosts != nil {
		flat, diceBonuses := saverBoosts.SumRollBonus(boost.RollSave, eval)
		final += int(flat)
		for _, expr := range diceBonuses {
			bonusRolls, total, err := rollDice(roller, expr)
			if err != nil {
				return nil, err
			}
			rolls = append(rolls, bonusRolls...)
			final += total
		}
	}

	success := boolPtr(final >= in.DC)
	return &QueryResult{Rolls: rolls, Natural: natural, Final: final, Success: success}, nil
}

// AbilityCheck resolves a d20 ability check, optionally against a DC.
func AbilityCheck(ctx context.Context, roller dice.Roller, in QueryInput, checkerBoosts *boost.BoostContainer, eval boost.Evaluator) (*QueryResult, error) {
	adv := boost.Normal
	if checkerBoosts != nil {
		adv = checkerBoosts.AdvantageState(boost.RollAbility, eval)
	}

	rolls, natural, err := rollD20WithAdvantage(ctx, roller, adv)
	if err != nil {
		return nil, err
	}

	final := natural + in.BaseValue
	if checkerBoosts != nil {
		flat, diceBonuses := checkerBoosts.SumRollBonus(boost.RollAbility, eval)
		final += int(flat)
		for _, expr := range diceBonuses {
			bonusRolls, total, err := rollDice(roller, expr)
			if err != nil {
				return nil, err
			}
			rolls = append(rolls, bonusRolls...)
			final += total
		}
	}

	result := &QueryResult{Rolls: rolls, Natural: natural, Final: final}
	if in.DC != 0 {
		result.Success = boolPtr(final >= in.DC)
	}
	return result, nil
}

// DamageRoll rolls the base dice plus static bonus, adds per-damage-type
// DamageBonus boosts, then applies the target's resistance level. When
// in.Critical is set, the dice count (not the flat modifier) is doubled
// before rolling, per the standard critical-hit rule.
func DamageRoll(ctx context.Context, roller dice.Roller, in QueryInput, attackerBoosts, targetBoosts *boost.BoostContainer, eval boost.Evaluator) (*QueryResult, error) {
	_ = ctx
	rolls, total, err := rollDamageDice(roller, in.DiceSpec, in.Critical)
	if err != nil {
		return nil, err
	}
	total += in.BaseValue

	if attackerBoosts != nil {
		total += int(attackerBoosts.SumNumeric("DamageBonus", in.DamageType, eval))
	}

	flags := []string{}
	final := total
	if targetBoosts != nil && in.DamageType != "" {
		level := targetBoosts.ResistanceLevel(in.DamageType, eval)
		final = damage.Apply(level, total)
		if level != damage.LevelNormal {
			flags = append(flags, string(level))
		}
	}

	return &QueryResult{Rolls: rolls, Final: final, Flags: flags}, nil
}

// ArmorClass computes a combatant's AC: base armor AC (passed as
// BaseValue, already capped by the armor's ability-modifier rule by the
// caller) plus summed AC boosts.
func ArmorClass(in QueryInput, boosts *boost.BoostContainer, eval boost.Evaluator) *QueryResult {
	final := in.BaseValue
	if boosts != nil {
		final += int(boosts.SumNumeric("AC", "", eval))
	}
	return &QueryResult{Final: final}
}
