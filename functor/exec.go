// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package functor

import (
	"fmt"

	"github.com/baldursgate-parity/ddrc/condition"
)

// ExecutionError records one term's failure without aborting the chain.
type ExecutionError struct {
	Term *Term
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("functor: term %q failed: %v", e.Term.RawText, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Execute runs every term in chain against dispatcher, in order. The
// dispatcher always receives self as the acting combatant; the
// combatant the effect lands on is target, or self when the term
// carries a SELF: route (a TARGET: route keeps target). Each term that
// carries an IF(...) gate is evaluated against condCtx as given.
//
// A term whose condition evaluates false is skipped silently. A term
// that errors is recorded in the returned slice and execution
// continues with the next term: one broken effect in a long chain must
// not silently no-op the rest of it.
func Execute(chain []*Term, dispatcher Dispatcher, self, target Entity, condCtx condition.Context) []*ExecutionError {
	var errs []*ExecutionError

	for _, term := range chain {
		if term.Condition != "" && !condition.Evaluate(term.Condition, condCtx) {
			continue
		}

		routedTarget := target
		if term.Route == RouteSelf {
			routedTarget = self
		}

		if err := dispatch(term, dispatcher, self, routedTarget); err != nil {
			errs = append(errs, &ExecutionError{Term: term, Err: err})
		}
	}

	return errs
}

func dispatch(term *Term, d Dispatcher, self, target Entity) error {
	if !IsKnown(term.Name) {
		return d.Unknown(term, self, target)
	}

	switch term.Name {
	case DealDamage:
		return d.DealDamage(term, self, target)
	case ApplyStatus:
		return d.ApplyStatus(term, self, target)
	case RemoveStatus:
		return d.RemoveStatus(term, self, target)
	case RegainHitPoints:
		return d.RegainHitPoints(term, self, target)
	case RestoreResource:
		return d.RestoreResource(term, self, target)
	case BreakConcentration:
		return d.BreakConcentration(term, self, target)
	case Stabilize:
		return d.Stabilize(term, self, target)
	case Force:
		return d.Force(term, self, target)
	case SetStatusDuration:
		return d.SetStatusDuration(term, self, target)
	case UseAttack:
		return d.UseAttack(term, self, target)
	default:
		return d.Unknown(term, self, target)
	}
}
