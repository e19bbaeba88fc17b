// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import (
	"github.com/baldursgate-parity/ddrc/boost"
	"github.com/baldursgate-parity/ddrc/passive"
	"github.com/baldursgate-parity/ddrc/resources"
	"github.com/baldursgate-parity/ddrc/status"
)

// Faction is a combatant's allegiance for targeting and AI purposes.
type Faction string

const (
	FactionPlayer  Faction = "Player"
	FactionHostile Faction = "Hostile"
	FactionNeutral Faction = "Neutral"
)

// LifeState is a combatant's position in the life/death state machine.
type LifeState string

const (
	LifeAlive       LifeState = "Alive"
	LifeDowned      LifeState = "Downed"
	LifeUnconscious LifeState = "Unconscious"
	LifeDead        LifeState = "Dead"
)

// Position is the combatant's location on the encounter grid. The core
// treats it as an opaque coordinate pair; the presentation layer owns
// everything about how it's rendered or animated.
type Position struct {
	X, Y float64
}

// Combatant is one live participant in an encounter: its resolved
// character data plus the three mutable stores — boosts, statuses, and
// resources — every other component reads and writes against.
type Combatant struct {
	ID       string
	Faction  Faction
	Life     LifeState
	Position Position

	Class         string
	ClassLevel    int
	AbilityScores map[string]int
	MaxHP         int
	CurrentHP     int

	ProficiencyGroups []string
	Tags              map[string]bool

	Boosts    *boost.BoostContainer
	Statuses  *status.StatusSet
	Passives  *passive.Manager
	Resources *resources.ActionResourcePool

	// StatusDefs is looked up by status ID when a StatusSet operation
	// (Tick, RemoveByGroup, CheckSave) needs the originating Definition.
	StatusDefs map[string]*status.Definition
	// PassiveDefs is looked up by passive ID when a status grants a
	// passive on Apply, and when Passives.RunOnTurn needs each
	// installed instance's Definition.
	PassiveDefs map[string]*passive.Definition
}

// New creates an empty combatant ready to have boosts/statuses/passives/
// resources registered on it. Statuses and Passives install and
// uninstall their boosts on the same BoostContainer the combatant's
// equipment uses.
func New(id string, faction Faction) *Combatant {
	boosts := boost.NewBoostContainer()
	return &Combatant{
		ID:            id,
		Faction:       faction,
		Life:          LifeAlive,
		AbilityScores: make(map[string]int),
		Tags:          make(map[string]bool),
		Boosts:        boosts,
		Statuses:      status.NewStatusSet(boosts),
		Passives:      passive.NewManager(boosts),
		Resources:     resources.NewActionResourcePool(),
		StatusDefs:    make(map[string]*status.Definition),
		PassiveDefs:   make(map[string]*passive.Definition),
	}
}

// GetID satisfies core.Entity, functor.Entity, and status.Entity.
func (c *Combatant) GetID() string { return c.ID }

// GetType satisfies core.Entity, functor.Entity, and status.Entity.
func (c *Combatant) GetType() string { return "combatant" }

// AbilityModifier returns the standard (score-10)/2 floor modifier for
// the named ability, honoring any AbilityOverride/AbilityScore boost.
func (c *Combatant) AbilityModifier(ability string) int {
	score := c.AbilityScores[ability]

	var overridden bool
	var bonus float64
	for _, b := range c.Boosts.Query(func(b *boost.Boost) bool { return b.Ability == ability }) {
		switch b.Kind {
		case boost.KindAbilityOverride:
			score = int(b.Numeric)
			overridden = true
		case boost.KindAbilityScore:
			bonus += b.Numeric
		}
	}
	if !overridden {
		score += int(bonus)
	}

	return floorDiv(score-10, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
