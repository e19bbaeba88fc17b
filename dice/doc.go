// Package dice provides cryptographically secure random number generation
// for RPG mechanics without implementing any game-specific rules.
//
// Purpose:
// This package offers deterministic and non-deterministic dice rolling
// capabilities with modifier support, ensuring fair and unpredictable
// game outcomes when needed while supporting testing scenarios.
//
// Scope:
//   - Dice notation parsing (e.g., "3d6+2", "1d20-1")
//   - Cryptographically secure random generation
//   - Modifier system for bonuses and penalties
//   - Roll history and individual die results
//   - Deterministic rolling for testing
//   - Support for standard polyhedral dice (d4, d6, d8, d10, d12, d20, d100)
//   - Mathematical operations on roll results
//
// Non-Goals:
//   - Game-specific roll types: Advantage/disadvantage belong in games
//   - Roll result interpretation: Critical hits/failures are game rules
//   - Dice pool mechanics: Counting successes is game-specific
//   - Reroll mechanics: When to reroll is game logic
//   - Probability calculations: Use external statistics packages
//   - Dice UI/visualization: This is pure logic
//   - Custom dice faces: Non-numeric dice are game-specific
//
// Integration:
// This package is used by:
//   - The combat query layer for attack, save, and damage rolls
//   - Skill and ability checks
//   - Any mechanic requiring random numbers, seeded or not
//
// The dice package provides the randomness foundation but makes no
// assumptions about how rolls are used or interpreted. CryptoRoller backs
// normal play; SeededRoller backs anything that must be reproducible
// (an encounter replay, a regression test).
//
// Example:
//
//	pool, err := dice.ParseNotation("3d6+2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := pool.Roll(dice.NewRoller())
//	fmt.Printf("Rolled %d (%s)\n", result.Total(), result.Description())
//
//	// For testing, use a predetermined sequence.
//	testRoller := dice.NewMockRoller(6, 5, 4)
//	result = pool.Roll(testRoller)
package dice
