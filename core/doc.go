// Package core provides the fundamental interfaces and identifier scheme
// shared by every DDRC package: Entity (the minimal identity contract a
// combatant, status instance, or resource must satisfy) and Ref (the
// module:type:value identifier used to name definitions and to attribute
// boosts/statuses back to whatever installed them).
//
// Scope:
//   - Entity interface: GetID/GetType, nothing else.
//   - Ref: parse, validate, stringify, and compare module:type:value triples.
//   - Common errors shared by packages that build on Entity/Ref.
//
// Non-Goals:
//   - No game statistics, no stat-block fields: those live in definitions.
//   - No persistence: Ref values are immutable value types, not handles into
//     a store.
package core
