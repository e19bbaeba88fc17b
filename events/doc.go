// Package events provides a presentation request bus: a synchronous,
// in-process publish/subscribe mechanism for announcing what happened
// without awaiting a response from whatever consumes it.
//
// Purpose:
// The bus is the narrow seam between a rules core and an
// animation/VFX/UI layer. The package defines no event types of its own
// (there is no DamageDealt, HealApplied, StatusApplied and so on), and
// no other package in this module publishes to it: the status runtime
// and the functor dispatcher apply their effects without emitting any
// record. Callers supply their own types implementing Event.
//
// Scope:
//   - Ref-routed pub/sub (core.Ref identifies an event kind, not a string)
//   - Synchronous, same-goroutine delivery with cascade-depth protection
//   - Deferred actions so a handler can safely publish/unsubscribe without
//     deadlocking on the bus's own lock
//
// Non-Goals:
//   - No network transport, no persistence, no replay.
//   - No async delivery or retry/dead-letter handling: a misbehaving
//     subscriber's error simply propagates to the publisher.
package events
