// Package outcome defines Outcome[T, E], a value that is either a success
// carrying T or a failure carrying E, never both and never neither.
//
// An Outcome is built from an intent marker so the caller states which side
// a payload belongs to, even when T and E are the same type:
// - MarkSuccess/MarkFailure: label a payload
// - FromSuccess/FromFailure: absorb a marker into an Outcome
// - Succeed/Fail: both steps at once
//
// Unit stands in for an absent payload. Fallible[E], Maybe[T] and Signal
// name the shapes where one or both sides carry nothing.
//
// Branch on IsSuccess before calling Value or Err; calling the accessor of
// the other side panics with a *MisuseError. Match, Inspect, TryValue and
// TryErr inspect an Outcome without that risk.
//
// There are no bind/map/then helpers.
package outcome
