// Package script generates TSC scripts that dispatch on an integer held
// in flag memory.
//
// TSC has no way to read a multi-bit number back out of flags, so the
// generated script decodes it with a chain of conditional jumps instead:
// one event per possible value, where the event for a value tests only
// the bits at or above its own highest set bit. Reaching an event already
// proves what every lower bit holds, so the events form a binary decision
// tree over the flags. The event for value 0 tests every bit; the events
// for the largest values test none and just run their behavior text.
//
// For three flags the event for value 0 looks like:
//
//  #0200
//  <FLJ0500:0201<FLJ0501:0202<FLJ0502:0204
//  BEHAVIOR 0
//
// Credits scripts use the credits opcodes: an 'l' label instead of '#'
// and an 'f' jump instead of <FLJ.
package script
