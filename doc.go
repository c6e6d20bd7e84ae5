// Package errata implements a diagnostic-annotation carrier: a value that
// accumulates leveled, human-readable notes about what went right or wrong
// during an operation, passed and returned cheaply between call layers and
// inspected by the eventual caller to decide success or failure.
//
// # Data model
//
// An Errata is a handle to a shared payload holding an ordered list of
// annotations (newest first), an aggregate severity (the maximum over the
// notes) and the arena that owns every note's text. The zero value is empty
// and ok; the payload appears on the first mutating call.
//
// # Sharing
//
// Clone shares the payload between handles so returns stay cheap. Sharing
// never grants write access: mutating while more than one handle is live
// panics with ErrSharedWrite. Release gives a reference back; Clear marks
// the notes handled and releases.
//
// # Abandonment
//
// When the last handle releases a payload that still carries annotations,
// every Sink registered via RegisterSink is invoked, in registration order,
// with the still-intact Errata. This is the last-chance channel for
// failures nobody inspected; whether an abandoned failure merely gets
// logged or aborts the process is the sink's decision, not this package's.
//
// # Scope
//
// The package is single-threaded by design: confine an Errata to one
// logical operation and register sinks during startup. Rendering beyond the
// plain Write/String form lives in errata/erratafmt; the bump allocator
// behind annotation storage lives in errata/arena.
package errata
