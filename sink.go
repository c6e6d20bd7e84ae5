package errata

// Sink receives an abandoned Errata: one whose payload was released for the
// last time while still carrying annotations. The handle is valid only for
// the duration of the call and must be treated as read-only; a sink may
// log, escalate or terminate the process as it sees fit. Panics raised by a
// sink are not caught here.
type Sink func(*Errata)

// sinks is process-wide state. It is intentionally unsynchronized: populate
// it during single-threaded startup, before errata values circulate.
var sinks []Sink

// RegisterSink appends s to the process-wide sink list. Sinks run in
// registration order and are never deregistered.
func RegisterSink(s Sink) {
	sinks = append(sinks, s)
}
