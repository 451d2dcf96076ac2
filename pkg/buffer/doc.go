// Package buffer provides RingBuffer, a thread-safe, fixed-size circular
// buffer that overwrites its oldest element once full — a sliding window of
// the most recent N items of any type, rather than a stream that blocks or
// grows.
//
// This repo uses it for the push-to-talk history log: a capped, append-only
// record of recent request/release transitions.
//
// Example usage:
//
//	ring := buffer.RingN[string](100)
//	ring.Add("event")
//	recent := ring.Bytes() // oldest first, newest-100 retained
package buffer
