// Package term drives a real terminal: it probes dimensions and
// multiplexes a scrolling log region against a fixed status region
// using DECSTBM scroll-region control sequences.
//
// The SplitController is a Sink like any other stage, so it slots
// directly behind the filtering sinks. It is the one place in the
// pipeline that emits raw cursor control; everything above it deals
// in plain rendered lines. Emulators without scroll-region support
// are not detected or handled.
package term
