// Package orchestrator wires the loader → importer/decoder → validator →
// synthesizer → renderer pipeline, providing dependency injection friendly
// helpers for consumers that prefer a single entry point.
package orchestrator
