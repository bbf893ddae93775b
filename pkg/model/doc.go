// Package model defines the field descriptors consumed by the validator and
// the code synthesizer. Types live in internal/model and are re-exported here
// so callers depend on a stable surface. A Field carries the editor-facing
// attributes (label, placeholder, description, required/disabled flags,
// defaultValue, options, validation bounds) plus a machine Name derived from
// the label. Names and option values use the same normalisation: lower-case,
// every rune outside [a-z0-9_] replaced by an underscore, with synthetic
// fallbacks (field_<id>, option_<index>) when the result would be empty.
package model
