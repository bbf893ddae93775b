// Package source describes where form documents come from and how they are
// decoded. A document is YAML or JSON holding either a form mapping or a bare
// field list; decoding fills ids, names and option values the author omitted.
package source
