// Package template defines the renderer-agnostic template interface. The
// pongo subpackage provides the default Django-syntax engine.
package template
