// Package render defines the display collaborators that receive generated
// source text. Renderers are looked up by name in a Registry and receive the
// schema and component artifacts together with per-request RenderOptions.
package render
