// Package codegen synthesizes a zod schema declaration and a React component
// (react-hook-form with shadcn/ui controls) from a validated field list.
//
// Each field type is a Kind that contributes a base schema rule, a render
// block and a default-value initializer. The shared clause pipeline applies
// required/optional shaping and validation bounds in a fixed order. Output is
// assembled as a jsast tree and printed once, so every user-supplied string is
// escaped at the printer.
package codegen
