// Package types defines the grid-definition data model shared by the
// areagrid catalog parsers, the parameter-inference engine, and the
// definition store: the Quantity and Params inputs, the Definition sum
// type with its static and dynamic variants, and the standard errors.
package types
