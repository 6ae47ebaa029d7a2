// Package script wires and programs a grid from a Starlark source file.
//
// A program runs once at load time with two builtins in scope: route(),
// which mirrors grid.Route, and on(), which registers a Starlark function
// as a channel handler. Handlers are called per step as fn(mem, msg) with
// the cell's memory dict and the dequeued message (None when the queue was
// empty); a non-None return value is forwarded on the channel's outbound
// route. Direction constants and the grid dimensions are predeclared.
package script
