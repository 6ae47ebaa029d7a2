// Package grid simulates a two-dimensional spatial dataflow architecture.
//
// The grid is a fixed array of processing elements (cells). Each cell owns
// a private memory slot and communicates with its four compass neighbors
// over one or more independent channels. Per channel a cell carries a FIFO
// queue of pending messages, an ordered list of handlers, and up to three
// route configurations: an inbound route (neighbor to processor), an
// outbound route (processor to neighbor), and a skip route (pass-through
// forwarding that bypasses the processor).
//
// Simulation advances in discrete time steps. Each step visits every cell
// in row-major order and processes every channel once: at most one message
// is dequeued, handlers run in registration order, and at most one message
// is forwarded on the outbound route. Messages are opaque to the engine.
//
// The engine is single-threaded and deterministic. It models routing
// capacity, not timing; a message travels one hop per step and nothing
// more precise is promised.
package grid
