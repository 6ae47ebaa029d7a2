package grid

import (
	"iter"
	"log"
)

// Grid is a fixed-size array of cells addressed by (row, col). The grid
// owns every cell; cells locate their neighbors through the grid rather
// than holding references to each other.
type Grid struct {
	Rows     int
	Cols     int
	Channels int

	// Shared is the documented home for caller-owned global state that
	// handlers mutate across cells (externally shared arrays and the
	// like). Cells never read each other's Memory; anything global lives
	// here or behind an explicit alias captured by the handlers.
	Shared any

	Verbose bool // Set to log sends and steps.

	cells []Cell
}

// NewGrid creates a grid of rows by cols cells, each with the given number
// of communication channels, all routes unconfigured and all queues empty.
// When memory is not nil it is called once per cell, so every cell starts
// with an independent memory instance.
func NewGrid(rows, cols, channels int, memory func() any) (g *Grid, err error) {
	switch {
	case rows <= 0:
		err = ErrRows
	case cols <= 0:
		err = ErrCols
	case channels <= 0:
		err = ErrChannels
	}
	if err != nil {
		return
	}

	g = &Grid{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		cells:    make([]Cell, rows*cols),
	}

	for n := range g.cells {
		cell := &g.cells[n]
		cell.Row = n / cols
		cell.Col = n % cols
		cell.grid = g
		cell.channel = make([]channel, channels)
		if memory != nil {
			cell.Memory = memory()
		}
	}

	return
}

// At returns the cell at (row, col). The handle is stable across calls and
// across simulation steps.
func (g *Grid) At(row, col int) (cell *Cell, err error) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		err = ErrBounds{Row: row, Col: col}
		return
	}

	cell = &g.cells[row*g.Cols+col]
	return
}

// Cells iterates every cell in row-major order.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for n := range g.cells {
			if !yield(&g.cells[n]) {
				return
			}
		}
	}
}

// Handle appends a handler to the cell's channel. Handlers run in
// registration order; all of them see the step's message and may mutate
// memory, and the last handler's return value is the one forwarded.
func (g *Grid) Handle(row, col, ch int, fn Handler) (err error) {
	cell, err := g.At(row, col)
	if err != nil {
		return
	}

	return cell.handle(ch, fn)
}

// Route configures a route on the cell's channel. Which argument names
// PROCESSOR selects the route kind:
//
//   - snd == PROCESSOR: inbound route, messages from rcv feed the processor.
//   - rcv == PROCESSOR: outbound route, handler output is forwarded to snd.
//   - neither: skip route, dequeued messages are forwarded to snd without
//     consuming the handlers' output.
//
// Re-routing the same cell, channel, and kind overwrites the previous
// configuration.
func (g *Grid) Route(row, col, ch int, rcv, snd Direction) (err error) {
	cell, err := g.At(row, col)
	if err != nil {
		return
	}

	return cell.route(ch, rcv, snd)
}

// Simulate advances the grid the given number of time steps. Each step
// visits every cell in row-major order and runs every channel once.
// Simulate may be called repeatedly; queues and memory carry over, so the
// grid can be inspected between calls.
//
// Because a send lands in the target cell's queue immediately, a message
// sent to a cell not yet visited this step (south or east of the sender,
// in sweep order) is processed within the same step, while one sent to an
// already-visited cell waits for the next step.
//
// A failing step aborts the call; the effects of cells already visited in
// that step remain.
func (g *Grid) Simulate(steps int) (err error) {
	if steps < 0 {
		err = ErrSteps
		return
	}

	for n := range steps {
		if g.Verbose {
			log.Printf("step %d", n)
		}
		for i := range g.cells {
			err = g.cells[i].runChannels()
			if err != nil {
				return
			}
		}
	}

	return
}
