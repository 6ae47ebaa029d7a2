package script

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/dfgrid/grid"
)

var fileOptions = syntax.FileOptions{
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// Load executes the Starlark program in src (or the named file when src is
// nil) against the grid. The program's route() and on() calls configure
// routes and register handlers; scripted cells with no memory yet are given
// a fresh Starlark dict. Handler failures during a later Simulate surface
// as grid.ErrHandler.
func Load(filename string, src any, g *grid.Grid) (err error) {
	thread := &starlark.Thread{Name: "dfgrid"}

	for cell := range g.Cells() {
		if cell.Memory == nil {
			cell.Memory = starlark.NewDict(0)
		}
	}

	pred := starlark.StringDict{
		"NOTHING":   starlark.MakeInt(int(grid.NOTHING)),
		"NORTH":     starlark.MakeInt(int(grid.NORTH)),
		"SOUTH":     starlark.MakeInt(int(grid.SOUTH)),
		"EAST":      starlark.MakeInt(int(grid.EAST)),
		"WEST":      starlark.MakeInt(int(grid.WEST)),
		"PROCESSOR": starlark.MakeInt(int(grid.PROCESSOR)),

		"rows":     starlark.MakeInt(g.Rows),
		"cols":     starlark.MakeInt(g.Cols),
		"channels": starlark.MakeInt(g.Channels),

		"route": starlark.NewBuiltin("route", routeBuiltin(g)),
		"on":    starlark.NewBuiltin("on", onBuiltin(g, thread)),
	}

	_, err = starlark.ExecFileOptions(&fileOptions, thread, filename, src, pred)
	return
}

type builtinFunc func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

// routeBuiltin implements route(row, col, channel, rcv, snd).
func routeBuiltin(g *grid.Grid) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var row, col, ch, rcv, snd int
		err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"row", &row, "col", &col, "channel", &ch, "rcv", &rcv, "snd", &snd)
		if err != nil {
			return nil, err
		}

		return starlark.None, g.Route(row, col, ch, grid.Direction(rcv), grid.Direction(snd))
	}
}

// onBuiltin implements on(row, col, channel, fn).
func onBuiltin(g *grid.Grid, thread *starlark.Thread) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var row, col, ch int
		var fn starlark.Callable
		err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"row", &row, "col", &col, "channel", &ch, "fn", &fn)
		if err != nil {
			return nil, err
		}

		return starlark.None, g.Handle(row, col, ch, handler(thread, fn, row, col))
	}
}

// handler adapts a Starlark callable to a grid.Handler. The engine is
// sequential, so reusing the load-time thread is safe.
func handler(thread *starlark.Thread, fn starlark.Callable, row, col int) grid.Handler {
	return func(memory any, message grid.Message) (grid.Message, error) {
		mem, ok := memory.(starlark.Value)
		if !ok {
			return nil, ErrMemory{Row: row, Col: col}
		}

		msg, err := toStarlark(message)
		if err != nil {
			return nil, err
		}

		result, err := starlark.Call(thread, fn, starlark.Tuple{mem, msg}, nil)
		if err != nil {
			return nil, err
		}
		if result == starlark.None {
			return nil, nil
		}

		return result, nil
	}
}

// toStarlark lifts a message into the interpreter. Scripted grids exchange
// Starlark values already; a few plain Go payloads are converted so host
// code can seed scripted cells.
func toStarlark(message grid.Message) (value starlark.Value, err error) {
	switch m := message.(type) {
	case nil:
		value = starlark.None
	case starlark.Value:
		value = m
	case bool:
		value = starlark.Bool(m)
	case int:
		value = starlark.MakeInt(m)
	case string:
		value = starlark.String(m)
	case float64:
		value = starlark.Float(m)
	default:
		err = ErrMessage{Message: message}
	}
	return
}
