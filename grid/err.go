package grid

import (
	"errors"

	"github.com/ezrec/dfgrid/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrRows     = errors.New(f("rows not positive"))
	ErrCols     = errors.New(f("cols not positive"))
	ErrChannels = errors.New(f("channels not positive"))

	// Usage errors
	ErrChannel = errors.New(f("channel invalid"))
	ErrNoRoute = errors.New(f("route not configured"))
	ErrSteps   = errors.New(f("steps negative"))
)

// ErrBounds reports a coordinate outside the grid. It also surfaces from
// Simulate when a route points off the edge of the grid.
type ErrBounds struct {
	Row int
	Col int
}

func (eb ErrBounds) Error() string {
	return f("cell (%d, %d) out of range", eb.Row, eb.Col)
}

func (eb ErrBounds) Is(err error) (ok bool) {
	_, ok = err.(ErrBounds)
	return
}

// ErrDirection reports a name that is not a direction.
type ErrDirection string

func (ed ErrDirection) Error() string {
	return f("'%v' is not a direction", string(ed))
}

// ErrHandler wraps a handler failure with the cell and channel it ran on.
type ErrHandler struct {
	Row     int
	Col     int
	Channel int
	Err     error
}

func (eh ErrHandler) Error() string {
	return f("handler at (%d, %d) channel %d: %v", eh.Row, eh.Col, eh.Channel, eh.Err)
}

func (eh ErrHandler) Unwrap() error {
	return eh.Err
}
