package script

import (
	"github.com/ezrec/dfgrid/translate"
)

var f = translate.From

// ErrMemory reports a cell whose memory is not a Starlark value.
type ErrMemory struct {
	Row int
	Col int
}

func (em ErrMemory) Error() string {
	return f("cell (%d, %d) memory is not scriptable", em.Row, em.Col)
}

// ErrMessage reports a message that cannot be passed to a Starlark handler.
type ErrMessage struct {
	Message any
}

func (em ErrMessage) Error() string {
	return f("message %v is not scriptable", em.Message)
}
