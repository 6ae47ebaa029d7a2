package grid

import (
	"iter"
	"log"

	"github.com/ezrec/dfgrid/internal"
)

// Message is an opaque, caller-defined payload. The engine never inspects
// its contents; nil means "no message".
type Message = any

// Handler receives the cell's memory and the message dequeued this step
// (nil when none arrived), and may mutate the memory. A non-nil return is
// the channel's outbound candidate for the step; when several handlers are
// registered, the last handler's return wins. A non-nil error aborts the
// running Simulate call.
type Handler func(memory any, message Message) (Message, error)

// channel is the route, queue, and handler state for one communication
// channel of a cell.
type channel struct {
	inbound  Direction
	outbound Direction
	skip     [2]Direction
	queue    []Message
	handlers []Handler
}

// Cell is one processing element of the grid.
type Cell struct {
	Row    int
	Col    int
	Memory any // Caller-owned memory, exclusive to this cell.

	grid    *Grid
	channel []channel
}

func (c *Cell) checkChannel(ch int) (err error) {
	if ch < 0 || ch >= len(c.channel) {
		err = ErrChannel
	}
	return
}

// QueueLen returns the number of pending messages on the channel, or zero
// for a channel index outside the grid's channel count.
func (c *Cell) QueueLen(ch int) (count int) {
	if c.checkChannel(ch) == nil {
		count = len(c.channel[ch].queue)
	}
	return
}

// Pending iterates the channel's queued messages in delivery order without
// consuming them. A channel index outside the grid's channel count yields
// nothing.
func (c *Cell) Pending(ch int) iter.Seq[Message] {
	return func(yield func(Message) bool) {
		if c.checkChannel(ch) != nil {
			return
		}
		for _, element := range c.channel[ch].queue {
			if !yield(element) {
				return
			}
		}
	}
}

// PendingAll iterates the pending messages of every channel, in channel
// order then delivery order.
func (c *Cell) PendingAll() iter.Seq[Message] {
	seqs := make([]iter.Seq[Message], len(c.channel))
	for ch := range c.channel {
		seqs[ch] = c.Pending(ch)
	}
	return internal.IterSeqConcat(seqs...)
}

// Routes returns the channel's configured routes: the inbound direction, the
// outbound direction, and the skip pair. Unconfigured routes are NOTHING.
func (c *Cell) Routes(ch int) (inbound, outbound Direction, skip [2]Direction, err error) {
	err = c.checkChannel(ch)
	if err != nil {
		return
	}

	state := &c.channel[ch]
	inbound = state.inbound
	outbound = state.outbound
	skip = state.skip
	return
}

func (c *Cell) handle(ch int, fn Handler) (err error) {
	err = c.checkChannel(ch)
	if err != nil {
		return
	}

	c.channel[ch].handlers = append(c.channel[ch].handlers, fn)
	return
}

// route sets one of the three route kinds, keyed on which side names the
// processor. Re-routing the same kind overwrites silently.
func (c *Cell) route(ch int, rcv, snd Direction) (err error) {
	err = c.checkChannel(ch)
	if err != nil {
		return
	}

	state := &c.channel[ch]
	switch {
	case snd == PROCESSOR:
		state.inbound = rcv
	case rcv == PROCESSOR:
		state.outbound = snd
	default:
		state.skip = [2]Direction{rcv, snd}
	}
	return
}

// runChannels processes every channel of the cell once: dequeue at most one
// message, forward it on the skip route if one is set, run the handlers in
// registration order, and forward the last handler's return on the outbound
// route. One message in, at most one message out, per channel per step.
func (c *Cell) runChannels() (err error) {
	for ch := range c.channel {
		state := &c.channel[ch]

		var element Message
		if len(state.queue) > 0 {
			element = state.queue[0]
			state.queue = state.queue[1:]

			// Pass-through wiring forwards before the handlers run,
			// independent of what they return.
			if state.skip[0] != NOTHING {
				err = c.send(element, state.skip[1], ch)
				if err != nil {
					return
				}
			}
		}

		// Only one send per channel, so earlier returns are overridden.
		var tosend Message
		for _, handler := range state.handlers {
			tosend, err = handler(c.Memory, element)
			if err != nil {
				err = ErrHandler{Row: c.Row, Col: c.Col, Channel: ch, Err: err}
				return
			}
		}

		if tosend != nil && state.outbound != NOTHING {
			err = c.send(tosend, state.outbound, ch)
			if err != nil {
				return
			}
		}
	}
	return
}

// send appends the message to the queue of the cell one hop away in the
// given direction, on the same channel. PROCESSOR loops the message back
// into this cell's own queue.
func (c *Cell) send(element Message, direction Direction, ch int) (err error) {
	var target *Cell
	switch direction {
	case NORTH:
		target, err = c.grid.At(c.Row-1, c.Col)
	case SOUTH:
		target, err = c.grid.At(c.Row+1, c.Col)
	case EAST:
		target, err = c.grid.At(c.Row, c.Col+1)
	case WEST:
		target, err = c.grid.At(c.Row, c.Col-1)
	case PROCESSOR:
		target = c
	default:
		err = ErrNoRoute
	}
	if err != nil {
		return
	}

	if c.grid.Verbose {
		log.Printf("(%d,%d) ch%d %v (%d,%d): %v",
			c.Row, c.Col, ch, direction, target.Row, target.Col, element)
	}

	target.channel[ch].queue = append(target.channel[ch].queue, element)
	return
}
