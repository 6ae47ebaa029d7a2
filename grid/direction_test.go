package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_String(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		dir  Direction
		name string
	}{
		{NOTHING, "NOTHING"},
		{NORTH, "NORTH"},
		{SOUTH, "SOUTH"},
		{EAST, "EAST"},
		{WEST, "WEST"},
		{PROCESSOR, "PROCESSOR"},
		{Direction(99), "Direction(99)"},
		{Direction(-1), "Direction(-1)"},
	}

	for _, test := range tests {
		assert.Equal(test.name, test.dir.String())
	}
}

func TestParseDirection(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		dir  Direction
		ok   bool
	}{
		{name: "NORTH", dir: NORTH, ok: true},
		{name: "south", dir: SOUTH, ok: true},
		{name: " East ", dir: EAST, ok: true},
		{name: "west", dir: WEST, ok: true},
		{name: "processor", dir: PROCESSOR, ok: true},
		{name: "nothing", dir: NOTHING, ok: true},
		{name: "upward", ok: false},
		{name: "", ok: false},
		{name: "north east", ok: false},
	}

	for _, test := range tests {
		dir, err := ParseDirection(test.name)
		if test.ok {
			assert.NoError(err, test.name)
			assert.Equal(test.dir, dir, test.name)
		} else {
			var ed ErrDirection
			assert.ErrorAs(err, &ed, test.name)
		}
	}
}
