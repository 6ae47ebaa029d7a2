package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/dfgrid/grid"
)

const columnLayout = `
rows: 4
cols: 4
channels: 2
routes:
  - { row: 0, col: 0, channel: 0, receive: PROCESSOR, send: SOUTH }
  - { row: 1, col: 0, channel: 0, receive: NORTH, send: PROCESSOR }
  - { row: 1, col: 0, channel: 0, receive: PROCESSOR, send: SOUTH }
  - { row: 2, col: 0, channel: 1, receive: WEST, send: EAST }
`

func TestParse(t *testing.T) {
	assert := assert.New(t)

	lay, err := Parse([]byte(columnLayout))
	assert.NoError(err)
	assert.Equal(4, lay.Rows)
	assert.Equal(4, lay.Cols)
	assert.Equal(2, lay.Channels)
	assert.Len(lay.Routes, 4)

	assert.Equal(Route{
		Row:     0,
		Col:     0,
		Channel: 0,
		Receive: Direction(grid.PROCESSOR),
		Send:    Direction(grid.SOUTH),
	}, lay.Routes[0])
}

func TestParse_BadDirection(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse([]byte(`
rows: 2
cols: 2
routes:
  - { row: 0, col: 0, channel: 0, receive: PROCESSOR, send: UPWARD }
`))
	var ed grid.ErrDirection
	assert.ErrorAs(err, &ed)
}

func TestParse_BadYAML(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse([]byte("rows: [not an int"))
	assert.Error(err)
}

func TestRead(t *testing.T) {
	assert := assert.New(t)

	lay, err := Read(strings.NewReader(columnLayout))
	assert.NoError(err)
	assert.Equal(4, lay.Rows)
}

func TestLayout_Build(t *testing.T) {
	assert := assert.New(t)

	lay, err := Parse([]byte(columnLayout))
	assert.NoError(err)

	g, err := lay.Build(nil)
	assert.NoError(err)
	assert.Equal(4, g.Rows)
	assert.Equal(4, g.Cols)
	assert.Equal(2, g.Channels)

	cell, err := g.At(1, 0)
	assert.NoError(err)
	inbound, outbound, skip, err := cell.Routes(0)
	assert.NoError(err)
	assert.Equal(grid.NORTH, inbound)
	assert.Equal(grid.SOUTH, outbound)
	assert.Equal([2]grid.Direction{grid.NOTHING, grid.NOTHING}, skip)

	cell, err = g.At(2, 0)
	assert.NoError(err)
	_, _, skip, err = cell.Routes(1)
	assert.NoError(err)
	assert.Equal([2]grid.Direction{grid.WEST, grid.EAST}, skip)
}

func TestLayout_Build_DefaultChannels(t *testing.T) {
	assert := assert.New(t)

	lay, err := Parse([]byte("rows: 2\ncols: 3\n"))
	assert.NoError(err)

	g, err := lay.Build(nil)
	assert.NoError(err)
	assert.Equal(1, g.Channels)
}

func TestLayout_Build_BadDims(t *testing.T) {
	assert := assert.New(t)

	lay, err := Parse([]byte("rows: 0\ncols: 3\n"))
	assert.NoError(err)

	_, err = lay.Build(nil)
	assert.ErrorIs(err, grid.ErrRows)
}

func TestLayout_Apply_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	lay := &Layout{
		Rows: 2,
		Cols: 2,
		Routes: []Route{
			{Row: 9, Col: 0, Receive: Direction(grid.PROCESSOR), Send: Direction(grid.SOUTH)},
		},
	}

	_, err := lay.Build(nil)
	assert.ErrorIs(err, grid.ErrBounds{})
}

func TestDirection_MarshalRoundTrip(t *testing.T) {
	assert := assert.New(t)

	lay := &Layout{
		Rows:     3,
		Cols:     1,
		Channels: 1,
		Routes: []Route{
			{Row: 0, Col: 0, Receive: Direction(grid.PROCESSOR), Send: Direction(grid.SOUTH)},
			{Row: 1, Col: 0, Receive: Direction(grid.NORTH), Send: Direction(grid.PROCESSOR)},
		},
	}

	data, err := yaml.Marshal(lay)
	assert.NoError(err)
	assert.Contains(string(data), "SOUTH")

	again, err := Parse(data)
	assert.NoError(err)
	assert.Equal(lay, again)
}
