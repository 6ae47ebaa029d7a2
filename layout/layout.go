// Package layout builds grids from declarative YAML wiring files.
//
// A layout names the grid dimensions and the routes to configure:
//
//	rows: 4
//	cols: 4
//	channels: 1
//	routes:
//	  - { row: 0, col: 0, channel: 0, receive: PROCESSOR, send: SOUTH }
//
// Directions are spelled by name. Handlers and memory stay in host code
// (or a script); the layout only describes the static wiring.
package layout

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/dfgrid/grid"
)

// Direction decodes to and from YAML by direction name.
type Direction grid.Direction

func (d Direction) MarshalYAML() (value any, err error) {
	value = grid.Direction(d).String()
	return
}

func (d *Direction) UnmarshalYAML(node *yaml.Node) (err error) {
	var name string
	err = node.Decode(&name)
	if err != nil {
		return
	}

	dir, err := grid.ParseDirection(name)
	if err != nil {
		return
	}

	*d = Direction(dir)
	return
}

// Route is one configure-route entry of a layout.
type Route struct {
	Row     int       `yaml:"row"`
	Col     int       `yaml:"col"`
	Channel int       `yaml:"channel,omitempty"`
	Receive Direction `yaml:"receive"`
	Send    Direction `yaml:"send"`
}

// Layout is a declarative grid description.
type Layout struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Channels int     `yaml:"channels,omitempty"`
	Routes   []Route `yaml:"routes,omitempty"`
}

// Parse decodes a YAML layout.
func Parse(data []byte) (lay *Layout, err error) {
	lay = &Layout{}
	err = yaml.Unmarshal(data, lay)
	if err != nil {
		lay = nil
	}
	return
}

// Read decodes a YAML layout from a stream.
func Read(r io.Reader) (lay *Layout, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	return Parse(data)
}

// Build creates a grid with the layout's dimensions and routes. A zero
// channel count defaults to one. The memory factory may be nil.
func (lay *Layout) Build(memory func() any) (g *grid.Grid, err error) {
	channels := lay.Channels
	if channels == 0 {
		channels = 1
	}

	g, err = grid.NewGrid(lay.Rows, lay.Cols, channels, memory)
	if err != nil {
		return
	}

	err = lay.Apply(g)
	if err != nil {
		g = nil
	}
	return
}

// Apply configures the layout's routes on an existing grid. Routes naming
// cells or channels outside the grid surface the grid's own errors.
func (lay *Layout) Apply(g *grid.Grid) (err error) {
	for _, route := range lay.Routes {
		err = g.Route(route.Row, route.Col, route.Channel,
			grid.Direction(route.Receive), grid.Direction(route.Send))
		if err != nil {
			return
		}
	}
	return
}
