package grid

import (
	"strings"
)

// Direction is the endpoint of a message route.
type Direction int

//go:generate go tool stringer -type=Direction
const (
	NOTHING   = Direction(0) // No route configured.
	NORTH     = Direction(1)
	SOUTH     = Direction(2)
	EAST      = Direction(3)
	WEST      = Direction(4)
	PROCESSOR = Direction(5) // Into or out of the cell's own processor.
)

var directionNames = map[string]Direction{
	"NOTHING":   NOTHING,
	"NORTH":     NORTH,
	"SOUTH":     SOUTH,
	"EAST":      EAST,
	"WEST":      WEST,
	"PROCESSOR": PROCESSOR,
}

// ParseDirection converts a direction name to a Direction. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseDirection(name string) (dir Direction, err error) {
	dir, ok := directionNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		err = ErrDirection(name)
	}
	return
}
