package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/dfgrid/grid"
	"github.com/ezrec/dfgrid/layout"
	"github.com/ezrec/dfgrid/script"
)

func main() {
	var layoutFile string
	var program string
	var steps int
	var verbose bool

	flag.StringVar(&layoutFile, "g", "", ".yaml grid layout to load")
	flag.StringVar(&program, "p", "", ".star program to load")
	flag.IntVar(&steps, "n", 1, "time steps to simulate")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if layoutFile == "" {
		log.Fatalf("%v: a grid layout (-g) is required", os.Args[0])
	}

	inf, err := os.Open(layoutFile)
	if err != nil {
		log.Fatalf("%v: %v", layoutFile, err)
	}

	lay, err := layout.Read(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", layoutFile, err)
	}

	g, err := lay.Build(nil)
	if err != nil {
		log.Fatalf("%v: %v", layoutFile, err)
	}

	if program != "" {
		err = script.Load(program, nil, g)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
	}

	g.Verbose = verbose

	err = g.Simulate(steps)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}

	for row := range g.Rows {
		for col := range g.Cols {
			cell, err := g.At(row, col)
			if err != nil {
				log.Fatalf("cell (%d, %d): %v", row, col, err)
			}
			fmt.Printf("%v\t", memoryString(cell))
		}
		fmt.Println()
	}
}

func memoryString(cell *grid.Cell) (text string) {
	if cell.Memory == nil {
		return "-"
	}

	return fmt.Sprintf("%v", cell.Memory)
}
