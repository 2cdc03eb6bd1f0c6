package signage_test

import (
	"fmt"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
	"github.com/katalvlaran/egress/signage"
)

// ExampleSystem_Assignments directs two signboards toward a hall exit.
func ExampleSystem_Assignments() {
	g, _ := floorgrid.New([][]int{
		{0, 0, 0, 0, 0},
	})
	f := hazard.NewField(g)
	exit := floorgrid.Coord{Row: 0, Col: 4}

	sys, _ := signage.NewSystem(g, f, []floorgrid.Coord{exit})
	got := sys.Assignments([]floorgrid.Coord{{Row: 0, Col: 0}, exit})

	for _, key := range []string{"SIGN_1", "SIGN_2"} {
		a := got[key]
		fmt.Printf("%s: %s %.2fm\n", key, a.Signal, a.DistanceToExit)
	}
	// Output:
	// SIGN_1: → 4.00m
	// SIGN_2: EXIT 0.00m
}

// ExampleDetectRooms finds the enclosed spaces of a small floor.
func ExampleDetectRooms() {
	g, _ := floorgrid.New([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})

	for _, room := range signage.DetectRooms(g, 4) {
		fmt.Printf("%s: %d cells\n", room.Name, len(room.Cells))
	}
	// Output:
	// ROOM_001: 6 cells
}
