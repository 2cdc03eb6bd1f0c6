package planner_test

import (
	"fmt"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
	"github.com/katalvlaran/egress/planner"
)

// ExampleColony_Plan routes an occupant down a walled corridor. The corridor
// admits exactly one optimal route, so the output is stable across seeds.
func ExampleColony_Plan() {
	g, _ := floorgrid.New([][]int{
		{1, 1, 0, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 0, 1, 1},
	})
	f := hazard.NewField(g)

	c, _ := planner.New(g, f,
		floorgrid.Coord{Row: 0, Col: 2},
		[]floorgrid.Coord{{Row: 4, Col: 2}})
	res, _ := c.Plan()

	fmt.Printf("cost: %.1f\n", res.Cost)
	for _, cell := range res.Route {
		fmt.Printf("(%d,%d) ", cell.Row, cell.Col)
	}
	fmt.Println()
	// Output:
	// cost: 4.0
	// (0,2) (1,2) (2,2) (3,2) (4,2)
}

// ExampleSearchFrom shows the deterministic fallback on its own.
func ExampleSearchFrom() {
	g, _ := floorgrid.New([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	f := hazard.NewField(g)

	res, _ := planner.SearchFrom(g, f,
		floorgrid.Coord{Row: 0, Col: 0},
		[]floorgrid.Coord{{Row: 2, Col: 2}})

	fmt.Printf("steps: %d, cost: %.3f\n", len(res.Route)-1, res.Cost)
	// Output:
	// steps: 2, cost: 2.828
}
