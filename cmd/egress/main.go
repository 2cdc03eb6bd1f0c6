// Command egress is a terminal demo for the evacuation core: it loads a
// floor matrix, ignites and advances the hazard, plans a route, and prints
// the floor plan with the route, hazard heat, and instructions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
	"github.com/katalvlaran/egress/navigate"
	"github.com/katalvlaran/egress/planner"
	"github.com/katalvlaran/egress/signage"
)

// Icons for the floor-plan rendering.
const (
	iconWall  = "▒"
	iconFree  = "·"
	iconRoute = "*"
	iconStart = "@"
	iconExit  = "⌂"
	iconFire  = "▲"
)

var (
	styleWall    = color.Style{color.FgGray}
	styleFree    = color.Style{color.FgDefault}
	styleRoute   = color.Style{color.FgGreen, color.OpBold}
	styleStart   = color.Style{color.FgCyan, color.OpBold}
	styleExit    = color.Style{color.FgBlue, color.OpBold}
	styleFireHot = color.Style{color.FgRed, color.OpBold}
	styleFireWrm = color.Style{color.FgYellow}
)

// coordList collects repeated "r,c" flags.
type coordList []floorgrid.Coord

func (c *coordList) String() string {
	parts := make([]string, len(*c))
	for i, p := range *c {
		parts[i] = fmt.Sprintf("%d,%d", p.Row, p.Col)
	}
	return strings.Join(parts, " ")
}

func (c *coordList) Set(v string) error {
	parts := strings.SplitN(v, ",", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%q is not r,c", v)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("%q is not r,c", v)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("%q is not r,c", v)
	}
	*c = append(*c, floorgrid.Coord{Row: row, Col: col})
	return nil
}

func main() {
	var exits, fires, signs coordList
	matrix := flag.String("matrix", "", "floor matrix file (.csv or whitespace)")
	start := flag.String("start", "0,0", "occupant position as r,c")
	stageLabel := flag.String("stage", "initial", "fire stage: initial|growth|spread")
	seed := flag.Int64("seed", 0, "planner seed (0 = fixed default)")
	showPlan := flag.Bool("signage", false, "also print the signage plan summary")
	flag.Var(&exits, "exit", "exit position as r,c (repeatable)")
	flag.Var(&fires, "fire", "fire origin as r,c (repeatable)")
	flag.Var(&signs, "sign", "signboard position as r,c (repeatable)")
	flag.Parse()

	if *matrix == "" {
		log.Fatal("egress: -matrix is required")
	}

	grid, err := loadFloor(*matrix)
	if err != nil {
		log.Fatalf("egress: %v", err)
	}

	var startList coordList
	if err := startList.Set(*start); err != nil {
		log.Fatalf("egress: -start: %v", err)
	}
	occupant := startList[0]

	if len(exits) == 0 {
		for _, e := range grid.FindCells(floorgrid.CellExit) {
			exits = append(exits, e)
		}
	}
	if len(exits) == 0 {
		log.Fatal("egress: no exits given and none marked on the floor")
	}

	stage, err := hazard.ParseStage(*stageLabel)
	if err != nil {
		log.Fatalf("egress: %v", err)
	}

	for _, f := range fires {
		if !grid.InBounds(f) {
			log.Fatalf("egress: -fire %d,%d is outside the floor", f.Row, f.Col)
		}
	}
	for _, sb := range signs {
		if !grid.InBounds(sb) {
			log.Fatalf("egress: -sign %d,%d is outside the floor", sb.Row, sb.Col)
		}
	}

	field := hazard.NewField(grid)
	if len(fires) > 0 {
		field.Ignite(fires...)
		field.Advance(stage)
	}

	col, err := planner.New(grid, field, occupant, exits, planner.Seed(*seed))
	if err != nil {
		log.Fatalf("egress: %v", err)
	}
	res, err := col.Plan()
	if errors.Is(err, planner.ErrNoRoute) {
		fmt.Println(styleFireHot.Sprint("No safe route to any exit."))
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("egress: %v", err)
	}

	warnIfNarrow(grid.Width())
	render(grid, field, res.Route, occupant, exits)

	summary := navigate.Summarize(res.Route)
	fmt.Printf("\nRoute: %d cells, cost %.2f, %d turns\n",
		summary.Steps, res.Cost, len(summary.TurningPoints))
	for _, inst := range summary.Instructions {
		fmt.Printf("  %s\n", inst.Text)
	}

	if *showPlan {
		plan, err := signage.BuildPlan(grid, field, exits, signs, nil)
		if err != nil {
			log.Fatalf("egress: %v", err)
		}
		fmt.Printf("\nSignage: %d signboards (%d active, %d blocked), %d rooms (%d safe, %d blocked), %d corridor points\n",
			plan.Summary.TotalSignboards, plan.Summary.ActiveSignboards, plan.Summary.BlockedSignboards,
			plan.Summary.SafeRooms+plan.Summary.BlockedRooms, plan.Summary.SafeRooms, plan.Summary.BlockedRooms,
			plan.Summary.CorridorPoints)
		for name, a := range plan.Signboards {
			fmt.Printf("  %s at (%d,%d): %s %s\n", name, a.Position.Row, a.Position.Col, a.Signal, a.Turn)
		}
	}
}

func loadFloor(path string) (*floorgrid.FloorGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return floorgrid.LoadCSV(f)
	}

	return floorgrid.Load(f)
}

// warnIfNarrow compares the floor width against the terminal and warns
// when rows will wrap.
func warnIfNarrow(floorWidth int) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && cols < floorWidth {
		fmt.Fprintf(os.Stderr, "warning: floor is %d cells wide but the terminal has %d columns\n", floorWidth, cols)
	}
}

// render prints the floor plan row by row with the route overlaid.
func render(g *floorgrid.FloorGrid, f *hazard.Field, route []floorgrid.Coord, start floorgrid.Coord, exits []floorgrid.Coord) {
	onRoute := make(map[floorgrid.Coord]bool, len(route))
	for _, c := range route {
		onRoute[c] = true
	}
	isExit := make(map[floorgrid.Coord]bool, len(exits))
	for _, e := range exits {
		isExit[e] = true
	}

	var b strings.Builder
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			pos := floorgrid.Coord{Row: r, Col: c}
			b.WriteString(cellGlyph(g, f, pos, onRoute[pos], pos == start, isExit[pos]))
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

func cellGlyph(g *floorgrid.FloorGrid, f *hazard.Field, pos floorgrid.Coord, onRoute, isStart, isExit bool) string {
	switch {
	case isStart:
		return styleStart.Sprint(iconStart)
	case isExit:
		return styleExit.Sprint(iconExit)
	case onRoute:
		return styleRoute.Sprint(iconRoute)
	case g.At(pos) == floorgrid.CellWall:
		return styleWall.Sprint(iconWall)
	}

	switch v := f.IntensityAt(pos); {
	case v >= 0.3:
		return styleFireHot.Sprint(iconFire)
	case v > 0.05:
		return styleFireWrm.Sprint(iconFire)
	default:
		return styleFree.Sprint(iconFree)
	}
}
