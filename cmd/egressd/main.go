// Command egressd serves the evacuation-routing and signage core over a
// JSON HTTP API. Floor matrices are loaded once at startup; every request
// builds its own grid/field/planner, so the server needs no locking.
//
// Endpoints:
//
//	GET /evacuation?start_row=&start_col=&floor=&fire_floor=&fire=r,c&exit=r,c&stage=&seed=
//	GET /signboard-plan?floor=&fire_floor=&fire=r,c&exit=r,c&sign=r,c&stage=
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
	"github.com/katalvlaran/egress/navigate"
	"github.com/katalvlaran/egress/planner"
	"github.com/katalvlaran/egress/signage"
)

// server holds the immutable floor matrices loaded at startup, indexed by
// floor number in flag order.
type server struct {
	floors []*floorgrid.FloorGrid
}

// matrixList collects repeated -matrix flags.
type matrixList []string

func (m *matrixList) String() string { return strings.Join(*m, ",") }

func (m *matrixList) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	var matrices matrixList
	addr := flag.String("addr", ":8080", "listen address")
	flag.Var(&matrices, "matrix", "floor matrix file (repeatable; floor N = Nth flag)")
	flag.Parse()

	if len(matrices) == 0 {
		log.Fatal("egressd: at least one -matrix file is required")
	}

	srv := &server{}
	for i, path := range matrices {
		g, err := loadFloor(path)
		if err != nil {
			log.Fatalf("egressd: floor %d (%s): %v", i, path, err)
		}
		log.Printf("loaded floor %d from %s (%dx%d)", i, path, g.Height(), g.Width())
		srv.floors = append(srv.floors, g)
	}

	http.HandleFunc("/evacuation", srv.handleEvacuation)
	http.HandleFunc("/signboard-plan", srv.handleSignboardPlan)

	log.Printf("egressd listening on %s (%d floors)", *addr, len(srv.floors))
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// loadFloor picks the decoder by file extension: .csv uses the indexed CSV
// layout, anything else the whitespace layout.
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

// evacuationResponse is the route-mode wire contract.
type evacuationResponse struct {
	Route          []floorgrid.Coord       `json:"path"`
	Cost           float64                 `json:"length"`
	TurningPoints  []navigate.TurningPoint `json:"turning_points"`
	Instructions   []navigate.Instruction  `json:"navigation_instructions"`
	Summary        navigate.RouteSummary   `json:"summary"`
	FireConsidered bool                    `json:"fire_considered"`
}

func (s *server) handleEvacuation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	req, err := s.parseScenario(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	startRow, err := strconv.Atoi(q.Get("start_row"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad start_row: %w", err))
		return
	}
	startCol, err := strconv.Atoi(q.Get("start_col"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad start_col: %w", err))
		return
	}
	start := floorgrid.Coord{Row: startRow, Col: startCol}

	var seed int64
	if v := q.Get("seed"); v != "" {
		seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("bad seed: %w", err))
			return
		}
	}

	col, err := planner.New(req.grid, req.field, start, req.exits, planner.Seed(seed))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := col.Plan()
	if errors.Is(err, planner.ErrNoRoute) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	summary := navigate.Summarize(res.Route)
	writeJSON(w, evacuationResponse{
		Route:          res.Route,
		Cost:           res.Cost,
		TurningPoints:  summary.TurningPoints,
		Instructions:   summary.Instructions,
		Summary:        summary,
		FireConsidered: req.fireConsidered,
	})
}

func (s *server) handleSignboardPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	req, err := s.parseScenario(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	signboards, err := parseCoords(q["sign"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad sign: %w", err))
		return
	}
	for _, sb := range signboards {
		if !req.grid.InBounds(sb) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("sign %d,%d outside the floor", sb.Row, sb.Col))
			return
		}
	}

	plan, err := signage.BuildPlan(req.grid, req.field, req.exits, signboards, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, plan)
}

// scenario is the shared request state both endpoints build: the floor
// grid plus a hazard field already ignited and advanced when the fire is
// on the requested floor.
type scenario struct {
	grid           *floorgrid.FloorGrid
	field          *hazard.Field
	exits          []floorgrid.Coord
	fireConsidered bool
}

func (s *server) parseScenario(q map[string][]string) (*scenario, error) {
	get := func(key string) string {
		if v, ok := q[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	floor, err := strconv.Atoi(get("floor"))
	if err != nil || floor < 0 || floor >= len(s.floors) {
		return nil, fmt.Errorf("bad floor %q (have %d floors)", get("floor"), len(s.floors))
	}
	fireFloor := floor
	if v := get("fire_floor"); v != "" {
		fireFloor, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("bad fire_floor: %w", err)
		}
	}

	stageLabel := get("stage")
	if stageLabel == "" {
		stageLabel = "initial"
	}
	stage, err := hazard.ParseStage(stageLabel)
	if err != nil {
		return nil, err
	}

	exits, err := parseCoords(q["exit"])
	if err != nil {
		return nil, fmt.Errorf("bad exit: %w", err)
	}
	fires, err := parseCoords(q["fire"])
	if err != nil {
		return nil, fmt.Errorf("bad fire: %w", err)
	}

	grid := s.floors[floor]
	// The core assumes in-bounds coordinates; reject bad ones here so the
	// caller gets a 400 instead of a silently shifted scenario. Fires are
	// only checked when they land on this floor — coordinates on another
	// floor belong to that floor's grid.
	for _, e := range exits {
		if !grid.InBounds(e) {
			return nil, fmt.Errorf("exit %d,%d outside floor %d", e.Row, e.Col, floor)
		}
	}
	considered := floor == fireFloor && len(fires) > 0
	if considered {
		for _, f := range fires {
			if !grid.InBounds(f) {
				return nil, fmt.Errorf("fire %d,%d outside floor %d", f.Row, f.Col, floor)
			}
		}
	}

	field := hazard.NewField(grid)
	if considered {
		field.Ignite(fires...)
		field.Advance(stage)
	}

	return &scenario{grid: grid, field: field, exits: exits, fireConsidered: considered}, nil
}

// parseCoords decodes repeated "r,c" query values.
func parseCoords(values []string) ([]floorgrid.Coord, error) {
	coords := make([]floorgrid.Coord, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%q is not r,c", v)
		}
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("%q is not r,c", v)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("%q is not r,c", v)
		}
		coords = append(coords, floorgrid.Coord{Row: row, Col: col})
	}

	return coords, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("egressd: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
