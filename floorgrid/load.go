package floorgrid

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load reads a floor matrix of whitespace-separated integers, one row per
// line. Blank lines are skipped. The decoded matrix is validated by New.
//
// Example row: "0 0 1 0 3".
func Load(r io.Reader) (*FloorGrid, error) {
	var values [][]int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", ErrParse, f)
			}
			row = append(row, v)
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return New(values)
}

// LoadCSV reads a floor matrix exported as CSV with a header row and a
// leading index column, both of which are discarded. Empty or non-numeric
// cells decode as CellFree, matching the tabular exports this loader is
// meant to ingest.
func LoadCSV(r io.Reader) (*FloorGrid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyGrid
	}

	// records[0] is the header; the first field of every remaining record
	// is the row index.
	values := make([][]int, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		row := make([]int, 0, len(rec)-1)
		for _, f := range rec[1:] {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				v = CellFree
			}
			row = append(row, v)
		}
		values = append(values, row)
	}

	return New(values)
}
