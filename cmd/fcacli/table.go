package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fca"
	"github.com/katalvlaran/fca/incidence"
)

// readTable parses the stdin format documented in the root command's Long
// help text: attribute names, object names, then one comma-separated row of
// values per attribute.
func readTable(r io.Reader) (*incidence.Incidence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	attrs, err := nextCSVLine(scanner, "attribute names")
	if err != nil {
		return nil, err
	}
	objs, err := nextCSVLine(scanner, "object names")
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(attrs))
	for a := range attrs {
		line, err := nextCSVLine(scanner, fmt.Sprintf("row %d", a))
		if err != nil {
			return nil, err
		}
		if len(line) != len(objs) {
			return nil, fmt.Errorf("row %d has %d entries, expected %d", a, len(line), len(objs))
		}
		row := make([]float64, len(objs))
		for o, field := range line {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d entry %d: %w", a, o, err)
			}
			row[o] = v
		}
		rows[a] = row
	}

	return fca.NewIncidenceFromDense(attrs, objs, rows)
}

func nextCSVLine(scanner *bufio.Scanner, what string) ([]string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", what, err)
		}

		return nil, fmt.Errorf("unexpected end of input reading %s", what)
	}
	fields := strings.Split(scanner.Text(), ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields, nil
}
