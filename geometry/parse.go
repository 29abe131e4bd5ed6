package geometry

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParsePoint parses one comma-separated line such as "162,817,812".
// Surrounding whitespace on each component is ignored.
// If dim > 0 the line must have exactly dim components; dim <= 0 accepts any
// non-zero count.
func ParsePoint(line string, dim int) (Point, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Point{}, fmt.Errorf("%w: empty line", ErrInvalidInput)
	}
	fields := strings.Split(line, ",")
	if dim > 0 && len(fields) != dim {
		return Point{}, fmt.Errorf("%w: expected %d values, got %d", ErrInvalidInput, dim, len(fields))
	}
	coords := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w: component %d: %v", ErrInvalidInput, i, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, fmt.Errorf("%w: component %d is not finite", ErrInvalidInput, i)
		}
		coords[i] = v
	}

	return Point{coords: coords}, nil
}

// ReadPoints reads one point per line from r. Blank lines are skipped.
// With dim <= 0 the dimension is taken from the first point and enforced on
// the rest. Errors carry the 1-based line number.
func ReadPoints(r io.Reader, dim int) ([]Point, error) {
	var points []Point
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := ParsePoint(text, dim)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if dim <= 0 {
			dim = p.Dim()
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("geometry: read points: %w", err)
	}

	return points, nil
}

// ParsePoints is ReadPoints over an in-memory string.
func ParsePoints(input string, dim int) ([]Point, error) {
	return ReadPoints(strings.NewReader(input), dim)
}
