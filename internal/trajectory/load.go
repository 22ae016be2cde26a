package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const columns = 4

// Load reads a whitespace-delimited table of (τ, x, y, z) rows from path.
func Load(path string) (*Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trajectory: %w", err)
	}
	defer f.Close()

	tr, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tr, nil
}

// Parse reads the table from r. Text from '#' to the end of a line is a
// comment; lines left blank are skipped and every other line must hold
// exactly four numbers.
func Parse(r io.Reader) (*Trajectory, error) {
	tr := &Trajectory{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != columns {
			return nil, &ParseError{Line: line, Text: text, Wrapped: ErrColumnCount}
		}

		var row [columns]float64
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: j + 1, Text: f, Wrapped: ErrMalformed}
			}
			row[j] = v
		}

		tr.Tau = append(tr.Tau, row[0])
		tr.X = append(tr.X, row[1])
		tr.Y = append(tr.Y, row[2])
		tr.Z = append(tr.Z, row[3])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if tr.Len() == 0 {
		return nil, ErrEmpty
	}
	return tr, nil
}
