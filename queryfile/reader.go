package queryfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/francealip/competitive-programming/sweep"
)

// lineScanner yields non-empty trimmed lines and tracks the line number
// for error reporting.
type lineScanner struct {
	s    *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{s: bufio.NewScanner(r)}
}

func (ls *lineScanner) next() (string, error) {
	for ls.s.Scan() {
		ls.line++

		text := strings.TrimSpace(ls.s.Text())
		if text == "" {
			continue
		}
		return text, nil
	}
	if err := ls.s.Err(); err != nil {
		return "", err
	}
	return "", ErrShortInput
}

func parseHeader(ls *lineScanner) (int, int, error) {
	text, err := ls.next()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: missing header", ErrShortInput)
	}

	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: line %d: %q", ErrBadHeader, ls.line, text)
	}

	n, errN := strconv.Atoi(fields[0])
	m, errM := strconv.Atoi(fields[1])
	if errN != nil || errM != nil || n < 1 || m < 0 {
		return 0, 0, fmt.Errorf("%w: line %d: %q", ErrBadHeader, ls.line, text)
	}

	return n, m, nil
}

func parseUint32(field string) (uint32, error) {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ReadMaxCase parses a max query fixture from input, and its expected
// results from output when output is non-nil.
func ReadMaxCase(input, output io.Reader) (*MaxCase, error) {
	ls := newLineScanner(input)

	n, m, err := parseHeader(ls)
	if err != nil {
		return nil, err
	}

	text, err := ls.next()
	if err != nil {
		return nil, fmt.Errorf("%w: missing array line", ErrShortInput)
	}

	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, fmt.Errorf("%w: line %d: got %d values, header says %d",
			ErrBadArray, ls.line, len(fields), n)
	}

	values := make([]uint32, n)
	for i, f := range fields {
		if values[i], err = parseUint32(f); err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadArray, ls.line, f)
		}
	}

	c := &MaxCase{Values: values}

	maxQueries := 0
	for i := 0; i < m; i++ {
		_ = i
		op, err := readOp(ls)
		if err != nil {
			return nil, err
		}
		if op.Kind == KindMax {
			maxQueries++
		}
		c.Ops = append(c.Ops, op)
	}

	if output == nil {
		return c, nil
	}

	c.Expected, err = readExpectedValues(output, maxQueries)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func readOp(ls *lineScanner) (Op, error) {
	text, err := ls.next()
	if err != nil {
		return Op{}, fmt.Errorf("%w: missing query line", ErrShortInput)
	}

	fields := strings.Fields(text)
	bad := func() (Op, error) {
		return Op{}, fmt.Errorf("%w: line %d: %q", ErrBadQuery, ls.line, text)
	}

	if len(fields) < 3 {
		return bad()
	}

	start, errS := strconv.Atoi(fields[1])
	end, errE := strconv.Atoi(fields[2])
	if errS != nil || errE != nil {
		return bad()
	}

	switch fields[0] {
	case "0":
		if len(fields) != 4 {
			return bad()
		}
		value, err := parseUint32(fields[3])
		if err != nil {
			return bad()
		}
		return Op{Kind: KindClamp, Start: start, End: end, Value: value}, nil
	case "1":
		if len(fields) != 3 {
			return bad()
		}
		return Op{Kind: KindMax, Start: start, End: end}, nil
	default:
		return bad()
	}
}

func readExpectedValues(output io.Reader, count int) ([]uint32, error) {
	ls := newLineScanner(output)

	expected := make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		_ = i
		text, err := ls.next()
		if err != nil {
			return nil, fmt.Errorf("%w: expected %d results", ErrShortInput, count)
		}

		v, err := parseUint32(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadExpected, ls.line, text)
		}
		expected = append(expected, v)
	}

	return expected, nil
}

// ReadExistsCase parses an existence fixture from input, and its expected
// results from output when output is non-nil.
func ReadExistsCase(input, output io.Reader) (*ExistsCase, error) {
	ls := newLineScanner(input)

	n, m, err := parseHeader(ls)
	if err != nil {
		return nil, err
	}

	c := &ExistsCase{}

	for i := 0; i < n; i++ {
		_ = i
		text, err := ls.next()
		if err != nil {
			return nil, fmt.Errorf("%w: missing interval line", ErrShortInput)
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadInterval, ls.line, text)
		}

		start, errS := parseUint32(fields[0])
		end, errE := parseUint32(fields[1])
		if errS != nil || errE != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadInterval, ls.line, text)
		}

		c.Intervals = append(c.Intervals, sweep.Interval{Start: start, End: end})
	}

	for i := 0; i < m; i++ {
		_ = i
		text, err := ls.next()
		if err != nil {
			return nil, fmt.Errorf("%w: missing query line", ErrShortInput)
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadQuery, ls.line, text)
		}

		start, errS := strconv.Atoi(fields[0])
		end, errE := strconv.Atoi(fields[1])
		k, errK := parseUint32(fields[2])
		if errS != nil || errE != nil || errK != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadQuery, ls.line, text)
		}

		c.Queries = append(c.Queries, ExistsQuery{Start: start, End: end, K: k})
	}

	if output == nil {
		return c, nil
	}

	c.Expected, err = readExpectedBools(output, m)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func readExpectedBools(output io.Reader, count int) ([]bool, error) {
	ls := newLineScanner(output)

	expected := make([]bool, 0, count)
	for i := 0; i < count; i++ {
		_ = i
		text, err := ls.next()
		if err != nil {
			return nil, fmt.Errorf("%w: expected %d results", ErrShortInput, count)
		}

		switch text {
		case "0":
			expected = append(expected, false)
		case "1":
			expected = append(expected, true)
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadExpected, ls.line, text)
		}
	}

	return expected, nil
}

// LoadMaxCase reads a max query fixture from inputPath, with expected
// results from outputPath unless it is empty.
func LoadMaxCase(inputPath, outputPath string) (*MaxCase, error) {
	var c *MaxCase

	err := withFiles(inputPath, outputPath, func(input, output io.Reader) error {
		var err error
		c, err = ReadMaxCase(input, output)
		return err
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// LoadExistsCase reads an existence fixture from inputPath, with expected
// results from outputPath unless it is empty.
func LoadExistsCase(inputPath, outputPath string) (*ExistsCase, error) {
	var c *ExistsCase

	err := withFiles(inputPath, outputPath, func(input, output io.Reader) error {
		var err error
		c, err = ReadExistsCase(input, output)
		return err
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

func withFiles(inputPath, outputPath string, read func(input, output io.Reader) error) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	if outputPath == "" {
		return read(input, nil)
	}

	output, err := os.Open(outputPath)
	if err != nil {
		return err
	}
	defer output.Close()

	return read(input, output)
}
