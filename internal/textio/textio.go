// Package textio reads the line-oriented simulation input: rule counts, the
// position and size of the initial block, the framed block itself, and the
// generation/window to report.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"infinite-life/pkg/core"
	"infinite-life/pkg/sims/life"
)

// ErrMalformed is matched by every error the reader produces.
var ErrMalformed = errors.New("malformed input")

// ParseError reports the input line and field that failed to parse.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
}

// Unwrap exposes both ErrMalformed and the underlying cause.
func (e *ParseError) Unwrap() []error { return []error{ErrMalformed, e.Err} }

// Input is everything a run needs.
type Input struct {
	Rules  life.Rules
	Offset core.Point
	Width  int
	Height int
	// Cells holds the live cells of the block in absolute coordinates.
	Cells  []core.Point
	Wanted life.WantedResult
}

// Extent is the area covered by the input block.
func (in Input) Extent() core.Rect { return core.NewRect(in.Offset, in.Width, in.Height) }

// Grid builds the generation-0 grid using the named representation.
func (in Input) Grid(kind string) (life.Grid, error) {
	g, err := life.NewGrid(kind, in.Extent())
	if err != nil {
		return nil, err
	}
	for _, p := range in.Cells {
		g.SetState(p, true)
	}
	return g, nil
}

// Reader consumes input one logical value per line.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{sc: sc}
}

// Parse reads a complete Input from r.
func Parse(r io.Reader) (Input, error) {
	return NewReader(r).Input()
}

// Input reads every section in order.
func (r *Reader) Input() (Input, error) {
	var in Input
	survive, err := r.Counts("surviving neighbor counts")
	if err != nil {
		return in, err
	}
	birth, err := r.Counts("birth neighbor counts")
	if err != nil {
		return in, err
	}
	in.Rules = life.NewRules(birth, survive)

	if in.Offset, err = r.Point("grid offset"); err != nil {
		return in, err
	}
	if in.Width, in.Height, err = r.Extent("grid size"); err != nil {
		return in, err
	}
	if in.Cells, err = r.Frame(in.Offset, in.Width, in.Height); err != nil {
		return in, err
	}

	gen, err := r.Int("generation")
	if err != nil {
		return in, err
	}
	if gen < 0 {
		return in, r.fail("generation", fmt.Errorf("must not be negative, got %d", gen))
	}
	a, err := r.Point("output corner")
	if err != nil {
		return in, err
	}
	b, err := r.Point("output corner")
	if err != nil {
		return in, err
	}
	in.Wanted = life.WantedResult{Generation: gen, Output: core.RectFrom2Points(a, b)}
	return in, nil
}

func (r *Reader) fail(field string, err error) error {
	return &ParseError{Line: r.line, Field: field, Err: err}
}

func (r *Reader) raw(field string) (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", r.fail(field, err)
		}
		return "", r.fail(field, io.ErrUnexpectedEOF)
	}
	r.line++
	return strings.TrimSuffix(r.sc.Text(), "\r"), nil
}

func (r *Reader) value(field string) (string, error) {
	s, err := r.raw(field)
	return strings.TrimSpace(s), err
}

// splitList splits s on commas and trims each element. Empty elements are
// reported by the caller.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

var errEmptyValue = errors.New("empty value")

// Counts reads a comma-separated list of non-negative integers. An empty line
// is an empty list.
func (r *Reader) Counts(field string) ([]int, error) {
	s, err := r.value(field)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return []int{}, nil
	}
	fields := splitList(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			return nil, r.fail(field, errEmptyValue)
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, r.fail(field, err)
		}
		if n < 0 {
			return nil, r.fail(field, fmt.Errorf("negative count %d", n))
		}
		out = append(out, n)
	}
	return out, nil
}

// Int reads a single integer.
func (r *Reader) Int(field string) (int, error) {
	s, err := r.value(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, r.fail(field, err)
	}
	return n, nil
}

// Point reads "x,y" (a space works as the separator too).
func (r *Reader) Point(field string) (core.Point, error) {
	s, err := r.value(field)
	if err != nil {
		return core.Point{}, err
	}
	var fields []string
	if strings.Contains(s, ",") {
		fields = splitList(s)
	} else {
		fields = strings.Fields(s)
	}
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return core.Point{}, r.fail(field, fmt.Errorf("want x,y, got %q", s))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Point{}, r.fail(field, err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Point{}, r.fail(field, err)
	}
	return core.Pt(x, y), nil
}

// Extent reads "WxH" with both dimensions positive.
func (r *Reader) Extent(field string) (int, int, error) {
	s, err := r.value(field)
	if err != nil {
		return 0, 0, err
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, r.fail(field, fmt.Errorf("want WxH, got %q", s))
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, r.fail(field, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, r.fail(field, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, r.fail(field, fmt.Errorf("dimensions must be positive, got %dx%d", w, h))
	}
	return w, h, nil
}

// Frame reads a bordered w×h block and returns its live cells, with the
// block's top-left cell placed at origin.
func (r *Reader) Frame(origin core.Point, w, h int) ([]core.Point, error) {
	if err := r.border(w); err != nil {
		return nil, err
	}
	var cells []core.Point
	for y := 0; y < h; y++ {
		s, err := r.raw("grid row")
		if err != nil {
			return nil, err
		}
		row := []rune(strings.TrimRight(s, " \t"))
		if len(row) != w+2 || row[0] != '|' || row[len(row)-1] != '|' {
			return nil, r.fail("grid row", fmt.Errorf("want |%d cells|, got %q", w, s))
		}
		for x, c := range row[1 : w+1] {
			if c == life.DefaultGlyphs.Alive {
				cells = append(cells, origin.Add(core.Pt(x, y)))
			}
		}
	}
	if err := r.border(w); err != nil {
		return nil, err
	}
	return cells, nil
}

func (r *Reader) border(w int) error {
	s, err := r.raw("grid border")
	if err != nil {
		return err
	}
	if strings.TrimRight(s, " \t") != "+"+strings.Repeat("-", w)+"+" {
		return r.fail("grid border", fmt.Errorf("want +%d dashes+, got %q", w, s))
	}
	return nil
}
