package life

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrBadRule is returned when a rulestring cannot be parsed.
var ErrBadRule = errors.New("malformed rule string")

// Rules holds the neighbor counts at which a dead cell is born and a live
// cell survives. A Rules value is immutable once constructed.
type Rules struct {
	birth   []int
	survive []int
}

// NewRules copies, sorts and deduplicates the provided counts. Counts outside
// 0..8 are kept but can never match.
func NewRules(birth, survive []int) Rules {
	return Rules{birth: normalize(birth), survive: normalize(survive)}
}

// Conway returns the classic B3/S23 rule set.
func Conway() Rules { return NewRules([]int{3}, []int{2, 3}) }

func normalize(counts []int) []int {
	out := slices.Clone(counts)
	slices.Sort(out)
	return slices.Compact(out)
}

// Birth returns a copy of the birth counts.
func (r Rules) Birth() []int { return slices.Clone(r.birth) }

// Survive returns a copy of the survival counts.
func (r Rules) Survive() []int { return slices.Clone(r.survive) }

// Born reports whether a dead cell with n live neighbors comes alive.
func (r Rules) Born(n int) bool {
	_, ok := slices.BinarySearch(r.birth, n)
	return ok
}

// Survives reports whether a live cell with n live neighbors stays alive.
func (r Rules) Survives(n int) bool {
	_, ok := slices.BinarySearch(r.survive, n)
	return ok
}

// Next decides the state of a cell in the following generation.
func (r Rules) Next(alive bool, n int) bool {
	if alive {
		return r.Survives(n)
	}
	return r.Born(n)
}

// Equal reports whether both rule sets use the same thresholds.
func (r Rules) Equal(o Rules) bool {
	return slices.Equal(r.birth, o.birth) && slices.Equal(r.survive, o.survive)
}

// String renders the rules in B/S notation, e.g. "B3/S23".
func (r Rules) String() string {
	return "B" + formatCounts(r.birth) + "/S" + formatCounts(r.survive)
}

func formatCounts(counts []int) string {
	var b strings.Builder
	sep := ""
	for _, c := range counts {
		if c < 0 || c > 9 {
			sep = ","
		}
	}
	for i, c := range counts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// ParseRuleString parses "B3/S23" (any case, either order) or the older
// survive/birth form "23/3".
func ParseRuleString(s string) (Rules, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rules{}, fmt.Errorf("%w: %q", ErrBadRule, s)
	}

	var birth, survive []int
	var haveB, haveS bool
	for i, part := range parts {
		var prefix byte
		if part != "" {
			prefix = part[0] | 0x20
		}
		var err error
		switch {
		case prefix == 'b' && !haveB:
			birth, err = parseDigits(part[1:])
			haveB = true
		case prefix == 's' && !haveS:
			survive, err = parseDigits(part[1:])
			haveS = true
		case prefix == 'b' || prefix == 's':
			err = errors.New("duplicate section")
		case i == 0:
			survive, err = parseDigits(part)
			haveS = true
		default:
			birth, err = parseDigits(part)
			haveB = true
		}
		if err != nil {
			return Rules{}, fmt.Errorf("%w: %q: %v", ErrBadRule, s, err)
		}
	}
	if !haveB || !haveS {
		return Rules{}, fmt.Errorf("%w: %q", ErrBadRule, s)
	}
	return NewRules(birth, survive), nil
}

func parseDigits(s string) ([]int, error) {
	if strings.Contains(s, ",") {
		var out []int
		for _, f := range strings.Split(s, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
	out := make([]int, 0, len(s))
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("unexpected %q", ch)
		}
		out = append(out, int(ch-'0'))
	}
	return out, nil
}
