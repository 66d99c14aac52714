package life

import (
	"errors"
	"slices"
	"testing"
)

func TestNewRulesNormalizes(t *testing.T) {
	birth := []int{6, 3, 3}
	r := NewRules(birth, []int{3, 2})
	birth[0] = 0
	if !slices.Equal(r.Birth(), []int{3, 6}) || !slices.Equal(r.Survive(), []int{2, 3}) {
		t.Fatalf("unexpected rules %v / %v", r.Birth(), r.Survive())
	}
	r.Birth()[0] = 8
	if r.Born(8) {
		t.Fatal("Birth() leaked internal storage")
	}
}

func TestRulesNext(t *testing.T) {
	r := Conway()
	cases := []struct {
		alive bool
		n     int
		want  bool
	}{
		{false, 3, true},
		{false, 2, false},
		{true, 2, true},
		{true, 3, true},
		{true, 1, false},
		{true, 4, false},
		{false, 9, false},
	}
	for _, c := range cases {
		if got := r.Next(c.alive, c.n); got != c.want {
			t.Errorf("Next(%v, %d) = %v, want %v", c.alive, c.n, got, c.want)
		}
	}
}

func TestRuleStringRoundTrip(t *testing.T) {
	for _, s := range []string{"B3/S23", "B36/S23", "B/S", "B0/S012345678", "B1,12/S3"} {
		r, err := ParseRuleString(s)
		if err != nil {
			t.Fatalf("ParseRuleString(%q): %v", s, err)
		}
		if r.String() != s {
			t.Fatalf("round trip %q -> %q", s, r.String())
		}
	}
}

func TestParseRuleStringForms(t *testing.T) {
	for _, s := range []string{"B3/S23", "b3/s23", "S23/B3", "23/3", " B3/S23 "} {
		r, err := ParseRuleString(s)
		if err != nil {
			t.Fatalf("ParseRuleString(%q): %v", s, err)
		}
		if !r.Equal(Conway()) {
			t.Fatalf("ParseRuleString(%q) = %v", s, r)
		}
	}
	for _, s := range []string{"", "B3", "B3/S2x", "B3/B3", "3/S23", "B3/S23/X"} {
		if _, err := ParseRuleString(s); !errors.Is(err, ErrBadRule) {
			t.Errorf("ParseRuleString(%q) error = %v, want ErrBadRule", s, err)
		}
	}
}
