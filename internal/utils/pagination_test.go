package utils

import (
	"math"
	"testing"
)

func TestOffset(t *testing.T) {
	cases := []struct{ page, limit, want int }{
		{1, 10, 0},
		{2, 10, 10},
		{2, 12, 12},
		{3, 5, 10},
		{0, 10, 0},
		{2, 0, 0},
		{math.MaxInt, 100, math.MaxInt},
		{math.MaxInt/100 + 1, 100, math.MaxInt / 100 * 100},
	}
	for _, tc := range cases {
		if got := Offset(tc.page, tc.limit); got != tc.want {
			t.Fatalf("Offset(%d, %d) = %d; want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}

func TestParseID(t *testing.T) {
	good := map[string]int64{"1": 1, "42": 42, "0012": 12}
	for in, want := range good {
		got, ok := ParseID(in)
		if !ok || got != want {
			t.Fatalf("ParseID(%q) = (%d, %v); want (%d, true)", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "abc", "0", "-3", " 1", "1.5", "99999999999999999999"} {
		if _, ok := ParseID(in); ok {
			t.Fatalf("ParseID(%q) ok = true; want false", in)
		}
	}
}
