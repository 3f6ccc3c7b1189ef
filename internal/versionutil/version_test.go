package versionutil

import "testing"

func TestCompare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"4.2.5", "4.2.5", 0},
		{"4.2", "4.2.0", 0},
		{"4.2.5", "4.3.7", -1},
		{"4.10.0", "4.9.9", 1},
		{"3.4.7", "4.0.0", -1},
	}

	for _, tc := range cases {
		got, err := Compare(tc.a, tc.b)
		if err != nil {
			t.Fatalf("Compare(%q, %q): %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCompare_NonNumeric(t *testing.T) {
	t.Parallel()

	if _, err := Compare("4.2.5", "nightly"); err == nil {
		t.Fatalf("expected error comparing non-numeric reference")
	}
	if _, err := Compare("", "4.2.5"); err == nil {
		t.Fatalf("expected error comparing empty reference")
	}
}

func TestSortNewestFirst(t *testing.T) {
	t.Parallel()

	refs := []string{"3.4.7", "4.3.7", "4.2.5", "4.10.2"}
	SortNewestFirst(refs)

	expected := []string{"4.10.2", "4.3.7", "4.2.5", "3.4.7"}
	for i := range expected {
		if refs[i] != expected[i] {
			t.Fatalf("expected %s at index %d, got %s", expected[i], i, refs[i])
		}
	}
}

func TestSortNewestFirst_NonNumericFallsBackToLexicographic(t *testing.T) {
	t.Parallel()

	refs := []string{"nightly-a", "nightly-b"}
	SortNewestFirst(refs)

	if refs[0] != "nightly-b" || refs[1] != "nightly-a" {
		t.Fatalf("expected lexicographic descending order, got %v", refs)
	}
}
