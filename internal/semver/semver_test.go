package semver

import "testing"

func TestParseValid(t *testing.T) {
	cases := []struct {
		in   string
		want Version
	}{
		{"7.3.0", Version{Major: 7, Minor: 3, Patch: 0}},
		{"7.4.1", Version{Major: 7, Minor: 4, Patch: 1}},
		{"0.4", Version{Major: 0, Minor: 4}},
		{"2024.7.16", Version{Major: 2024, Minor: 7, Patch: 16}},
		{"7.5.0-preview.2", Version{Major: 7, Minor: 5, Patch: 0, Pre: []string{"preview", "2"}}},
		{"1.2.3+build.9", Version{Major: 1, Minor: 2, Patch: 3}},
		{" 7.4.1 ", Version{Major: 7, Minor: 4, Patch: 1}},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.in, err)
		}
		if got.Compare(tc.want) != 0 || got.Major != tc.want.Major || got.Minor != tc.want.Minor || got.Patch != tc.want.Patch {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"7",
		"abc",
		"7.x.1",
		"v7.4.1",
		"1.2.3.4",
		"1..3",
		"7.4.1-",
		"7.4.1-alpha..1",
	}

	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q): expected error, got none", in)
		}
	}
}

func TestCompareOrdering(t *testing.T) {
	ordered := []string{
		"0.9.9",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0",
		"1.0.1",
		"1.1.0",
		"2.0.0",
		"7.3.0",
		"7.4.1",
	}

	for i := 0; i < len(ordered); i++ {
		for j := 0; j < len(ordered); j++ {
			a := mustParse(t, ordered[i])
			b := mustParse(t, ordered[j])
			got := a.Compare(b)
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%s, %s) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	a := mustParse(t, "7.3.0")
	b := mustParse(t, "7.4.1")
	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Fatalf("expected antisymmetric comparison, got %d and %d", a.Compare(b), b.Compare(a))
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected Compare(a, a) == 0, got %d", a.Compare(a))
	}
}

func TestString(t *testing.T) {
	cases := map[string]string{
		"7.4.1":           "7.4.1",
		"7.4":             "7.4.0",
		"7.5.0-preview.2": "7.5.0-preview.2",
	}
	for in, want := range cases {
		if got := mustParse(t, in).String(); got != want {
			t.Errorf("String(%q) = %q, want %q", in, got, want)
		}
	}
}

func mustParse(t *testing.T, s string) Version {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}
