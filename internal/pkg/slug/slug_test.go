package slug

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2020 Toyota Corolla", "2020-toyota-corolla"},
		{"Mercedes-Benz  C-Class", "mercedes-benz-c-class"},
		{"  Land Rover ", "land-rover"},
		{"BMW 320i!", "bmw-320i"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMake(t *testing.T) {
	if got := Make(2020, "Toyota", "Corolla"); got != "2020-toyota-corolla" {
		t.Fatalf("Make = %q, want 2020-toyota-corolla", got)
	}
}

func TestCandidateSequence(t *testing.T) {
	base := "2020-toyota-corolla"
	want := []string{"2020-toyota-corolla", "2020-toyota-corolla-1", "2020-toyota-corolla-2"}
	for n, w := range want {
		if got := Candidate(base, n); got != w {
			t.Errorf("Candidate(%q, %d) = %q, want %q", base, n, got, w)
		}
	}
}
