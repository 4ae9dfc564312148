package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Buyer's Home Inspection", "buyers-home-inspection"},
		{"4-Point Inspection", "4-point-inspection"},
		{"Wind Mitigation & Roof", "wind-mitigation-and-roof"},
		{"  Palm Harbor / Trinity  ", "palm-harbor-trinity"},
		{"St. Petersburg", "st-petersburg"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
