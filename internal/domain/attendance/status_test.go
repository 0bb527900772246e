package attendance

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		hours float64
		want  Status
	}{
		{0, StatusHalfDay},
		{2.5, StatusHalfDay},
		{3.99, StatusHalfDay},
		{4.00, StatusLate},
		{5.5, StatusLate},
		{7.99, StatusLate},
		{8.00, StatusPresent},
		{8.5, StatusPresent},
		{12, StatusPresent},
	}
	for _, c := range cases {
		if got := Classify(c.hours); got != c.want {
			t.Errorf("Classify(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestRoundHours(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{5.5, 5.5},
		{8.505, 8.51},
		{7.994999, 7.99},
		{0, 0},
	}
	for _, c := range cases {
		if got := RoundHours(c.in); got != c.want {
			t.Errorf("RoundHours(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", s, err)
		}
	}
	for _, s := range []string{"present", "LATE", "Sick", ""} {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) = nil error, want error", s)
		}
	}
}
