package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{" x ", false},
	}
	for _, tc := range cases {
		if got := IsEmpty(tc.in); got != tc.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"9:00", false},
		{"09-00", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidClockTime(tc.in); got != tc.want {
			t.Errorf("IsValidClockTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2026-06-01") {
		t.Error("expected 2026-06-01 to be valid")
	}
	for _, in := range []string{"2026-13-01", "01/06/2026", "2026-06", ""} {
		if IsValidDate(in) {
			t.Errorf("expected %q to be invalid", in)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if !IsValidMonth("2026-06") {
		t.Error("expected 2026-06 to be valid")
	}
	for _, in := range []string{"2026-13", "2026-06-01", "june", ""} {
		if IsValidMonth(in) {
			t.Errorf("expected %q to be invalid", in)
		}
	}
}

func TestIsValidBirthDate(t *testing.T) {
	if !IsValidBirthDate("900101") {
		t.Error("expected 900101 to be valid")
	}
	for _, in := range []string{"1990-01-01", "90010", "9001011", "aabbcc"} {
		if IsValidBirthDate(in) {
			t.Errorf("expected %q to be invalid", in)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "required"},
		{Field: "date", Message: "must be YYYY-MM-DD"},
	}
	want := "name: required; date: must be YYYY-MM-DD"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "required"},
	}
	m := errs.ToMap()
	if m["name"] != "required" {
		t.Errorf("ToMap()[name] = %q, want %q", m["name"], "required")
	}
}
