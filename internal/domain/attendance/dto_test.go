package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/onsite-hr/attendance-backend-go/internal/pkg/validator"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func TestClockInRequest_Validate(t *testing.T) {
	cases := []struct {
		name      string
		req       ClockInRequest
		wantField string // empty means valid
	}{
		{"valid", ClockInRequest{Latitude: f64(12.9716), Longitude: f64(77.5946)}, ""},
		{"missing latitude", ClockInRequest{Longitude: f64(77.5946)}, "latitude"},
		{"missing longitude", ClockInRequest{Latitude: f64(12.9716)}, "longitude"},
		{"latitude too high", ClockInRequest{Latitude: f64(90.1), Longitude: f64(0)}, "latitude"},
		{"latitude too low", ClockInRequest{Latitude: f64(-90.1), Longitude: f64(0)}, "latitude"},
		{"longitude too high", ClockInRequest{Latitude: f64(0), Longitude: f64(180.1)}, "longitude"},
		{"longitude too low", ClockInRequest{Latitude: f64(0), Longitude: f64(-180.1)}, "longitude"},
	}

	for _, c := range cases {
		err := c.req.Validate()
		if c.wantField == "" {
			if err != nil {
				t.Errorf("%s: Validate() = %v, want nil", c.name, err)
			}
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Errorf("%s: Validate() = %v, want ValidationErrors", c.name, err)
			continue
		}
		if _, ok := verrs.ToMap()[c.wantField]; !ok {
			t.Errorf("%s: missing error for field %q, got %v", c.name, c.wantField, verrs.ToMap())
		}
	}
}

func TestManualEntryRequest_Validate(t *testing.T) {
	valid := ManualEntryRequest{
		EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Date:       "2026-08-01",
		Status:     "Present",
		ClockIn:    str("09:00"),
		ClockOut:   str("17:30"),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request: Validate() = %v, want nil", err)
	}

	cases := []struct {
		name   string
		mutate func(*ManualEntryRequest)
		field  string
	}{
		{"missing employee_id", func(r *ManualEntryRequest) { r.EmployeeID = "" }, "employee_id"},
		{"missing date", func(r *ManualEntryRequest) { r.Date = "" }, "date"},
		{"bad date", func(r *ManualEntryRequest) { r.Date = "01-08-2026" }, "date"},
		{"missing status", func(r *ManualEntryRequest) { r.Status = "" }, "status"},
		{"unknown status", func(r *ManualEntryRequest) { r.Status = "Sick" }, "status"},
		{"bad clock_in", func(r *ManualEntryRequest) { r.ClockIn = str("9am") }, "clock_in"},
		{"bad clock_out", func(r *ManualEntryRequest) { r.ClockOut = str("25:61") }, "clock_out"},
	}

	for _, c := range cases {
		req := valid
		c.mutate(&req)
		err := req.Validate()
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Errorf("%s: Validate() = %v, want ValidationErrors", c.name, err)
			continue
		}
		if _, ok := verrs.ToMap()[c.field]; !ok {
			t.Errorf("%s: missing error for field %q, got %v", c.name, c.field, verrs.ToMap())
		}
	}
}

func TestResolveClockTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, loc)

	got, ok := ResolveClockTime("09:30", date, loc)
	if !ok {
		t.Fatal("ResolveClockTime(09:30) failed")
	}
	want := time.Date(2026, 8, 1, 9, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ResolveClockTime(09:30) = %v, want %v", got, want)
	}

	got, ok = ResolveClockTime("2026-08-01 17:45:00", date, loc)
	if !ok {
		t.Fatal("ResolveClockTime(full datetime) failed")
	}
	want = time.Date(2026, 8, 1, 17, 45, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ResolveClockTime(full datetime) = %v, want %v", got, want)
	}

	if _, ok := ResolveClockTime("later", date, loc); ok {
		t.Error("ResolveClockTime(garbage) = ok, want failure")
	}
}
