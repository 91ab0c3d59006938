package service

import (
	"testing"
	"time"
)

func TestParseDatePtr(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain date", raw: "2023-04-12", want: "2023-04-12"},
		{name: "rfc3339", raw: "2023-04-12T10:30:00Z", want: "2023-04-12"},
		{name: "datetime without zone", raw: "2023-04-12T10:30:00", want: "2023-04-12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseDatePtr(tc.raw)
			if got == nil {
				t.Fatalf("parseDatePtr(%q) = nil", tc.raw)
			}
			if got.Format("2006-01-02") != tc.want {
				t.Fatalf("parseDatePtr(%q) = %v, want %s", tc.raw, got, tc.want)
			}
		})
	}

	for _, raw := range []string{"", "  ", "12/04/2023", "not a date"} {
		if got := parseDatePtr(raw); got != nil {
			t.Fatalf("parseDatePtr(%q) = %v, want nil", raw, got)
		}
	}
}

func TestIsoDate(t *testing.T) {
	if got := isoDate(nil); got != nil {
		t.Fatalf("isoDate(nil) = %v, want nil", got)
	}
	zero := time.Time{}
	if got := isoDate(&zero); got != nil {
		t.Fatalf("isoDate(zero) = %v, want nil", got)
	}
	d := time.Date(2023, 4, 12, 15, 0, 0, 0, time.UTC)
	got := isoDate(&d)
	if got == nil || *got != "2023-04-12" {
		t.Fatalf("isoDate = %v, want 2023-04-12", got)
	}
}
