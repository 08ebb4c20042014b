package domain

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour != 9 || got.Minute != 5 {
		t.Fatalf("got %+v, want {9 5}", got)
	}

	if _, err := ParseTimeOfDay("00:00"); err != nil {
		t.Fatalf("midnight should parse: %v", err)
	}
	if _, err := ParseTimeOfDay("23:59"); err != nil {
		t.Fatalf("23:59 should parse: %v", err)
	}
}

func TestParseTimeOfDayRejectsMalformed(t *testing.T) {
	bad := []string{"24:00", "9:5", "09:60", "0905", "09-05", "9:05", "09:5", "", "ab:cd", " 9:05", "09:05 "}
	for _, s := range bad {
		if _, err := ParseTimeOfDay(s); err == nil {
			t.Fatalf("ParseTimeOfDay(%q) should fail", s)
		}
	}
}

func TestTimeOfDayMinutesAndBefore(t *testing.T) {
	a := TimeOfDay{Hour: 8, Minute: 30}
	b := TimeOfDay{Hour: 9, Minute: 0}

	if a.Minutes() != 510 {
		t.Fatalf("minutes = %d, want 510", a.Minutes())
	}
	if !a.Before(b) {
		t.Fatal("08:30 should be before 09:00")
	}
	if b.Before(a) {
		t.Fatal("09:00 should not be before 08:30")
	}
	if a.Before(a) {
		t.Fatal("a time is not before itself")
	}
}

func TestTimeOfDayString(t *testing.T) {
	got := TimeOfDay{Hour: 7, Minute: 3}.String()
	if got != "07:03" {
		t.Fatalf("got %q, want 07:03", got)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	day := time.Date(2026, 3, 14, 22, 45, 12, 0, time.UTC)
	got := TimeOfDay{Hour: 8, Minute: 15}.At(day)
	want := time.Date(2026, 3, 14, 8, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
