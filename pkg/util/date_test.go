package util

import (
	"testing"
	"time"
)

func TestMidnightUTC(t *testing.T) {
	got, err := MidnightUTC("2024-06-21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1718928000 {
		t.Fatalf("unexpected timestamp %d", got)
	}
}

func TestMidnightUTCRejectsOtherFormats(t *testing.T) {
	for _, s := range []string{"2024/06/21", "21-06-2024", "2024-6-21", "2024-06-21T00:00:00Z", "", "2024-02-30", " 2024-06-21"} {
		if _, err := MidnightUTC(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(1718928000); got != "2024-06-21" {
		t.Fatalf("unexpected date %s", got)
	}
	// late in the UTC day stays on the same date
	if got := FormatDate(1718928000 + 23*3600 + 59*60); got != "2024-06-21" {
		t.Fatalf("unexpected date %s", got)
	}
}

func TestFormatDay(t *testing.T) {
	d := time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)
	if got := FormatDay(d); got != "2024-10-31" {
		t.Fatalf("unexpected day %s", got)
	}
}
