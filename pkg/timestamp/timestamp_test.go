package timestamp_test

import (
	"testing"
	"time"

	"shadowbuddy/pkg/timestamp"
)

func TestParseInput(t *testing.T) {
	t.Run("Valid Timestamp", func(t *testing.T) {
		got, err := timestamp.ParseInput("16/9/2025 1800")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, time.September, 16, 18, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Single Digit Day And Month", func(t *testing.T) {
		got, err := timestamp.ParseInput("1/2/2025 0900")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Day() != 1 || got.Month() != time.February || got.Hour() != 9 {
			t.Errorf("unexpected parse result: %v", got)
		}
	})

	t.Run("Invalid Calendar Date", func(t *testing.T) {
		if _, err := timestamp.ParseInput("32/13/9999 9999"); err == nil {
			t.Error("expected parse error for out-of-range date")
		}
	})

	t.Run("Not A Timestamp", func(t *testing.T) {
		if _, err := timestamp.ParseInput("today 1800"); err == nil {
			t.Error("expected parse error for non-date token")
		}
	})
}

func TestRender(t *testing.T) {
	parsed, err := timestamp.ParseInput("16/9/2025 1800")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := timestamp.Render(parsed); got != "Sep 16 2025 18:00" {
		t.Errorf("got %q, want %q", got, "Sep 16 2025 18:00")
	}
}

func TestParseRendered(t *testing.T) {
	got, err := timestamp.ParseRendered("Sep 16 2025 18:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 18 || got.Month() != time.September {
		t.Errorf("round-trip mismatch: %v", got)
	}
}
