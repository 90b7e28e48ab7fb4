package stopwatch

import (
	"testing"
	"time"
)

func TestFormatMillis(t *testing.T) {
	if got := FormatMillis(3661005); got != "01:01:01.005" {
		t.Fatalf("expected 01:01:01.005, got %q", got)
	}
}

func TestFormat_Zero(t *testing.T) {
	if got := Format(0); got != "00:00:00.000" {
		t.Fatalf("unexpected zero format: %q", got)
	}
}

func TestFormat_TruncatesSubMillisecond(t *testing.T) {
	if got := Format(1999999 * time.Microsecond); got != "00:00:01.999" {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestFormat_HoursDoNotWrap(t *testing.T) {
	if got := Format(125 * time.Hour); got != "125:00:00.000" {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestFormat_Negative(t *testing.T) {
	if got := Format(-time.Second); got != "00:00:00.000" {
		t.Fatalf("negative durations should format as zero, got %q", got)
	}
}

func TestComponents(t *testing.T) {
	h, m, s, ms := Components(2*time.Hour + 3*time.Minute + 4*time.Second + 56*time.Millisecond)
	if h != 2 || m != 3 || s != 4 || ms != 56 {
		t.Fatalf("unexpected components: %d %d %d %d", h, m, s, ms)
	}
}

func TestFormatStat(t *testing.T) {
	if got := FormatStat(time.Second, false); got != NoData {
		t.Errorf("expected %q, got %q", NoData, got)
	}
	if got := FormatStat(time.Second, true); got != "00:00:01.000" {
		t.Errorf("unexpected stat format: %q", got)
	}
}
