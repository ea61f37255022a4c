package timefmt

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestSeconds(t *testing.T) {
	tests := []struct {
		name    string
		tag     language.Tag
		seconds int
		want    string
	}{
		{name: "english singular", tag: language.English, seconds: 1, want: "1 second"},
		{name: "english plural", tag: language.English, seconds: 45, want: "45 seconds"},
		{name: "english zero", tag: language.English, seconds: 0, want: "0 seconds"},
		{name: "german singular", tag: language.German, seconds: 1, want: "1 Sekunde"},
		{name: "german plural", tag: language.German, seconds: 30, want: "30 Sekunden"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.tag).Seconds(tc.seconds); got != tc.want {
				t.Fatalf("Seconds(%d) = %q, want %q", tc.seconds, got, tc.want)
			}
		})
	}
}

func TestMinutesSeconds(t *testing.T) {
	tests := []struct {
		name        string
		seconds     int
		showMinutes bool
		want        string
	}{
		{name: "under a minute", seconds: 59, want: "59 seconds"},
		{name: "under a minute forced", seconds: 5, showMinutes: true, want: "0 minutes 5 seconds"},
		{name: "exact minute", seconds: 60, want: "1 minute 0 seconds"},
		{name: "minutes and seconds", seconds: 125, want: "2 minutes 5 seconds"},
		{name: "one and one", seconds: 61, want: "1 minute 1 second"},
	}

	f := New(language.English)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.MinutesSeconds(tc.seconds, tc.showMinutes); got != tc.want {
				t.Fatalf("MinutesSeconds(%d, %t) = %q, want %q", tc.seconds, tc.showMinutes, got, tc.want)
			}
		})
	}
}

func TestDurationTruncatesToSeconds(t *testing.T) {
	f := New(language.English)

	if got := f.Duration(90*time.Second+900*time.Millisecond, false); got != "1 minute 30 seconds" {
		t.Fatalf("Duration = %q", got)
	}
	if got := f.Duration(-time.Second, false); got != "0 seconds" {
		t.Fatalf("negative Duration = %q", got)
	}
}

func TestMatchFallsBackToEnglish(t *testing.T) {
	if got := Match(language.Japanese); got != language.English {
		t.Fatalf("Match(ja) = %v, want en", got)
	}
	if got := Match(language.MustParse("de-AT")); got != language.German {
		t.Fatalf("Match(de-AT) = %v, want de", got)
	}
	if got := New(language.Japanese).Seconds(2); got != "2 seconds" {
		t.Fatalf("fallback Seconds = %q", got)
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	tags := Supported()
	if len(tags) != 2 || tags[0] != language.English || tags[1] != language.German {
		t.Fatalf("Supported = %v, want [en de]", tags)
	}
	tags[0] = language.Japanese
	if Supported()[0] != language.English {
		t.Fatalf("Supported exposed its backing slice")
	}
}
