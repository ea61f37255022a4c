// Package timefmt renders durations as localized "x minutes y seconds"
// strings.
package timefmt

import (
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	secondsKey = "%d seconds"
	minutesKey = "%d minutes"
)

var supported = []language.Tag{
	language.English,
	language.German,
}

var (
	matcher = language.NewMatcher(supported)
	units   = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	entries := []struct {
		tag               language.Tag
		key               string
		singular, plurals string
	}{
		{language.English, secondsKey, "%d second", "%d seconds"},
		{language.English, minutesKey, "%d minute", "%d minutes"},
		{language.German, secondsKey, "%d Sekunde", "%d Sekunden"},
		{language.German, minutesKey, "%d Minute", "%d Minuten"},
	}
	for _, e := range entries {
		msg := plural.Selectf(1, "%d", plural.One, e.singular, plural.Other, e.plurals)
		if err := b.Set(e.tag, e.key, msg); err != nil {
			panic(err)
		}
	}
	return b
}

// Supported returns the languages with translated unit names.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Match picks the closest supported language for the preferred tags.
func Match(preferred ...language.Tag) language.Tag {
	_, idx, _ := matcher.Match(preferred...)
	return supported[idx]
}

// Formatter formats durations for one language.
type Formatter struct {
	printer *message.Printer
}

// New returns a formatter for the closest supported match of tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(Match(tag), message.Catalog(units)),
	}
}

// Seconds formats a whole number of seconds, e.g. "45 seconds".
func (f *Formatter) Seconds(seconds int) string {
	return f.printer.Sprintf(secondsKey, seconds)
}

// MinutesSeconds formats seconds as "m minutes s seconds". Durations under
// a minute show only seconds unless alwaysShowMinutes is set.
func (f *Formatter) MinutesSeconds(seconds int, alwaysShowMinutes bool) string {
	secondsText := f.Seconds(seconds % 60)
	if !alwaysShowMinutes && seconds < 60 {
		return secondsText
	}
	return f.printer.Sprintf(minutesKey, seconds/60) + " " + secondsText
}

// Duration formats d, truncated to whole seconds, with MinutesSeconds.
func (f *Formatter) Duration(d time.Duration, alwaysShowMinutes bool) string {
	if d < 0 {
		d = 0
	}
	return f.MinutesSeconds(int(d/time.Second), alwaysShowMinutes)
}
