package tzconvert

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // used if the host has no zoneinfo database

	"github.com/nickwells/alfredtz/internal/timeparse"
	"github.com/nickwells/alfredtz/internal/tzcatalog"
)

// UnknownTimezoneError is returned when the timezone abbreviation in the
// query is not in the catalog
type UnknownTimezoneError struct {
	Name string
}

// Error returns the error message
func (e *UnknownTimezoneError) Error() string {
	return fmt.Sprintf("%s is not a valid timezone", e.Name)
}

// BadLocationError is returned when an abbreviation maps onto a timezone
// name which the time package cannot load
type BadLocationError struct {
	Entry tzcatalog.Entry
	Err   error
}

// Error returns the error message
func (e *BadLocationError) Error() string {
	return fmt.Sprintf("%s maps to an unknown location: %s",
		e.Entry.Abbreviation, e.Entry.Timezone)
}

// Unwrap returns the error from the time package
func (e *BadLocationError) Unwrap() error {
	return e.Err
}

// Result is the converted time in one of the target timezones
type Result struct {
	Entry tzcatalog.Entry
	Time  time.Time
}

// Converter converts a parsed query into the equivalent times in other
// timezones. Now gives the current time; if it is nil time.Now is used.
type Converter struct {
	Now func() time.Time

	skipped []tzcatalog.Entry
}

// now returns the current time
func (c *Converter) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}

	return c.Now()
}

// Instant returns the moment given by the parsed time: the hour and
// minute on today's date in the source timezone.
func (c *Converter) Instant(spec timeparse.Spec, src *tzcatalog.Entry,
) (time.Time, error) {
	if src == nil {
		return time.Time{}, &UnknownTimezoneError{Name: spec.Abbreviation}
	}

	loc, err := time.LoadLocation(src.Timezone)
	if err != nil {
		return time.Time{}, &BadLocationError{Entry: *src, Err: err}
	}

	y, m, d := c.now().In(loc).Date()

	return time.Date(y, m, d, spec.Hour, spec.Minute, 0, 0, loc), nil
}

// Convert finds the moment given by the parsed time in each of the target
// timezones. Any target with the same abbreviation as the source is left
// out as is any repeated target. Targets whose timezone cannot be loaded
// are skipped and can be retrieved through the Skipped method.
func (c *Converter) Convert(
	spec timeparse.Spec,
	src *tzcatalog.Entry,
	targets []tzcatalog.Entry,
) ([]Result, error) {
	c.skipped = nil

	t, err := c.Instant(spec, src)
	if err != nil {
		return nil, err
	}

	results := []Result{}
	seen := map[string]bool{strings.ToUpper(src.Abbreviation): true}

	for _, tgt := range targets {
		k := strings.ToUpper(tgt.Abbreviation)
		if seen[k] {
			continue
		}

		seen[k] = true

		loc, err := time.LoadLocation(tgt.Timezone)
		if err != nil {
			c.skipped = append(c.skipped, tgt)
			continue
		}

		results = append(results, Result{Entry: tgt, Time: t.In(loc)})
	}

	return results, nil
}

// Skipped returns the targets from the last call to Convert which could
// not be converted because their timezone could not be loaded
func (c *Converter) Skipped() []tzcatalog.Entry {
	return c.skipped
}
