package timeparse

import (
	"errors"
	"regexp"
	"strconv"
)

// Clock records which of the two accepted grammars a time was given in. The
// same clock is used when the converted times are shown.
type Clock int

const (
	Clock24 Clock = iota
	Clock12
)

// String returns the conventional name of the clock
func (c Clock) String() string {
	if c == Clock12 {
		return "12-hour"
	}

	return "24-hour"
}

const (
	hourPattern   = `(0?[0-9]|1[0-9]|2[0-3])`
	minutePattern = `([0-5][0-9])`
	tzPattern     = `([a-zA-Z]+)`

	// UsageHint gives examples of the two accepted forms
	UsageHint = "e.g. 10:34am gmt or 18:30 pst"
)

var (
	re12 = regexp.MustCompile(
		`^` + hourPattern + `:` + minutePattern + `(am|pm) ` + tzPattern + `$`)
	re24 = regexp.MustCompile(
		`^` + hourPattern + `:` + minutePattern + ` ` + tzPattern + `$`)
)

// ErrIncorrectFormat is returned when a query matches neither the 12-hour
// nor the 24-hour form
var ErrIncorrectFormat = errors.New("incorrect time format")

// Spec is a parsed query. The Hour is always in the range 0-23 whichever
// form the time was given in.
type Spec struct {
	Hour         int
	Minute       int
	Abbreviation string
	Clock        Clock
}

// Parse converts the query into a Spec. The 12-hour form (H:MMam tz) is
// tried first and then the 24-hour form (H:MM tz). The whole query must
// match, surrounding space included; nothing is inferred from a partial
// match.
func Parse(s string) (Spec, error) {
	if m := re12.FindStringSubmatch(s); m != nil {
		return parse12(m)
	}

	if m := re24.FindStringSubmatch(s); m != nil {
		return Spec{
			Hour:         atoi(m[1]),
			Minute:       atoi(m[2]),
			Abbreviation: m[3],
			Clock:        Clock24,
		}, nil
	}

	return Spec{}, ErrIncorrectFormat
}

// parse12 builds the Spec from the submatches of the 12-hour pattern
func parse12(m []string) (Spec, error) {
	hour := atoi(m[1])
	if hour > 12 {
		return Spec{}, ErrIncorrectFormat
	}

	switch {
	case m[3] == "am" && hour == 12:
		hour = 0
	case m[3] == "pm" && hour != 12:
		hour += 12
	}

	return Spec{
		Hour:         hour,
		Minute:       atoi(m[2]),
		Abbreviation: m[4],
		Clock:        Clock12,
	}, nil
}

// atoi converts a string already matched as one or two digits
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
