package tzcatalog

import (
	"strings"
)

// Entry maps a timezone abbreviation onto an IANA timezone name
type Entry struct {
	Abbreviation string `json:"abbreviation"`
	Timezone     string `json:"timezone"`
}

// Preferences controls which timezones are shown. Display gives the order
// in which to show them; only those also in Available are shown.
type Preferences struct {
	Display   []string `json:"timezones_to_display"`
	Available []string `json:"available_timezones"`
}

// Catalog holds the abbreviation lookup table and the display
// preferences. It is not changed after it has been created.
type Catalog struct {
	entries   []Entry
	byAbbrev  map[string]Entry
	prefs     Preferences
	available map[string]bool
}

// key returns the normalised form of an abbreviation used for lookups
func key(abbrev string) string {
	return strings.ToUpper(strings.TrimSpace(abbrev))
}

// New creates a Catalog from the entries and preferences. Abbreviations are
// stored in upper case. If an abbreviation appears more than once the first
// entry is used.
func New(entries []Entry, prefs Preferences) *Catalog {
	c := &Catalog{
		byAbbrev:  make(map[string]Entry, len(entries)),
		prefs:     prefs,
		available: make(map[string]bool, len(prefs.Available)),
	}

	for _, e := range entries {
		k := key(e.Abbreviation)
		if _, exists := c.byAbbrev[k]; exists {
			continue
		}

		e.Abbreviation = k
		c.byAbbrev[k] = e
		c.entries = append(c.entries, e)
	}

	for _, a := range prefs.Available {
		c.available[key(a)] = true
	}

	return c
}

// Resolve returns the entry for the abbreviation, ignoring case. The bool
// is false if there is no such entry.
func (c *Catalog) Resolve(abbrev string) (Entry, bool) {
	e, ok := c.byAbbrev[key(abbrev)]
	return e, ok
}

// IsAvailable reports whether the abbreviation is in the available list
func (c *Catalog) IsAvailable(abbrev string) bool {
	return c.available[key(abbrev)]
}

// DisplayList returns the entries to be shown, in the order given by the
// display preferences. Entries which are not available or which have
// already been listed are skipped as are any which cannot be resolved.
func (c *Catalog) DisplayList() []Entry {
	list := []Entry{}
	seen := map[string]bool{}

	for _, abbrev := range c.prefs.Display {
		k := key(abbrev)
		if !c.available[k] || seen[k] {
			continue
		}

		e, ok := c.byAbbrev[k]
		if !ok {
			continue
		}

		seen[k] = true

		list = append(list, e)
	}

	return list
}

// Unresolvable returns those display entries which are available but which
// have no entry in the lookup table. Each is reported once.
func (c *Catalog) Unresolvable() []string {
	var bad []string

	seen := map[string]bool{}

	for _, abbrev := range c.prefs.Display {
		k := key(abbrev)
		if !c.available[k] || seen[k] {
			continue
		}

		seen[k] = true

		if _, ok := c.byAbbrev[k]; !ok {
			bad = append(bad, abbrev)
		}
	}

	return bad
}

// Available returns the available abbreviations in the configured order
func (c *Catalog) Available() []string {
	return append([]string(nil), c.prefs.Available...)
}

// Entries returns the lookup table entries in the order they were given
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}
