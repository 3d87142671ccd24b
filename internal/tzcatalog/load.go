package tzcatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// TimezonesFile holds the abbreviation lookup table
	TimezonesFile = "timezones.json"
	// PreferencesFile holds the display preferences
	PreferencesFile = "preferences.json"
)

// Load reads the lookup table and the display preferences from the two
// files in dir. Both files must exist and be valid JSON.
func Load(dir string) (*Catalog, error) {
	var entries []Entry
	if err := readJSON(filepath.Join(dir, TimezonesFile), &entries); err != nil {
		return nil, err
	}

	var prefs Preferences
	if err := readJSON(filepath.Join(dir, PreferencesFile), &prefs); err != nil {
		return nil, err
	}

	return New(entries, prefs), nil
}

// readJSON reads the named file and decodes its contents into v
func readJSON(fName string, v any) error {
	content, err := os.ReadFile(fName) //nolint:gosec
	if err != nil {
		return fmt.Errorf("cannot read the timezone configuration: %w", err)
	}

	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("bad timezone configuration in %q: %w", fName, err)
	}

	return nil
}
