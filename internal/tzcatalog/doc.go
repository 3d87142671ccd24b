/*
The tzcatalog package holds the table mapping timezone abbreviations (GMT,
PST, ...) onto IANA timezone names together with the user's preferences
saying which timezones to show and in what order.

Two JSON files are read. The first, timezones.json, is a list of entries:

	[
	    {"abbreviation": "GMT", "timezone": "Europe/London"},
	    {"abbreviation": "PST", "timezone": "US/Pacific"}
	]

The second, preferences.json, gives the display order and the set of valid
abbreviations:

	{
	    "timezones_to_display": ["GMT", "PST"],
	    "available_timezones": ["GMT", "PST"]
	}

All abbreviation matching ignores case.
*/
package tzcatalog
