package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message
func addExamples(ps *param.PSet) error {
	ps.AddExample(`alfredtz 10:34am gmt`,
		"This will show 10:34 in the morning, London time, in each of"+
			" the timezones you have chosen to display.")
	ps.AddExample(`alfredtz -text -- 18:30 pst`,
		"This will show 6:30 in the evening, US Pacific time, in each"+
			" of the timezones you have chosen to display. The results"+
			" are shown as plain text rather than as JSON and will use"+
			" the 24-hour clock. Note that when any parameters are given"+
			" the time must follow the '--' parameter.")
	ps.AddExample(`alfredtz list`,
		"This will list the available timezone abbreviations.")
	ps.AddExample(`alfredtz -install-config`,
		"This will write the default timezone configuration files into"+
			" the configuration directory. You can then edit them to"+
			" choose the timezones you want to see.")

	return nil
}
