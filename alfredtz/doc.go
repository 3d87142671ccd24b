/*
The alfredtz program converts a time given in one timezone into the
equivalent times in a list of other timezones. It is intended to be run
from an Alfred script filter: the results are written as the JSON list of
items that Alfred displays.

The time may be given in 12-hour form, with am or pm directly after the
minutes, or in 24-hour form. Either way it is followed by a space and a
timezone abbreviation:

	alfredtz 10:34am gmt
	alfredtz 18:30 pst

If any parameters are given they must come first and the time must then
follow the '--' parameter:

	alfredtz -text -- 18:30 pst

The abbreviations, the timezones they stand for and the timezones to show
are read from two JSON files in the configuration directory. Default
versions of these can be written with the install-config parameter.
*/
package main
