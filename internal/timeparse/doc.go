/*
The timeparse package recognises the two forms of time query understood by
alfredtz and extracts the hour, minute and timezone abbreviation from them.

The forms are:

	10:34am gmt   (12-hour, the am/pm follows the minutes directly)
	18:30 pst     (24-hour)

The hour of a 12-hour time is converted to the 24-hour range as it is
parsed.
*/
package timeparse
