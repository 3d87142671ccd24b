/*
The tzconvert package takes a parsed time and the timezone it was given in
and finds the same moment in a list of other timezones. The date used is
today's date in the source timezone.
*/
package tzconvert
