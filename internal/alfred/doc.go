/*
The alfred package builds the items returned by an Alfred script filter and
writes them out, either as the JSON that Alfred reads or as plain text.
*/
package alfred
