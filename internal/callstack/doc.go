/*
The callstack package provides a Stack type which records the stages of a
run of alfredtz (loading the configuration, converting the time, writing
the items) and reports how long each took. Reports go to standard error so
that the items written to standard output are left untouched.
*/
package callstack
