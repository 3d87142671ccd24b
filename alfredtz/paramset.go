package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// paramOptFuncs returns the parameter option functions, apart from those
// setting the config files. These are separated from the paramset creation
// so that tests can build paramsets of their own.
func paramOptFuncs(prog *prog) []param.PSetOptFunc {
	return []param.PSetOptFunc{
		verbose.AddParams,
		versionparams.AddParams,

		addConfigParams(prog),
		addOutputParams(prog),
		addParams(prog),

		addExamples,
		addRefs,

		param.SetProgramDescription(
			"This will take a time, given in a timezone, and show the" +
				" same moment in each of the timezones you have chosen" +
				" to display. The results are written in the form that" +
				" an Alfred script filter returns so that they can be" +
				" shown and selected in Alfred." +
				"\n\n" +
				"The time is given as the trailing argument, either in" +
				" 12-hour form (10:34am gmt) or in 24-hour form" +
				" (18:30 pst). The date is taken to be today's date in" +
				" the given timezone. If any parameters are given" +
				" the time must follow the '--' parameter." +
				"\n\n" +
				"Give '" + listQuery + "' rather than a time to see" +
				" the timezone abbreviations that are available." +
				"\n\n" +
				"Mistakes in the time are reported as results rather" +
				" than through the exit status so that Alfred can" +
				" show them."),
	}
}

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		append(paramOptFuncs(prog),
			SetGlobalConfigFile,
			SetConfigFile,
		)...)
}
