package stdparams

import (
	"github.com/nickwells/alfredtz/internal/callstack"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

// ParamNameShowTimings is the name of the parameter added by AddTiming
const ParamNameShowTimings = "show-timings"

// AddTiming adds the show-timings parameter which sets the ShowTimings
// field in the callstack.Stack. The timings are reported on standard
// error.
func AddTiming(
	ps *param.PSet,
	cs *callstack.Stack,
	opt ...param.OptFunc,
) *param.ByName {
	opt = append(opt,
		param.Attrs(param.DontShowInStdUsage|param.CommandLineOnly),
		param.AltNames("show-timing", "timings"))

	return ps.Add(ParamNameShowTimings,
		psetter.Bool{Value: &cs.ShowTimings},
		"report, on standard error, the time taken to load the"+
			" timezone configuration, convert the time and"+
			" write the results.",
		opt...)
}
