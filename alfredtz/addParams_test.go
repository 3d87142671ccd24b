package main

import (
	"errors"
	"testing"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/param.mod/v6/paramtest"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

// cmpProgStruct compares the value with the expected value and returns
// an error if they differ
func cmpProgStruct(iVal, iExpVal any) error {
	val, ok := iVal.(*prog)
	if !ok {
		return errors.New("Bad value: not a pointer to a prog struct")
	}

	expVal, ok := iExpVal.(*prog)
	if !ok {
		return errors.New("Bad expected value: not a pointer to a prog struct")
	}

	return testhelper.DiffVals(val, expVal,
		[]string{"now"}, // ignore the clock
		[]string{"stdout"},
		[]string{"stderr"},
	)
}

// mkTestParser populates and returns a paramtest.Parser ready to be added to
// the testcases.
func mkTestParser(
	errs errutil.ErrMap, id testhelper.ID,
	progSetter func(prog *prog),
	args ...string,
) paramtest.Parser {
	actVal := newProg()
	ps := paramset.NewNoHelpNoExitNoErrRptOrPanic(
		addConfigParams(actVal),
		addOutputParams(actVal),
		addParams(actVal),
	)

	expVal := newProg()
	if progSetter != nil {
		progSetter(expVal)
	}

	return paramtest.Parser{
		ID:             id,
		ExpParseErrors: errs,
		Val:            actVal,
		Ps:             ps,
		ExpVal:         expVal,
		Args:           args,
		CheckFunc:      cmpProgStruct,
	}
}

// TestParseParams uses the paramtest.Parser to make sure the behaviour of
// the parameter setting is as expected.
func TestParseParams(t *testing.T) {
	testCases := []paramtest.Parser{}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: no params, no change"),
			nil))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: output"),
			func(prog *prog) { prog.output = outputText },
			"-"+paramNameOutput, outputText))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: text"),
			func(prog *prog) { prog.output = outputText },
			"-"+paramNameText))

	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameOutput,
			errors.New(`value is not allowed: "nonesuch"`+"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-output" "nonesuch"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: output"),
				nil,
				"-"+paramNameOutput, "nonesuch"))
	}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: config-dir"),
			func(prog *prog) { prog.configDir = testCfgDir },
			"-"+paramNameConfigDir, testCfgDir))

	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameConfigDir,
			errors.New(`path: "nonesuch": should exist but does not;`+
				` "." exists but "nonesuch" does not`+
				"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-config-dir" "nonesuch"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: config-dir"),
				nil,
				"-"+paramNameConfigDir, "nonesuch"))
	}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: icon"),
			func(prog *prog) { prog.iconPath = "images/clock.png" },
			"-"+paramNameIcon, "images/clock.png"))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: icon, path not cleaned"),
			func(prog *prog) { prog.iconPath = "./images//clock.png" },
			"-"+paramNameIcon, "./images//clock.png"))

	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameIcon,
			errors.New("the length of the string (0) is incorrect:"+
				" the value (0) must be greater than 0\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-icon" ""`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: icon"),
				nil,
				"-"+paramNameIcon, ""))
	}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: install-config"),
			func(prog *prog) { prog.installConfig = true },
			"-"+paramNameInstallConfig))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: list-timezone-names"),
			func(prog *prog) { prog.listTZNames = true },
			"-"+paramNameListTimezoneNames))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: show-timings"),
			func(prog *prog) { prog.dbgStack.ShowTimings = true },
			"-show-timings"))

	for _, tc := range testCases {
		_ = tc.Test(t)
	}
}
