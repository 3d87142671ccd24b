package main

import (
	"errors"
	"fmt"

	"github.com/nickwells/alfredtz/internal/stdparams"
	"github.com/nickwells/alfredtz/internal/tzcatalog"
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramNameConfigDir         = "config-dir"
	paramNameIcon              = "icon"
	paramNameOutput            = "output"
	paramNameText              = "text"
	paramNameInstallConfig     = "install-config"
	paramNameListTimezoneNames = "list-timezone-names"

	groupNameConfig = param.DfltGroupName + "-config"
	groupNameOutput = param.DfltGroupName + "-output"
)

// setOutput returns an action func that will set the output form
func setOutput(prog *prog, output string) param.ActionFunc {
	return func(_ location.L, _ *param.ByName, _ []string) error {
		prog.output = output
		return nil
	}
}

// addConfigParams adds the parameters controlling where the timezone
// configuration is found
func addConfigParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameConfig, "timezone configuration parameters"+
			"\n\n"+
			"The timezone configuration is held in two files: "+
			tzcatalog.TimezonesFile+" which maps timezone abbreviations"+
			" onto IANA timezone names and "+tzcatalog.PreferencesFile+
			" which says which timezones to show and in what order.")

		ps.Add(paramNameConfigDir,
			psetter.Pathname{
				Value:       &prog.configDir,
				Expectation: filecheck.DirExists(),
			},
			"the directory holding the timezone configuration files."+
				"\n\n"+
				"When run from Alfred (the "+alfredEnvVar+
				" environment variable is set) the default is the"+
				" current directory, which is the workflow directory."+
				" Otherwise it is the "+progName+" directory under"+
				" your XDG config directory.",
			param.AltNames("cfg-dir"),
			param.GroupName(groupNameConfig),
		)

		ps.Add(paramNameInstallConfig, psetter.Bool{Value: &prog.installConfig},
			"write the default timezone configuration files into the"+
				" configuration directory and exit. Any files already"+
				" there are left unchanged.",
			param.AltNames("install"),
			param.Attrs(param.CommandLineOnly),
			param.GroupName(groupNameConfig),
			param.SeeAlso(paramNameConfigDir),
		)

		ps.Add(paramNameListTimezoneNames, psetter.Bool{Value: &prog.listTZNames},
			"list all the IANA timezone names which may be used in "+
				tzcatalog.TimezonesFile+" and exit",
			param.AltNames("list-tz-names", "list-timezones"),
			param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
			param.GroupName(groupNameConfig),
		)

		ps.AddFinalCheck(func() error {
			if prog.installConfig && prog.listTZNames {
				return fmt.Errorf("you may give at most one of %q or %q",
					paramNameInstallConfig, paramNameListTimezoneNames)
			}

			return nil
		})

		return nil
	}
}

// addOutputParams adds the parameters controlling the results
func addOutputParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameOutput, "output parameters")

		var outputCounter paction.Counter

		outputCounterAF := (&outputCounter).MakeActionFunc()

		ps.Add(paramNameOutput,
			psetter.Enum[string]{
				Value: &prog.output,
				AllowedVals: psetter.AllowedVals[string]{
					outputAlfred: "JSON in the form that an Alfred" +
						" script filter returns",
					outputText: "plain text, one result per line",
				},
			},
			"how the results should be shown",
			param.AltNames("o"),
			param.PostAction(outputCounterAF),
			param.GroupName(groupNameOutput),
		)

		ps.Add(paramNameText, psetter.Nil{},
			"show the results as plain text."+
				" This is the same as '-"+paramNameOutput+" "+outputText+"'",
			param.PostAction(outputCounterAF),
			param.PostAction(setOutput(prog, outputText)),
			param.Attrs(param.CommandLineOnly),
			param.GroupName(groupNameOutput),
			param.SeeAlso(paramNameOutput),
		)

		ps.Add(paramNameIcon,
			psetter.String[string]{
				Value: &prog.iconPath,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the path of the icon shown beside each converted time."+
				" A relative path is taken from the directory Alfred runs"+
				" the workflow in. The path is passed to Alfred unchanged",
			param.AltNames("icon-path"),
			param.GroupName(groupNameOutput),
		)

		ps.AddFinalCheck(func() error {
			if outputCounter.Count() > 1 {
				return errors.New(
					"the output form has been set more than once: " +
						outputCounter.SetBy())
			}

			return nil
		})

		return nil
	}
}

// addParams adds the remaining parameters and allows the query to be
// given as trailing arguments
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		stdparams.AddTiming(ps, prog.dbgStack)

		ps.AddFinalCheck(func() error {
			if len(ps.Remainder()) == 0 {
				return nil
			}

			if prog.installConfig || prog.listTZNames {
				return errors.New("no time should be given when installing" +
					" the configuration or listing the timezone names")
			}

			return nil
		})

		return ps.SetNamedRemHandler(param.NullRemHandler{}, "time")
	}
}
