package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nickwells/alfredtz/internal/alfred"
	"github.com/nickwells/alfredtz/internal/callstack"
	"github.com/nickwells/alfredtz/internal/timeparse"
	"github.com/nickwells/alfredtz/internal/tzcatalog"
	"github.com/nickwells/alfredtz/internal/tzconvert"
	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/xdg.mod/xdg"
)

const (
	progName = "alfredtz"

	exitStatusOK        = 0
	exitStatusConfigErr = 1
	exitStatusWriteErr  = 2

	// alfredEnvVar is set by Alfred when it runs a workflow script
	alfredEnvVar = "alfred_version"

	listQuery      = "list"
	listQueryShort = "ls"

	outputAlfred = "alfred"
	outputText   = "text"

	dfltIconPath = "icon.png"

	titleIncorrectFormat = "Incorrect format"
	titleInvalidTimezone = "Invalid timezone"
	titleMissingArg      = "Missing time argument"
)

// prog holds program parameters and status
type prog struct {
	configDir string
	iconPath  string
	output    string

	installConfig bool
	listTZNames   bool

	query string

	now    func() time.Time
	stdout io.Writer
	stderr io.Writer

	dbgStack *callstack.Stack
	errMap   *errutil.ErrMap
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		configDir: dfltConfigDir(),
		iconPath:  dfltIconPath,
		output:    outputAlfred,

		now:    time.Now,
		stdout: os.Stdout,
		stderr: os.Stderr,

		dbgStack: &callstack.Stack{},
		errMap:   errutil.NewErrMap(),
	}
}

// dfltConfigDir returns the directory holding the timezone configuration.
// When run by Alfred this is the workflow directory (the current
// directory), otherwise it is a directory under the XDG config home.
func dfltConfigDir() string {
	if os.Getenv(alfredEnvVar) != "" {
		return "."
	}

	return filepath.Join(xdg.ConfigHome(), progName)
}

// setQuery sets the query from the trailing arguments. The query is not
// trimmed; surrounding space makes the time incorrectly formatted.
func (prog *prog) setQuery(args []string) {
	prog.query = strings.Join(args, " ")
}

// run performs the action selected by the parameters and returns the exit
// status. Problems with the query are reported as items and do not change
// the exit status.
func (prog *prog) run() int {
	defer prog.dbgStack.Start("run", "query: "+prog.query)()

	if prog.listTZNames {
		return prog.write(
			alfred.Items{Items: alfred.ListItems(tempus.TimezoneNames())})
	}

	if prog.installConfig {
		return prog.install()
	}

	if prog.query == "" {
		return prog.write(errItems(titleMissingArg, timeparse.UsageHint))
	}

	cat := prog.loadCatalog()
	if prog.errMap.HasErrors() {
		prog.errMap.Report(prog.stderr, progName)
		return exitStatusConfigErr
	}

	return prog.write(prog.respond(cat, prog.query))
}

// loadCatalog reads the timezone configuration. Any error is recorded in
// the error map.
func (prog *prog) loadCatalog() *tzcatalog.Catalog {
	defer prog.dbgStack.Start("loadCatalog",
		"reading the timezone configuration from: "+prog.configDir)()

	cat, err := tzcatalog.Load(prog.configDir)
	if err != nil {
		prog.errMap.AddError("timezone configuration", err)
		return nil
	}

	return cat
}

// respond returns the items answering the query
func (prog *prog) respond(cat *tzcatalog.Catalog, query string) alfred.Items {
	defer prog.dbgStack.Start("respond", "")()

	if query == listQuery || query == listQueryShort {
		return alfred.Items{Items: alfred.ListItems(cat.Available())}
	}

	spec, err := timeparse.Parse(query)
	if err != nil {
		return errItems(titleIncorrectFormat, timeparse.UsageHint)
	}

	prog.dbgStack.Printf("%s time: %02d:%02d %s\n",
		spec.Clock, spec.Hour, spec.Minute, spec.Abbreviation)

	var src *tzcatalog.Entry
	if e, ok := cat.Resolve(spec.Abbreviation); ok {
		src = &e
	}

	prog.reportUnresolvable(cat.Unresolvable())

	conv := tzconvert.Converter{Now: prog.now}

	results, err := conv.Convert(spec, src, cat.DisplayList())
	if err != nil {
		return errItems(titleInvalidTimezone, err.Error())
	}

	prog.reportSkipped(conv.Skipped())

	return alfred.Items{Items: alfred.TimeItems(spec.Clock, results, prog.iconPath)}
}

// reportUnresolvable reports, in verbose mode, any displayable timezones
// which are not in the lookup table
func (prog *prog) reportUnresolvable(bad []string) {
	if len(bad) == 0 {
		return
	}

	verb := "has"
	if len(bad) > 1 {
		verb = "have"
	}

	prog.dbgStack.Printf("%d %s to display %s no entry in %s: %s\n",
		len(bad), english.Plural("timezone", len(bad)), verb,
		tzcatalog.TimezonesFile,
		english.Join(bad, ", ", " and "))
}

// reportSkipped reports, in verbose mode, any timezones which could not be
// converted
func (prog *prog) reportSkipped(skipped []tzcatalog.Entry) {
	for _, e := range skipped {
		prog.dbgStack.Printf("skipping %s: unknown location: %q\n",
			e.Abbreviation, e.Timezone)
	}
}

// write writes the items in the chosen output form
func (prog *prog) write(items alfred.Items) int {
	defer prog.dbgStack.Start("write", "")()

	var err error

	if prog.output == outputText {
		err = items.WriteText(prog.stdout)
	} else {
		err = items.WriteJSON(prog.stdout)
	}

	if err != nil {
		fmt.Fprintln(prog.stderr, progName+": cannot write the results:", err)
		return exitStatusWriteErr
	}

	return exitStatusOK
}

// errItems returns a response holding a single error item
func errItems(title, subtitle string) alfred.Items {
	return alfred.Items{Items: []alfred.Item{alfred.ErrorItem(title, subtitle)}}
}
