package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/nickwells/alfredtz/internal/tzcatalog"
)

const defaultsDir = "defaults"

//go:embed defaults/*.json
var defaultsFS embed.FS

// install writes the default timezone configuration files into the config
// directory. Files which already exist are left unchanged.
func (prog *prog) install() int {
	defer prog.dbgStack.Start("install",
		"installing the default configuration in: "+prog.configDir)()

	if err := os.MkdirAll(prog.configDir, 0o755); err != nil { //nolint:gosec
		prog.errMap.AddError("install", err)
	}

	for _, name := range []string{
		tzcatalog.TimezonesFile,
		tzcatalog.PreferencesFile,
	} {
		if prog.errMap.HasErrors() {
			break
		}

		prog.installFile(name)
	}

	if prog.errMap.HasErrors() {
		prog.errMap.Report(prog.stderr, progName)
		return exitStatusConfigErr
	}

	return exitStatusOK
}

// installFile copies the named default file into the config directory
// unless there is a file there already
func (prog *prog) installFile(name string) {
	target := filepath.Join(prog.configDir, name)

	_, err := os.Stat(target)
	if err == nil {
		fmt.Fprintf(prog.stdout, "%s: already exists, not replaced\n", target)
		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		prog.errMap.AddError("install", err)
		return
	}

	content, err := defaultsFS.ReadFile(path.Join(defaultsDir, name))
	if err != nil {
		prog.errMap.AddError("install", err)
		return
	}

	if err := os.WriteFile(target, content, 0o644); err != nil { //nolint:gosec
		prog.errMap.AddError("install", err)
		return
	}

	fmt.Fprintf(prog.stdout, "%s: installed\n", target)
}
