package main

import (
	"os"
	"strings"
)

// Created: Mon Oct 19 09:12:40 2026

func main() {
	prog := newProg()
	ps := makeParamSet(prog)

	os.Args = append(os.Args[:1:1],
		cmdLineArgs(os.Args[1:], ps.TerminalParam())...)

	ps.Parse()

	prog.setQuery(ps.Remainder())

	os.Exit(prog.run())
}

// cmdLineArgs returns the arguments to be parsed. Alfred passes the query
// as the only argument and it never starts with a '-' so, in that case,
// the terminal parameter is put in front of the arguments and they are
// all taken as the query. Otherwise the arguments are returned unchanged
// and any query must follow the terminal parameter.
func cmdLineArgs(args []string, terminalParam string) []string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return args
	}

	return append([]string{terminalParam}, args...)
}
