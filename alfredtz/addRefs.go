package main

import "github.com/nickwells/param.mod/v6/param"

// addRefs adds the references to the standard help message
func addRefs(ps *param.PSet) error {
	ps.AddReference("github.com/nickwells/tempus.mod/tempus",
		"The tempus package supplies the list of IANA timezone names"+
			" shown by the "+paramNameListTimezoneNames+" parameter.")
	ps.AddReference("https://www.alfredapp.com/help/workflows/inputs/script-filter/json/",
		"This describes the JSON that an Alfred script filter returns.")

	return nil
}
