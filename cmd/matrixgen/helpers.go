package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matrixgen-dev/matrixgen/internal/errmsg"
)

// printJSON marshals the given value to indented JSON on stdout.
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		exitWithCode(ExitGeneral)
	}
}

// printError prints an error to stderr with a suggestion when one is
// available for the failure mode.
func printError(err error) {
	errmsg.Fprint(os.Stderr, err)
}
