package main

import "os"

// Exit codes for the error kinds a generation run can fail with.
// Workflow steps and scripts use these to distinguish failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitManifestNotFound indicates the manifest path does not exist
	ExitManifestNotFound = 3

	// ExitManifestParse indicates the manifest is not valid JSON
	ExitManifestParse = 4

	// ExitNoTargets indicates the manifest declares no napi.targets
	ExitNoTargets = 5

	// ExitUnsupportedTargets indicates declared targets outside the platform table
	ExitUnsupportedTargets = 6
)

// exitWithCode exits with the specified exit code
func exitWithCode(code int) {
	os.Exit(code)
}
