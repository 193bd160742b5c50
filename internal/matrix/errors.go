package matrix

import (
	"fmt"
	"strings"
)

// UnsupportedTargetsError reports every declared target with no entry in
// the platform table. Targets appear in declaration order with duplicates
// preserved.
type UnsupportedTargetsError struct {
	Targets []string
}

// Error implements the error interface.
func (e *UnsupportedTargetsError) Error() string {
	return fmt.Sprintf("unsupported targets: %s", strings.Join(e.Targets, ", "))
}

// Suggestion returns actionable steps for the user.
func (e *UnsupportedTargetsError) Suggestion() string {
	return "Run 'matrixgen platforms' to list the supported target triples"
}
