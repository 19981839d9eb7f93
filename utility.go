// FILE: utility.go
package loggable

import (
	"fmt"
	"strings"
)

// fmtErrorf wrapper ensuring a consistent "loggable: " prefix
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "loggable: ") {
		format = "loggable: " + format
	}
	return fmt.Errorf(format, args...)
}
