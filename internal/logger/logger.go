package logger

import (
	"github.com/fatih/color" // Colored console output for log levels
)

// Colorized printing functions for the different log levels.
// Each is a package-level variable behaving like fmt.Printf with the
// text colored for its level.

// Info logs informational messages in green.
// Used for successful imports, backups, and other normal progress output.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta.
// Used for recoverable oddities such as skipped export lines or a
// missing recent-workspaces record.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
// It is assigned during Init based on the --debug flag.
var Debug func(format string, a ...any)

// Init initializes the logger, enabling or disabling debug output.
// When disabled, Debug is a no-op function that silently drops messages.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
