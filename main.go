package main

import (
	"eclipse-sync/cmd" // The cmd package contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The eclipse-sync project is a small tool for rolling out a team's shared
// Eclipse preference settings to a developer's local workspace:
//   - Locates candidate Eclipse workspaces from the per-user configuration area
//     (recent-workspaces records) and conventional default folders
//   - Accepts a settings source as a directory or a bundle archive
//     (.zip/.7z/.tar.*) holding either a combined .epf export or individual
//     per-plugin .preferences files
//   - Converts a combined export into one preference file per plugin, or
//     copies individual preference files verbatim, into the workspace's
//     settings directory
//   - Optionally snapshots the existing settings directory to a timestamped
//     backup before touching anything
//   - Validates the result against a configurable checklist of expected
//     plugin identifiers and keeps a per-workspace import history
//
// Error handling strategy:
//   - Failures are operator-fixable configuration problems (missing workspace,
//     missing source, unrecognized format) reported with a clear message and a
//     non-zero exit status; nothing is retried automatically
//   - A declined confirmation aborts cleanly without writes and is not an error
//   - Malformed export lines are reported as warnings, never fatal
func main() {
	cmd.Execute()
}
