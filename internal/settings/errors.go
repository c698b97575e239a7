package settings

import "github.com/pkg/errors"

// Failure kinds reported by the importer. These are operator-fixable
// configuration problems, never retried automatically; callers test for
// them with errors.Is after unwrapping.
var (
	// ErrNoWorkspace means no workspace was supplied and none could be
	// discovered on this machine.
	ErrNoWorkspace = errors.New("no eclipse workspace found")

	// ErrWorkspaceNotFound means the explicitly supplied workspace path
	// does not exist or is not a directory.
	ErrWorkspaceNotFound = errors.New("workspace path not found")

	// ErrSourceNotFound means the settings source path does not exist.
	ErrSourceNotFound = errors.New("settings source not found")

	// ErrInvalidFormat means the source holds neither a combined export
	// nor individual preference files.
	ErrInvalidFormat = errors.New("settings source has no recognized format")

	// ErrConversionInputMissing means the combined export file vanished
	// between format detection and conversion.
	ErrConversionInputMissing = errors.New("combined export file missing")

	// ErrNoPrefsFiles means a prefs-copy was requested against a directory
	// holding zero individual preference files.
	ErrNoPrefsFiles = errors.New("no preference files in source")

	// ErrBadSelection means the workspace selection index returned by the
	// caller's Select hook was out of range. This is a usage error.
	ErrBadSelection = errors.New("workspace selection out of range")
)
