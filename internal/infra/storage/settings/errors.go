package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the hub has no settings record yet
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrDuplicateSettings is returned when a concurrent create already
	// inserted the hub's settings record
	ErrDuplicateSettings = errors.New("settings.repository: settings already exist")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
