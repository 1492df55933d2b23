package commands

// ChangedLines exports changedLines for testing.
var ChangedLines = changedLines //nolint:gochecknoglobals // test export
