package commands

// UnknownNames exports unknownNames for testing.
var UnknownNames = unknownNames //nolint:gochecknoglobals // test export
