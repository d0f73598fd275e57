package yalogger

import "errors"

// ErrInvalidLogLevel is returned when a textual log level cannot be parsed.
var ErrInvalidLogLevel = errors.New("invalid log level")
