package yalogger

import "strings"

var levelNames = map[Level]string{
	PanicLevel: "Panic",
	FatalLevel: "Fatal",
	ErrorLevel: "Error",
	WarnLevel:  "Warn",
	InfoLevel:  "Info",
	DebugLevel: "Debug",
	TraceLevel: "Trace",
}

// String returns the human-readable name of the level.
func (l *Level) String() string {
	if name, ok := levelNames[*l]; ok {
		return name
	}

	return "Unknown"
}

// Unmarshal parses a case-insensitive level name into l.
func (l *Level) Unmarshal(text string) error {
	for level, name := range levelNames {
		if strings.EqualFold(name, text) {
			*l = level

			return nil
		}
	}

	return ErrInvalidLogLevel
}

// UnmarshalText implements encoding.TextUnmarshaler so a Level can be decoded
// straight from config values.
func (l *Level) UnmarshalText(text []byte) error {
	return l.Unmarshal(string(text))
}
