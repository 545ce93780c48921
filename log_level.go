package client

import (
	"fmt"
	"strings"
)

// LogLevel tags an event sent with [Client.Log]. It serializes to its
// lowercase name.
type LogLevel int

const (
	LevelLoot LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var logLevelNames = map[LogLevel]string{
	LevelLoot:  "loot",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}

	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// MarshalText implements [encoding.TextMarshaler]. Levels outside the known
// set fail to marshal.
func (l LogLevel) MarshalText() ([]byte, error) {
	name, ok := logLevelNames[l]
	if !ok {
		return nil, fmt.Errorf("unknown log level %d", int(l))
	}

	return []byte(name), nil
}

// ParseLogLevel returns the level with the given name, ignoring case and
// surrounding whitespace.
func ParseLogLevel(name string) (LogLevel, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for level, levelName := range logLevelNames {
		if levelName == name {
			return level, nil
		}
	}

	return 0, fmt.Errorf("unknown log level %q - expected one of loot, info, warn, error", name)
}
