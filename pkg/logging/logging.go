// Copyright (c) 2026, Fineswap.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// envLogLevel is the environment variable consulted for the default level.
const envLogLevel = "LOG_LEVEL"

// ParseLevel converts a level name to a slog.Level. Recognized names are
// debug, info, warn, warning, and error, case-insensitive. Unrecognized or
// empty input yields info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newHandler builds the JSON handler shared by all constructors. Source
// location is attached only when debug records are enabled.
func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
}

func newLogger(w io.Writer, module, version string, level slog.Level) *slog.Logger {
	return slog.New(newHandler(w, level)).With(
		"module", module,
		"version", version,
	)
}

// NewStructuredLogger returns a JSON logger writing to stderr that stamps
// every record with the given module and version. The level name is parsed
// with ParseLevel.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newLogger(os.Stderr, module, version, ParseLevel(level))
}

// NewStructuredLoggerWithWriter is NewStructuredLogger over a caller-supplied
// writer. Intended for tests.
func NewStructuredLoggerWithWriter(w io.Writer, module, version, level string) *slog.Logger {
	return newLogger(w, module, version, ParseLevel(level))
}

// SetDefaultStructuredLogger installs the structured logger as the slog
// default. The level comes from the LOG_LEVEL environment variable and
// defaults to info when unset.
func SetDefaultStructuredLogger(module, version string) {
	slog.SetDefault(newLogger(os.Stderr, module, version, ParseLevel(os.Getenv(envLogLevel))))
}

// SetDefaultStructuredLoggerWithLevel installs the structured logger as the
// slog default with an explicit level, overriding LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(newLogger(os.Stderr, module, version, ParseLevel(level)))
}

// NewLogLogger returns a standard library logger bridged onto a structured
// JSON handler at the given level, for libraries that require a *log.Logger.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(h, level)
}
