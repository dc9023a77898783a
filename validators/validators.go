// SPDX-License-Identifier: GPL-3.0-only

// Package validators contains the email and phone validation engines. Both are
// safe for concurrent use: they only read their injected dependencies.
package validators

// Logger is satisfied by echo.Logger and gommon's *log.Logger.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

func loggerOrNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}

func strPtr(s string) *string {
	return &s
}
