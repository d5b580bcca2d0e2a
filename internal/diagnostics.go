package internal

import "github.com/sirupsen/logrus"

// ReportError logs a LogoError with structured fields (line, kind) so a
// host can attach a hook for tracing without touching the interpreter's
// internals.
func ReportError(log *logrus.Entry, err error) {
	le, ok := err.(*LogoError)
	if !ok {
		log.WithError(err).Error("logo error")
		return
	}
	entry := log.WithField("kind", le.Kind.String())
	if le.Line > 0 {
		entry = entry.WithField("line", le.Line)
	}
	entry.Error(le.Err)
}
