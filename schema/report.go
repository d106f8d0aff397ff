package schema

import "github.com/sirupsen/logrus"

// Reporter receives non-fatal notices about metadata that does not
// conform to the strict grammar: unparsable identifiers, unknown option
// values, contradictory option combinations. Such metadata usually comes
// from introspecting old schemas, so the notices are advisory; the
// constraint itself is still constructed.
//
// A Reporter is injected per construction, never looked up from package
// state.
type Reporter interface {
	Deprecatedf(format string, args ...any)
}

// NopReporter discards all notices. It is the default when a
// [ForeignKeyDef] carries no reporter.
var NopReporter Reporter = nopReporter{}

type nopReporter struct{}

func (nopReporter) Deprecatedf(string, ...any) {}

// LogReporter forwards notices to the given logger at warn level.
func LogReporter(log *logrus.Logger) Reporter {
	return logReporter{log: log}
}

type logReporter struct {
	log *logrus.Logger
}

func (r logReporter) Deprecatedf(format string, args ...any) {
	r.log.WithField("component", "schema").Warnf(format, args...)
}
