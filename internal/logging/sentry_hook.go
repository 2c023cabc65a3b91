package logging

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards log entries of the configured levels to sentry.
type SentryHook struct {
	levels []logrus.Level
	hub    *sentry.Hub
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels: levels,
		hub:    sentry.CurrentHub(),
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	hub := h.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range entry.Data {
			if k == logrus.ErrorKey {
				continue
			}
			scope.SetExtra(k, v)
		}
		scope.SetLevel(sentryLevel(entry.Level))

		if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
			hub.CaptureException(errors.Join(errors.New(entry.Message), err))
			return
		}
		hub.CaptureMessage(entry.Message)
	})
	return nil
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
