// Package containers holds what the container packages share: construction
// options, soft-failure reporting and a lock wrapper for concurrent use.
package containers

import (
	"go.uber.org/zap"

	"github.com/classicds/datastructs/internal/telemetry"
	"github.com/classicds/datastructs/pkg/logger"
)

// Options configures a container. The zero value reports to a no-op logger.
type Options struct {
	logger logger.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger soft failures are reported to.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Logger returns the configured logger, or a no-op logger when none was set.
func (o Options) Logger() logger.Logger {
	if o.logger == nil {
		return logger.NewNoopLogger()
	}
	return o.logger
}

// ReportEmpty records that operation was a no-op because container was empty.
// It never fails: the caller carries on and returns its "no value" result.
func (o Options) ReportEmpty(container, operation, msg string) {
	telemetry.SoftFailureCounter.WithLabelValues(container, operation).Inc()
	o.Logger().Warn(msg,
		zap.String("container", container),
		zap.String("operation", operation),
	)
}
