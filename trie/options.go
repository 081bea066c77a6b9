package trie

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

type Options struct {
	// Log, if set, receives debug level tracing of node creation and
	// rejected operations. Results never depend on it.
	Log logger.Logger
}

type Option func(*Options)

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
