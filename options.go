package mlsp

import "time"

// Config is the literal configuration record from which an endpoint is
// constructed.
type Config struct {
	// IP is the remote address for a sender (required) or the local bind
	// address for a receiver (optional; empty binds to any local address).
	IP string
	// Port is the UDP port, required for both roles.
	Port uint16
	// TimeoutMS is the receiver's receive timeout in milliseconds. 0 (the
	// default) blocks indefinitely.
	TimeoutMS int
	// Subframes is the receiver's expected subframe count. 0 (the
	// default) means 1. Must be <= MaxSubframes.
	Subframes int
}

// options holds the configuration assembled from functional Options, on
// top of the literal Config.
type options struct {
	logger  Logger
	onEvent EventObserver
}

// Option configures an endpoint beyond the literal Config fields.
type Option func(*options)

// LoggerOption sets the logger used for transient-fault diagnostics.
// If not set, the default slog logger is used.
func LoggerOption(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// OnEventOption sets a callback invoked for every structured diagnostic
// event a receiver produces (malformed/duplicate/stale packets, frame
// switches, subframe and frame completion). It never affects the state
// machine's behavior. If not set, events are forwarded to the Logger.
func OnEventOption(cb EventObserver) Option {
	return func(o *options) {
		o.onEvent = cb
	}
}

// resolveOptions applies opts on top of defaults, wiring in the default
// event observer once the logger is known.
func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = defaultLogger()
	}
	if o.onEvent == nil {
		o.onEvent = defaultEventObserver(o.logger)
	}

	return o
}

// receiveTimeout converts Config.TimeoutMS into a time.Duration, with 0
// meaning "block indefinitely" per spec.
func (c Config) receiveTimeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// subframeCount resolves Config.Subframes, defaulting 0 to 1.
func (c Config) subframeCount() int {
	if c.Subframes <= 0 {
		return 1
	}
	return c.Subframes
}
