package remote

import (
	"log/slog"
	"net/http"

	"github.com/gogpu/paint"
)

// Option configures a Server.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	queueSize   int
	checkOrigin func(*http.Request) bool
}

const defaultQueueSize = 64

func defaultOptions() options {
	return options{
		logger:    paint.Logger(),
		queueSize: defaultQueueSize,
	}
}

// WithLogger sets the server logger. The default is [paint.Logger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithQueueSize sets how many requests may wait for the dispatcher.
// Values below 1 are ignored.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// WithCheckOrigin sets the websocket origin policy. By default only
// same-origin requests (or requests without an Origin header) are accepted.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(o *options) {
		o.checkOrigin = fn
	}
}
