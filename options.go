package bigseq

import (
	"log/slog"
	"time"

	"github.com/hupe1980/bigseq/internal/fs"
	"github.com/hupe1980/bigseq/resource"
	"github.com/hupe1980/bigseq/slotstore"
)

// DefaultPath is the backing file used when neither WithPath nor WithStore
// is given. It is relative to the working directory.
const DefaultPath = "biglist-data.bin"

type options struct {
	path             string
	store            slotstore.Store
	fileSystem       fs.FileSystem
	logger           *Logger
	metricsCollector MetricsCollector
	rc               *resource.Controller
	ioTimeout        time.Duration
	syncOnFlush      bool
}

func defaultOptions() options {
	return options{
		path:             DefaultPath,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures New.
type Option func(*options)

// WithPath sets the backing file. The file is created if missing and
// truncated either way. Ignored when WithStore is given.
func WithPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.path = path
		}
	}
}

// WithStore uses s as the backing store instead of a file.
//
// The Sequence takes ownership: s is truncated by New and closed by Close.
func WithStore(s slotstore.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithFileSystem sets the file system the default file store is opened
// through. Mainly useful for fault injection in tests.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fileSystem = fsys
	}
}

// WithLogger sets the logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithLogLevel installs a text logger to stderr at the given level.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController reserves the segment buffer against rc's memory
// limit and paces store I/O through rc's rate limiter.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}

// WithIOTimeout bounds the store calls of each segment switch, Flush and Close.
// Zero (the default) means no timeout.
func WithIOTimeout(d time.Duration) Option {
	return func(o *options) {
		o.ioTimeout = d
	}
}

// WithSyncOnFlush makes every segment flush also sync the store.
//
// This is slow for file stores and only narrows the window in which a crash
// loses the resident segment; it does not make the sequence crash-safe.
func WithSyncOnFlush(enabled bool) Option {
	return func(o *options) {
		o.syncOnFlush = enabled
	}
}
