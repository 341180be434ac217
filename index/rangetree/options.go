package rangetree

import "github.com/rs/zerolog"

// DefaultName labels the metrics of a database built without WithName.
const DefaultName = "default"

// Option configures a PointDatabase.
type Option func(*PointDatabase)

// WithName sets the name used to label metrics and log lines.
func WithName(name string) Option {
	return func(d *PointDatabase) {
		if name != "" {
			d.name = name
		}
	}
}

// WithLogger sets the logger. Builds are logged at debug level and queries at
// trace level. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *PointDatabase) { d.logger = &logger }
}
