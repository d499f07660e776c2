package constraint

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/timeguard/pkg/logger"
)

// Constraint is the declarative configuration of one rule: the Go counterpart
// of a constraint annotation instance. It is read once when a validator is
// initialized and never mutated.
type Constraint struct {
	// Name selects the catalog entry, e.g. "hour_in" or "before".
	Name string `json:"name" yaml:"name"`
	// Values are the allowed values or the literal compared against.
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
	// Moment is the reference point of moment constraints; empty means now.
	Moment string `json:"moment,omitempty" yaml:"moment,omitempty"`
	// Duration shifts the moment, e.g. "P1D" or "-PT30M".
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
	// ZoneID is the zone-id policy: "system", "provided" or a zone id.
	ZoneID string `json:"zone,omitempty" yaml:"zone,omitempty"`
	// Message overrides the translation key of violations.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (c Constraint) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	if len(c.Values) > 0 {
		b.WriteString("=")
		b.WriteString(strings.Join(c.Values, " "))
	}
	if c.Moment != "" {
		b.WriteString(";moment=" + c.Moment)
	}
	if c.Duration != "" {
		b.WriteString(";duration=" + c.Duration)
	}
	if c.ZoneID != "" {
		b.WriteString(";zone=" + c.ZoneID)
	}
	return b.String()
}

// Settings carries the environment validators are initialized with.
type Settings struct {
	// System is the zone of the "system" policy.
	System *time.Location
	// Now returns the current instant for "now" moments.
	Now func() time.Time
	// Logger receives compile diagnostics.
	Logger *slog.Logger
}

// Option configures Settings.
type Option func(*Settings)

// WithSystemZone overrides the zone of the "system" policy.
// Nil locations are ignored.
func WithSystemZone(loc *time.Location) Option {
	return func(s *Settings) {
		if loc != nil {
			s.System = loc
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Settings) {
		if now != nil {
			s.Now = now
		}
	}
}

// WithLogger sets the logger used for compile diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Settings) {
		if l != nil {
			s.Logger = l
		}
	}
}

// NewSettings applies opts over the defaults: time.Local, time.Now and a
// discarding logger.
func NewSettings(opts ...Option) Settings {
	s := Settings{
		System: time.Local,
		Now:    time.Now,
		Logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
