package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Timeguard is the process-wide configuration of the timeguard tools.
type Timeguard struct {
	// SystemZone is the zone of the "system" policy. "Local" keeps the
	// host's zone.
	SystemZone string `env:"TIMEGUARD_SYSTEM_ZONE" envDefault:"Local"`
	// Lang selects the message catalogue.
	Lang      string `env:"TIMEGUARD_LANG" envDefault:"en"`
	LogLevel  string `env:"TIMEGUARD_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"TIMEGUARD_LOG_FORMAT" envDefault:"text"`
}

// Location resolves SystemZone.
func (c Timeguard) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.SystemZone)
	switch name {
	case "", "Local", "local":
		return time.Local, nil
	case "UTC", "utc", "Z":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Join(ErrInvalidSystemZone, fmt.Errorf("%q: %w", name, err))
	}
	return loc, nil
}
